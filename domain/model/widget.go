package model

// Props is the opaque per-widget configuration bag. Values are restricted to
// the JSON value domain (string, float64, bool, nil, nested map/slice) so the
// bag round-trips through encoding/json unchanged.
type Props map[string]any

// Clone returns a deep copy of the bag. A nil receiver yields nil so callers
// can normalize to an empty map themselves.
func (p Props) Clone() Props {
	if p == nil {
		return nil
	}
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = clonePropsValue(v)
	}
	return out
}

func clonePropsValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = clonePropsValue(e)
		}
		return m
	case Props:
		return map[string]any(t.Clone())
	case []any:
		s := make([]any, len(t))
		for i, e := range t {
			s[i] = clonePropsValue(e)
		}
		return s
	default:
		return v
	}
}

// Widget is one placed widget instance. The same shape is used for the live
// canvas list and for the persisted layout items.
type Widget struct {
	ID         string `json:"id"`         // widget type identifier, not unique across instances
	InstanceID string `json:"instanceId"` // unique per placement within a layout
	Title      string `json:"title"`
	Props      Props  `json:"props"`
	Order      int    `json:"order"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	W          int    `json:"w"`
	H          int    `json:"h"`
}

// Clone returns a copy with an independent Props bag.
func (w Widget) Clone() Widget {
	cp := w
	cp.Props = w.Props.Clone()
	if cp.Props == nil {
		cp.Props = Props{}
	}
	return cp
}

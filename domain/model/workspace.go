package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// WorkspaceVersion is the persisted workspace format tag.
const WorkspaceVersion = 1

// DashboardWidget is one entry of a dashboard grid. W is a pointer because an
// absent width marks the entry as structurally invalid; the sanitizer removes
// such entries rather than guessing a size.
type DashboardWidget struct {
	InstanceID string   `json:"i"`
	WidgetID   string   `json:"widgetId"`
	X          float64  `json:"x,omitempty"`
	Y          float64  `json:"y,omitempty"`
	W          *float64 `json:"w,omitempty"`
	H          float64  `json:"h,omitempty"`
	Props      Props    `json:"props,omitempty"`
}

type dashboardWidgetAlias DashboardWidget

// UnmarshalJSON is per-item lenient: an entry that fails structural decode
// becomes a zero entry, which the sanitizer then drops. Document-level JSON
// errors still surface through DecodeWorkspace.
func (w *DashboardWidget) UnmarshalJSON(data []byte) error {
	var aux dashboardWidgetAlias
	if err := json.Unmarshal(data, &aux); err != nil {
		*w = DashboardWidget{}
		return nil
	}
	*w = DashboardWidget(aux)
	return nil
}

// Valid reports whether the entry survives sanitization.
func (w DashboardWidget) Valid() bool {
	return w.WidgetID != "" && w.InstanceID != "" && w.W != nil
}

// Clone returns a copy with independent W and Props.
func (w DashboardWidget) Clone() DashboardWidget {
	cp := w
	if w.W != nil {
		v := *w.W
		cp.W = &v
	}
	cp.Props = w.Props.Clone()
	return cp
}

// Dashboard is one grid of widgets inside a workspace.
type Dashboard struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
	Layout    []DashboardWidget `json:"layout"`
}

// Workspace is a collection of dashboards plus a pointer to the active one.
type Workspace struct {
	Version           int          `json:"version"`
	Dashboards        []*Dashboard `json:"dashboards"`
	ActiveDashboardID string       `json:"activeDashboardId"`
}

// NewWorkspace returns an empty, already-sanitized workspace holding one
// default dashboard.
func NewWorkspace() *Workspace {
	w := &Workspace{Version: WorkspaceVersion}
	w.Sanitize()
	return w
}

// Sanitize repairs the workspace in place. It is total: it never fails and
// never leaves zero dashboards or a dangling active pointer.
//   - Version is forced to the current tag.
//   - Nil dashboard entries are dropped; nil layouts become empty.
//   - Layout entries failing structural validation are dropped whole.
//   - An empty dashboard list is replaced by one default dashboard.
//   - ActiveDashboardID falls back to the first dashboard when dangling.
func (w *Workspace) Sanitize() {
	w.Version = WorkspaceVersion
	dashboards := make([]*Dashboard, 0, len(w.Dashboards))
	for _, d := range w.Dashboards {
		if d == nil {
			continue
		}
		layout := make([]DashboardWidget, 0, len(d.Layout))
		for _, item := range d.Layout {
			if item.Valid() {
				layout = append(layout, item)
			}
		}
		d.Layout = layout
		dashboards = append(dashboards, d)
	}
	w.Dashboards = dashboards
	if len(w.Dashboards) == 0 {
		d := NewDashboard("")
		w.Dashboards = []*Dashboard{d}
		w.ActiveDashboardID = d.ID
		return
	}
	for _, d := range w.Dashboards {
		if d.ID == w.ActiveDashboardID {
			return
		}
	}
	w.ActiveDashboardID = w.Dashboards[0].ID
}

// Dashboard returns the dashboard with the given id, or nil.
func (w *Workspace) Dashboard(id string) *Dashboard {
	for _, d := range w.Dashboards {
		if d != nil && d.ID == id {
			return d
		}
	}
	return nil
}

// DecodeWorkspace parses a persisted or imported workspace document.
// Unparsable top-level JSON yields ErrMalformedDocument. Individual layout
// entries are decoded leniently (see DashboardWidget.UnmarshalJSON); the
// version tag is surfaced unchecked so the import boundary can reject
// unsupported versions while the load path tolerates them.
func DecodeWorkspace(data []byte) (*Workspace, error) {
	var w Workspace
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: workspace: %v", ErrMalformedDocument, err)
	}
	return &w, nil
}

// Encode renders the workspace as pretty-printed JSON.
func (w *Workspace) Encode() ([]byte, error) {
	return json.MarshalIndent(w, "", "  ")
}

package model

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/gridpad/gridpad/internal/naming"
)

// LayoutVersion is the persisted layout format tag.
const LayoutVersion = 1

// Layout is a named, ordered collection of widget placements persisted as one
// unit. CreatedAt never changes after the first save; UpdatedAt is restamped
// on every save (see adapters/store/slot).
type Layout struct {
	Version   int       `json:"version"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Items     []Widget  `json:"items"`
}

// LayoutMeta is the listing projection of a Layout.
type LayoutMeta struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Count     int       `json:"count"`
}

// NewLayout builds a normalized layout from a live widget list. The input is
// deep-copied, stable-sorted by Order (ties keep input order), and renumbered
// to a contiguous 0-based sequence. Both timestamps are stamped with the
// current time; the repository preserves the stored CreatedAt on overwrite.
func NewLayout(name string, items []Widget) *Layout {
	ws := make([]Widget, len(items))
	for i, w := range items {
		ws[i] = w.Clone()
	}
	sortItems(ws)
	now := time.Now().UTC()
	return &Layout{
		Version:   LayoutVersion,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
		Items:     ws,
	}
}

// sortItems stable-sorts by Order and renumbers to 0..n-1, closing any gaps
// left by deletions. Sorting an already-normalized list is a no-op.
func sortItems(ws []Widget) {
	sort.SliceStable(ws, func(i, j int) bool { return ws[i].Order < ws[j].Order })
	for i := range ws {
		ws[i].Order = i
	}
}

// Meta returns the listing projection.
func (l *Layout) Meta() *LayoutMeta {
	return &LayoutMeta{
		Name:      l.Name,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
		Count:     len(l.Items),
	}
}

// Restore emits live widgets in stored order for use as the sole canvas
// content. Stored order values are ignored; array position is authoritative.
// Stored instance ids are reused, minting only for entries that lack one or
// that would collide within this call.
func (l *Layout) Restore() []Widget {
	return l.apply(false)
}

// Merge emits live widgets for merging into a canvas that may already contain
// instances of this layout: every widget receives a freshly minted instance
// id.
func (l *Layout) Merge() []Widget {
	return l.apply(true)
}

func (l *Layout) apply(mint bool) []Widget {
	out := make([]Widget, len(l.Items))
	seen := make(map[string]struct{}, len(l.Items))
	for i, w := range l.Items {
		cw := w.Clone()
		cw.Order = i
		if mint || cw.InstanceID == "" {
			cw.InstanceID = naming.NewInstanceID()
		}
		if _, dup := seen[cw.InstanceID]; dup {
			cw.InstanceID = naming.NewInstanceID()
		}
		seen[cw.InstanceID] = struct{}{}
		out[i] = cw
	}
	return out
}

// DecodeLayout parses an imported or exported layout document. Unparsable
// input yields ErrMalformedDocument, an unknown version tag
// ErrUnsupportedVersion. Item order is re-normalized defensively.
func DecodeLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("%w: layout: %v", ErrMalformedDocument, err)
	}
	if l.Version != LayoutVersion {
		return nil, fmt.Errorf("%w: layout version %d", ErrUnsupportedVersion, l.Version)
	}
	for i := range l.Items {
		if l.Items[i].Props == nil {
			l.Items[i].Props = Props{}
		}
	}
	sortItems(l.Items)
	return &l, nil
}

// Encode renders the layout as pretty-printed JSON, the export artifact.
func (l *Layout) Encode() ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNewLayout_OrderNormalization(t *testing.T) {
	tests := []struct {
		name      string
		orders    []int
		wantIDs   []string
		wantOrder []int
	}{
		{
			name:      "gaps closed",
			orders:    []int{5, 2, 9},
			wantIDs:   []string{"b", "a", "c"},
			wantOrder: []int{0, 1, 2},
		},
		{
			name:      "ties keep input order",
			orders:    []int{0, 0, 0},
			wantIDs:   []string{"a", "b", "c"},
			wantOrder: []int{0, 1, 2},
		},
		{
			name:      "already contiguous is a no-op",
			orders:    []int{0, 1, 2},
			wantIDs:   []string{"a", "b", "c"},
			wantOrder: []int{0, 1, 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := []string{"a", "b", "c"}
			items := make([]Widget, len(ids))
			for i := range ids {
				items[i] = Widget{ID: "w", InstanceID: ids[i], Order: tt.orders[i]}
			}
			l := NewLayout("test", items)
			if len(l.Items) != len(ids) {
				t.Fatalf("expected %d items, got %d", len(ids), len(l.Items))
			}
			for i, it := range l.Items {
				if it.InstanceID != tt.wantIDs[i] {
					t.Errorf("items[%d].InstanceID = %q, want %q", i, it.InstanceID, tt.wantIDs[i])
				}
				if it.Order != tt.wantOrder[i] {
					t.Errorf("items[%d].Order = %d, want %d", i, it.Order, tt.wantOrder[i])
				}
			}
		})
	}
}

func TestNewLayout_DoesNotMutateInput(t *testing.T) {
	items := []Widget{
		{ID: "w", InstanceID: "a", Order: 7, Props: Props{"k": "v"}},
		{ID: "w", InstanceID: "b", Order: 3},
	}
	l := NewLayout("test", items)
	if items[0].Order != 7 || items[1].Order != 3 {
		t.Errorf("input orders mutated: %d, %d", items[0].Order, items[1].Order)
	}
	l.Items[1].Props["k"] = "changed"
	if items[0].Props["k"] != "v" {
		t.Errorf("input props mutated: %v", items[0].Props)
	}
}

func TestNewLayout_DefaultsProps(t *testing.T) {
	l := NewLayout("test", []Widget{{ID: "w", InstanceID: "a"}})
	if l.Items[0].Props == nil {
		t.Fatalf("expected empty props map, got nil")
	}
	if l.Version != LayoutVersion {
		t.Errorf("version = %d, want %d", l.Version, LayoutVersion)
	}
	if l.CreatedAt.IsZero() || !l.CreatedAt.Equal(l.UpdatedAt) {
		t.Errorf("timestamps not stamped: %v %v", l.CreatedAt, l.UpdatedAt)
	}
}

func TestRestore_RoundTripPreservesInstanceIDs(t *testing.T) {
	items := []Widget{
		{ID: "chart", InstanceID: "i2", Order: 4, Title: "B"},
		{ID: "chart", InstanceID: "i1", Order: 1, Title: "A"},
	}
	l := NewLayout("rt", items)
	got := l.Restore()
	if len(got) != 2 {
		t.Fatalf("expected 2 widgets, got %d", len(got))
	}
	// Sorted order: i1 (order 1) then i2 (order 4).
	if got[0].InstanceID != "i1" || got[1].InstanceID != "i2" {
		t.Errorf("instance ids not preserved: %q, %q", got[0].InstanceID, got[1].InstanceID)
	}
	for i, w := range got {
		if w.Order != i {
			t.Errorf("widgets[%d].Order = %d, want %d", i, w.Order, i)
		}
	}
}

func TestRestore_MintsMissingAndDuplicateIDs(t *testing.T) {
	l := &Layout{
		Version: LayoutVersion,
		Name:    "dup",
		Items: []Widget{
			{ID: "w", InstanceID: ""},
			{ID: "w", InstanceID: "same"},
			{ID: "w", InstanceID: "same"},
		},
	}
	got := l.Restore()
	seen := map[string]bool{}
	for _, w := range got {
		if w.InstanceID == "" {
			t.Errorf("empty instance id survived restore")
		}
		if seen[w.InstanceID] {
			t.Errorf("duplicate instance id %q survived restore", w.InstanceID)
		}
		seen[w.InstanceID] = true
	}
}

func TestMerge_MintsDisjointIDs(t *testing.T) {
	items := []Widget{
		{ID: "w", InstanceID: "i1"},
		{ID: "w", InstanceID: "i2"},
	}
	l := NewLayout("merge", items)
	got := l.Merge()
	stored := map[string]bool{"i1": true, "i2": true}
	seen := map[string]bool{}
	for _, w := range got {
		if stored[w.InstanceID] {
			t.Errorf("merge reused stored instance id %q", w.InstanceID)
		}
		if seen[w.InstanceID] {
			t.Errorf("merge produced duplicate instance id %q", w.InstanceID)
		}
		seen[w.InstanceID] = true
	}
}

func TestDecodeLayout(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{
			name: "valid",
			data: `{"version":1,"name":"Ops","items":[{"id":"w1","instanceId":"i1","order":2}]}`,
		},
		{
			name:    "malformed",
			data:    `{not json`,
			wantErr: ErrMalformedDocument,
		},
		{
			name:    "unsupported version",
			data:    `{"version":2,"name":"Ops","items":[]}`,
			wantErr: ErrUnsupportedVersion,
		},
		{
			name:    "missing version",
			data:    `{"name":"Ops","items":[]}`,
			wantErr: ErrUnsupportedVersion,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := DecodeLayout([]byte(tt.data))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeLayout returned error: %v", err)
			}
			if l.Items[0].Order != 0 {
				t.Errorf("order not renormalized: %d", l.Items[0].Order)
			}
			if l.Items[0].Props == nil {
				t.Errorf("props not defaulted")
			}
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	l := NewLayout("Ops", []Widget{
		{ID: "w1", InstanceID: "i1", Title: "T", Props: Props{"unit": "ms"}, X: 1, Y: 2, W: 3, H: 4},
	})
	data, err := l.Encode()
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if !json.Valid(data) {
		t.Fatalf("Encode produced invalid JSON")
	}
	back, err := DecodeLayout(data)
	if err != nil {
		t.Fatalf("DecodeLayout returned error: %v", err)
	}
	if back.Name != l.Name || len(back.Items) != 1 {
		t.Fatalf("round trip lost data: %+v", back)
	}
	it := back.Items[0]
	if it.InstanceID != "i1" || it.Title != "T" || it.W != 3 || it.Props["unit"] != "ms" {
		t.Errorf("round trip item mismatch: %+v", it)
	}
}

func TestLayoutMeta(t *testing.T) {
	l := NewLayout("Ops", []Widget{{ID: "a", InstanceID: "i1"}, {ID: "b", InstanceID: "i2"}})
	m := l.Meta()
	if m.Name != "Ops" || m.Count != 2 {
		t.Errorf("unexpected meta: %+v", m)
	}
	if !m.CreatedAt.Equal(l.CreatedAt) || !m.UpdatedAt.Equal(l.UpdatedAt) {
		t.Errorf("meta timestamps mismatch")
	}
}

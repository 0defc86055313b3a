package cfgpad

import "testing"

func TestToLayouts(t *testing.T) {
	r := &Root{
		Version: 1,
		Layouts: []Layout{
			{Name: "Ops", Widgets: []Widget{
				{ID: "cpu", Order: 5},
				{ID: "clock", InstanceID: "i1", Order: 2, Props: map[string]any{"tz": "UTC"}},
			}},
		},
	}
	layouts, err := r.ToLayouts()
	if err != nil {
		t.Fatalf("ToLayouts returned error: %v", err)
	}
	if len(layouts) != 1 {
		t.Fatalf("expected 1 layout, got %d", len(layouts))
	}
	l := layouts[0]
	if l.Name != "Ops" || len(l.Items) != 2 {
		t.Fatalf("unexpected layout: %+v", l)
	}
	// Sorted by declared order, renumbered contiguously.
	if l.Items[0].InstanceID != "i1" || l.Items[0].Order != 0 {
		t.Errorf("items[0] = %+v", l.Items[0])
	}
	if l.Items[1].ID != "cpu" || l.Items[1].Order != 1 {
		t.Errorf("items[1] = %+v", l.Items[1])
	}
	if l.Items[1].InstanceID == "" {
		t.Errorf("missing instance id not minted")
	}
	if l.Items[0].Props["tz"] != "UTC" {
		t.Errorf("props lost: %+v", l.Items[0].Props)
	}
}

func TestScopeModel(t *testing.T) {
	r := &Root{Version: 1}
	sc := r.ScopeModel()
	if sc.Tenant != "default" || sc.User != "local" {
		t.Errorf("empty scope not defaulted: %+v", sc)
	}

	r.Scope = Scope{Tenant: "acme", User: "alice"}
	sc = r.ScopeModel()
	if sc.Tenant != "acme" || sc.User != "alice" {
		t.Errorf("scope not carried: %+v", sc)
	}
}

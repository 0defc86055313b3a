package model

import "testing"

func TestNewDashboard(t *testing.T) {
	d := NewDashboard("Ops")
	if d.ID == "" || d.Name != "Ops" {
		t.Fatalf("unexpected dashboard: %+v", d)
	}
	if !d.CreatedAt.Equal(d.UpdatedAt) {
		t.Errorf("timestamps differ: %v %v", d.CreatedAt, d.UpdatedAt)
	}
	if d.Layout == nil || len(d.Layout) != 0 {
		t.Errorf("expected empty layout, got %v", d.Layout)
	}
}

func TestNewDashboard_DefaultName(t *testing.T) {
	for _, name := range []string{"", "   "} {
		d := NewDashboard(name)
		if d.Name != DefaultDashboardName {
			t.Errorf("NewDashboard(%q).Name = %q, want %q", name, d.Name, DefaultDashboardName)
		}
	}
}

func TestClone(t *testing.T) {
	src := NewDashboard("Ops")
	src.Layout = []DashboardWidget{
		{InstanceID: "i1", WidgetID: "clock", W: f64(2), Props: Props{"tz": "UTC"}},
		{InstanceID: "i2", WidgetID: "cpu", W: f64(4)},
	}

	t.Run("with new ids", func(t *testing.T) {
		cp := src.Clone(true)
		if cp.ID == src.ID {
			t.Errorf("clone kept source id")
		}
		if cp.Name != "Ops (Copy)" {
			t.Errorf("name = %q, want %q", cp.Name, "Ops (Copy)")
		}
		for i, item := range cp.Layout {
			if item.InstanceID == src.Layout[i].InstanceID {
				t.Errorf("layout[%d] kept source instance id %q", i, item.InstanceID)
			}
		}
	})

	t.Run("keep ids", func(t *testing.T) {
		cp := src.Clone(false)
		for i, item := range cp.Layout {
			if item.InstanceID != src.Layout[i].InstanceID {
				t.Errorf("layout[%d] instance id changed: %q", i, item.InstanceID)
			}
		}
	})

	t.Run("deep copy", func(t *testing.T) {
		cp := src.Clone(false)
		cp.Layout[0].Props["tz"] = "JST"
		*cp.Layout[1].W = 9
		if src.Layout[0].Props["tz"] != "UTC" {
			t.Errorf("props shared between source and clone")
		}
		if *src.Layout[1].W != 4 {
			t.Errorf("width shared between source and clone")
		}
	})
}

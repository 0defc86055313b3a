package workspace

import (
	"context"
	"errors"
	"testing"

	"github.com/gridpad/gridpad/adapters/store/inmem"
	"github.com/gridpad/gridpad/adapters/store/slot"
	"github.com/gridpad/gridpad/domain/model"
)

func newTestUseCase() *UseCase {
	repo := slot.NewWorkspaceRepository(inmem.NewBackend(), model.DefaultScope())
	return &UseCase{Repos: &Repos{Workspace: repo}}
}

func TestLoad_FreshWorkspace(t *testing.T) {
	ctx := context.Background()
	u := newTestUseCase()

	out, err := u.Load(ctx, &LoadInput{})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	w := out.Workspace
	if len(w.Dashboards) != 1 || w.ActiveDashboardID != w.Dashboards[0].ID {
		t.Errorf("expected default workspace, got %+v", w)
	}
}

func TestAddDashboard(t *testing.T) {
	ctx := context.Background()
	u := newTestUseCase()

	out, err := u.AddDashboard(ctx, &AddDashboardInput{Name: "Ops"})
	if err != nil {
		t.Fatalf("AddDashboard returned error: %v", err)
	}
	if out.Dashboard.Name != "Ops" || out.Dashboard.ID == "" {
		t.Errorf("unexpected dashboard: %+v", out.Dashboard)
	}

	loaded, _ := u.Load(ctx, &LoadInput{})
	if loaded.Workspace.Dashboard(out.Dashboard.ID) == nil {
		t.Errorf("added dashboard not persisted")
	}

	// Empty name falls back to the default dashboard name.
	out, err = u.AddDashboard(ctx, &AddDashboardInput{})
	if err != nil {
		t.Fatalf("AddDashboard returned error: %v", err)
	}
	if out.Dashboard.Name != model.DefaultDashboardName {
		t.Errorf("name = %q, want default", out.Dashboard.Name)
	}
}

func TestCloneDashboard(t *testing.T) {
	ctx := context.Background()
	u := newTestUseCase()

	added, err := u.AddDashboard(ctx, &AddDashboardInput{Name: "Ops"})
	if err != nil {
		t.Fatalf("AddDashboard returned error: %v", err)
	}
	width := 2.0
	loaded, _ := u.Load(ctx, &LoadInput{})
	src := loaded.Workspace.Dashboard(added.Dashboard.ID)
	src.Layout = []model.DashboardWidget{{InstanceID: "i1", WidgetID: "clock", W: &width}}
	if _, err := u.Save(ctx, &SaveInput{Workspace: loaded.Workspace}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	t.Run("fresh ids by default", func(t *testing.T) {
		out, err := u.CloneDashboard(ctx, &CloneDashboardInput{DashboardID: added.Dashboard.ID})
		if err != nil {
			t.Fatalf("CloneDashboard returned error: %v", err)
		}
		cp := out.Dashboard
		if cp.ID == added.Dashboard.ID {
			t.Errorf("clone kept source dashboard id")
		}
		if cp.Name != "Ops (Copy)" {
			t.Errorf("clone name = %q", cp.Name)
		}
		if len(cp.Layout) != 1 || cp.Layout[0].InstanceID == "i1" {
			t.Errorf("clone should mint instance ids: %+v", cp.Layout)
		}
	})

	t.Run("keep ids on request", func(t *testing.T) {
		out, err := u.CloneDashboard(ctx, &CloneDashboardInput{DashboardID: added.Dashboard.ID, KeepIDs: true})
		if err != nil {
			t.Fatalf("CloneDashboard returned error: %v", err)
		}
		if out.Dashboard.Layout[0].InstanceID != "i1" {
			t.Errorf("keep-ids clone minted ids: %+v", out.Dashboard.Layout)
		}
	})

	t.Run("missing source", func(t *testing.T) {
		if _, err := u.CloneDashboard(ctx, &CloneDashboardInput{DashboardID: "db-missing"}); !errors.Is(err, model.ErrDashboardNotFound) {
			t.Errorf("expected ErrDashboardNotFound, got %v", err)
		}
	})
}

func TestRenameDashboard(t *testing.T) {
	ctx := context.Background()
	u := newTestUseCase()

	added, err := u.AddDashboard(ctx, &AddDashboardInput{Name: "Ops"})
	if err != nil {
		t.Fatalf("AddDashboard returned error: %v", err)
	}

	out, err := u.RenameDashboard(ctx, &RenameDashboardInput{DashboardID: added.Dashboard.ID, Name: "Production"})
	if err != nil {
		t.Fatalf("RenameDashboard returned error: %v", err)
	}
	if out.Dashboard.Name != "Production" {
		t.Errorf("name = %q", out.Dashboard.Name)
	}

	if _, err := u.RenameDashboard(ctx, &RenameDashboardInput{DashboardID: added.Dashboard.ID, Name: ""}); !errors.Is(err, model.ErrWorkspaceInvalid) {
		t.Errorf("expected ErrWorkspaceInvalid for empty name, got %v", err)
	}
	if _, err := u.RenameDashboard(ctx, &RenameDashboardInput{DashboardID: "db-missing", Name: "X"}); !errors.Is(err, model.ErrDashboardNotFound) {
		t.Errorf("expected ErrDashboardNotFound, got %v", err)
	}
}

func TestRemoveDashboard(t *testing.T) {
	ctx := context.Background()
	u := newTestUseCase()

	added, err := u.AddDashboard(ctx, &AddDashboardInput{Name: "Ops"})
	if err != nil {
		t.Fatalf("AddDashboard returned error: %v", err)
	}
	if _, err := u.Activate(ctx, &ActivateInput{DashboardID: added.Dashboard.ID}); err != nil {
		t.Fatalf("Activate returned error: %v", err)
	}

	out, err := u.RemoveDashboard(ctx, &RemoveDashboardInput{DashboardID: added.Dashboard.ID})
	if err != nil {
		t.Fatalf("RemoveDashboard returned error: %v", err)
	}
	w := out.Workspace
	if w.Dashboard(added.Dashboard.ID) != nil {
		t.Errorf("dashboard still present after removal")
	}
	// Active pointer was repaired to a surviving dashboard.
	if w.ActiveDashboardID == added.Dashboard.ID || w.Dashboard(w.ActiveDashboardID) == nil {
		t.Errorf("active pointer not repaired: %q", w.ActiveDashboardID)
	}

	if _, err := u.RemoveDashboard(ctx, &RemoveDashboardInput{DashboardID: added.Dashboard.ID}); !errors.Is(err, model.ErrDashboardNotFound) {
		t.Errorf("expected ErrDashboardNotFound, got %v", err)
	}
}

func TestRemoveLastDashboard_RefillsDefault(t *testing.T) {
	ctx := context.Background()
	u := newTestUseCase()

	loaded, _ := u.Load(ctx, &LoadInput{})
	only := loaded.Workspace.Dashboards[0]

	out, err := u.RemoveDashboard(ctx, &RemoveDashboardInput{DashboardID: only.ID})
	if err != nil {
		t.Fatalf("RemoveDashboard returned error: %v", err)
	}
	w := out.Workspace
	if len(w.Dashboards) != 1 {
		t.Fatalf("expected refilled default dashboard, got %+v", w.Dashboards)
	}
	if w.Dashboards[0].ID == only.ID {
		t.Errorf("removed dashboard came back")
	}
	if w.ActiveDashboardID != w.Dashboards[0].ID {
		t.Errorf("active pointer = %q, want %q", w.ActiveDashboardID, w.Dashboards[0].ID)
	}
}

func TestActivate(t *testing.T) {
	ctx := context.Background()
	u := newTestUseCase()

	added, err := u.AddDashboard(ctx, &AddDashboardInput{Name: "Ops"})
	if err != nil {
		t.Fatalf("AddDashboard returned error: %v", err)
	}
	out, err := u.Activate(ctx, &ActivateInput{DashboardID: added.Dashboard.ID})
	if err != nil {
		t.Fatalf("Activate returned error: %v", err)
	}
	if out.Workspace.ActiveDashboardID != added.Dashboard.ID {
		t.Errorf("active = %q", out.Workspace.ActiveDashboardID)
	}
	if _, err := u.Activate(ctx, &ActivateInput{DashboardID: "db-missing"}); !errors.Is(err, model.ErrDashboardNotFound) {
		t.Errorf("expected ErrDashboardNotFound, got %v", err)
	}
}

func TestImportExport(t *testing.T) {
	ctx := context.Background()
	u := newTestUseCase()

	if _, err := u.AddDashboard(ctx, &AddDashboardInput{Name: "Ops"}); err != nil {
		t.Fatalf("AddDashboard returned error: %v", err)
	}
	exp, err := u.Export(ctx, &ExportInput{})
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	other := newTestUseCase()
	imp, err := other.Import(ctx, &ImportInput{Data: exp.Data})
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	if len(imp.Workspace.Dashboards) != 2 {
		t.Errorf("imported dashboards = %d, want 2", len(imp.Workspace.Dashboards))
	}

	if _, err := other.Import(ctx, &ImportInput{Data: []byte("{broken")}); !errors.Is(err, model.ErrMalformedDocument) {
		t.Errorf("expected ErrMalformedDocument, got %v", err)
	}
	if _, err := other.Import(ctx, &ImportInput{Data: []byte(`{"version": 99, "dashboards": []}`)}); !errors.Is(err, model.ErrUnsupportedVersion) {
		t.Errorf("expected ErrUnsupportedVersion, got %v", err)
	}
}

func TestRepairAndReset(t *testing.T) {
	ctx := context.Background()
	backend := inmem.NewBackend()
	u := &UseCase{Repos: &Repos{Workspace: slot.NewWorkspaceRepository(backend, model.DefaultScope())}}

	// Seed a broken document; Repair persists the sanitized form.
	if err := backend.Set(ctx, "workspace/default/local", []byte(`{"version": 1, "dashboards": [null], "activeDashboardId": "db-missing"}`)); err != nil {
		t.Fatalf("seed returned error: %v", err)
	}
	out, err := u.Repair(ctx, &RepairInput{})
	if err != nil {
		t.Fatalf("Repair returned error: %v", err)
	}
	w := out.Workspace
	if len(w.Dashboards) != 1 || w.Dashboard(w.ActiveDashboardID) == nil {
		t.Errorf("repair did not normalize workspace: %+v", w)
	}

	if _, err := u.Reset(ctx, &ResetInput{}); err != nil {
		t.Fatalf("Reset returned error: %v", err)
	}
	if _, ok, _ := backend.Get(ctx, "workspace/default/local"); ok {
		t.Errorf("workspace slot survived reset")
	}
}

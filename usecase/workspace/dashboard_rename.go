package workspace

import (
	"context"
	"fmt"
	"time"

	"github.com/gridpad/gridpad/domain/model"
	"github.com/gridpad/gridpad/internal/naming"
)

// RenameDashboardInput identifies the dashboard and its new name.
type RenameDashboardInput struct {
	DashboardID string `json:"dashboard_id"`
	Name        string `json:"name"`
}

// RenameDashboardOutput wraps the renamed dashboard.
type RenameDashboardOutput struct {
	Dashboard *model.Dashboard `json:"dashboard"`
}

// RenameDashboard changes a dashboard's name and restamps its UpdatedAt.
func (u *UseCase) RenameDashboard(ctx context.Context, in *RenameDashboardInput) (*RenameDashboardOutput, error) {
	if in == nil || in.DashboardID == "" {
		return nil, model.ErrWorkspaceInvalid
	}
	if err := naming.ValidateDashboardName(in.Name); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrWorkspaceInvalid, err)
	}
	w, err := u.Repos.Workspace.Load(ctx)
	if err != nil {
		return nil, err
	}
	d := w.Dashboard(in.DashboardID)
	if d == nil {
		return nil, fmt.Errorf("%w: %s", model.ErrDashboardNotFound, in.DashboardID)
	}
	d.Name = in.Name
	d.UpdatedAt = time.Now().UTC()
	if err := u.Repos.Workspace.Save(ctx, w); err != nil {
		return nil, err
	}
	return &RenameDashboardOutput{Dashboard: d}, nil
}

package workspace

import (
	"context"
	"fmt"

	"github.com/gridpad/gridpad/domain/model"
)

// CloneDashboardInput identifies the dashboard to copy. KeepIDs preserves
// widget instance ids verbatim; the caller accepts the collision risk when
// source and copy coexist.
type CloneDashboardInput struct {
	DashboardID string `json:"dashboard_id"`
	KeepIDs     bool   `json:"keep_ids"`
}

// CloneDashboardOutput wraps the created copy.
type CloneDashboardOutput struct {
	Dashboard *model.Dashboard `json:"dashboard"`
}

// CloneDashboard deep-copies a dashboard under a fresh id.
func (u *UseCase) CloneDashboard(ctx context.Context, in *CloneDashboardInput) (*CloneDashboardOutput, error) {
	if in == nil || in.DashboardID == "" {
		return nil, model.ErrWorkspaceInvalid
	}
	w, err := u.Repos.Workspace.Load(ctx)
	if err != nil {
		return nil, err
	}
	src := w.Dashboard(in.DashboardID)
	if src == nil {
		return nil, fmt.Errorf("%w: %s", model.ErrDashboardNotFound, in.DashboardID)
	}
	cp := src.Clone(!in.KeepIDs)
	w.Dashboards = append(w.Dashboards, cp)
	if err := u.Repos.Workspace.Save(ctx, w); err != nil {
		return nil, err
	}
	return &CloneDashboardOutput{Dashboard: cp}, nil
}

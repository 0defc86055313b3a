package workspace

import (
	"context"
	"fmt"

	"github.com/gridpad/gridpad/domain/model"
)

// RemoveDashboardInput identifies the dashboard to delete.
type RemoveDashboardInput struct {
	DashboardID string `json:"dashboard_id"`
}

// RemoveDashboardOutput wraps the workspace after removal; the sanitizer has
// already repaired the active pointer and refilled an emptied workspace.
type RemoveDashboardOutput struct {
	Workspace *model.Workspace `json:"workspace"`
}

// RemoveDashboard deletes a dashboard from the workspace.
func (u *UseCase) RemoveDashboard(ctx context.Context, in *RemoveDashboardInput) (*RemoveDashboardOutput, error) {
	if in == nil || in.DashboardID == "" {
		return nil, model.ErrWorkspaceInvalid
	}
	w, err := u.Repos.Workspace.Load(ctx)
	if err != nil {
		return nil, err
	}
	if w.Dashboard(in.DashboardID) == nil {
		return nil, fmt.Errorf("%w: %s", model.ErrDashboardNotFound, in.DashboardID)
	}
	kept := w.Dashboards[:0]
	for _, d := range w.Dashboards {
		if d.ID != in.DashboardID {
			kept = append(kept, d)
		}
	}
	w.Dashboards = kept
	if err := u.Repos.Workspace.Save(ctx, w); err != nil {
		return nil, err
	}
	return &RemoveDashboardOutput{Workspace: w}, nil
}

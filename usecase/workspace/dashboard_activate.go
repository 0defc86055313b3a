package workspace

import (
	"context"
	"fmt"

	"github.com/gridpad/gridpad/domain/model"
)

// ActivateInput identifies the dashboard to make active.
type ActivateInput struct {
	DashboardID string `json:"dashboard_id"`
}

// ActivateOutput wraps the workspace with the new active pointer.
type ActivateOutput struct {
	Workspace *model.Workspace `json:"workspace"`
}

// Activate points the workspace at an existing dashboard.
func (u *UseCase) Activate(ctx context.Context, in *ActivateInput) (*ActivateOutput, error) {
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
	w.ActiveDashboardID = in.DashboardID
	if err := u.Repos.Workspace.Save(ctx, w); err != nil {
		return nil, err
	}
	return &ActivateOutput{Workspace: w}, nil
}

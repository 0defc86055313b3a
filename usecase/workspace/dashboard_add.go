package workspace

import (
	"context"
	"fmt"

	"github.com/gridpad/gridpad/domain/model"
	"github.com/gridpad/gridpad/internal/naming"
)

// AddDashboardInput carries the name of the dashboard to create. An empty
// name defaults to the default dashboard name.
type AddDashboardInput struct {
	Name string `json:"name"`
}

// AddDashboardOutput wraps the created dashboard.
type AddDashboardOutput struct {
	Dashboard *model.Dashboard `json:"dashboard"`
}

// AddDashboard appends a fresh empty dashboard to the workspace.
func (u *UseCase) AddDashboard(ctx context.Context, in *AddDashboardInput) (*AddDashboardOutput, error) {
	if in == nil {
		return nil, model.ErrWorkspaceInvalid
	}
	if in.Name != "" {
		if err := naming.ValidateDashboardName(in.Name); err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrWorkspaceInvalid, err)
		}
	}
	w, err := u.Repos.Workspace.Load(ctx)
	if err != nil {
		return nil, err
	}
	d := model.NewDashboard(in.Name)
	w.Dashboards = append(w.Dashboards, d)
	if err := u.Repos.Workspace.Save(ctx, w); err != nil {
		return nil, err
	}
	return &AddDashboardOutput{Dashboard: d}, nil
}

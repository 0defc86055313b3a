package workspace

import (
	"context"

	"github.com/gridpad/gridpad/domain/model"
)

// LoadInput is empty; a scope holds exactly one workspace.
type LoadInput struct{}

// LoadOutput wraps the sanitized workspace.
type LoadOutput struct {
	Workspace *model.Workspace `json:"workspace"`
}

// Load returns the scope's workspace, sanitized. An absent or unreadable
// document yields a fresh default workspace.
func (u *UseCase) Load(ctx context.Context, _ *LoadInput) (*LoadOutput, error) {
	w, err := u.Repos.Workspace.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &LoadOutput{Workspace: w}, nil
}

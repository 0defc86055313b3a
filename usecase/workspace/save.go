package workspace

import (
	"context"

	"github.com/gridpad/gridpad/domain/model"
)

// SaveInput carries the workspace document to persist.
type SaveInput struct {
	Workspace *model.Workspace `json:"workspace"`
}

// SaveOutput wraps the sanitized, persisted workspace.
type SaveOutput struct {
	Workspace *model.Workspace `json:"workspace"`
}

// Save sanitizes and persists the workspace as one document.
func (u *UseCase) Save(ctx context.Context, in *SaveInput) (*SaveOutput, error) {
	if in == nil || in.Workspace == nil {
		return nil, model.ErrWorkspaceInvalid
	}
	if err := u.Repos.Workspace.Save(ctx, in.Workspace); err != nil {
		return nil, err
	}
	return &SaveOutput{Workspace: in.Workspace}, nil
}

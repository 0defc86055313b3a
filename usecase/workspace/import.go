package workspace

import (
	"context"
	"fmt"

	"github.com/gridpad/gridpad/domain/model"
)

// ImportInput carries a serialized workspace document, typically read from a
// file-like blob at the UI boundary.
type ImportInput struct {
	Data []byte `json:"data"`
}

// ImportOutput wraps the imported, sanitized workspace.
type ImportOutput struct {
	Workspace *model.Workspace `json:"workspace"`
}

// Import decodes a workspace document, rejects unsupported versions,
// sanitizes the rest, and persists it. Malformed individual widget entries
// are dropped by the sanitizer, not fatal to the whole document.
func (u *UseCase) Import(ctx context.Context, in *ImportInput) (*ImportOutput, error) {
	if in == nil {
		return nil, model.ErrWorkspaceInvalid
	}
	w, err := model.DecodeWorkspace(in.Data)
	if err != nil {
		return nil, err
	}
	if w.Version != model.WorkspaceVersion {
		return nil, fmt.Errorf("%w: workspace version %d", model.ErrUnsupportedVersion, w.Version)
	}
	if err := u.Repos.Workspace.Save(ctx, w); err != nil {
		return nil, err
	}
	return &ImportOutput{Workspace: w}, nil
}

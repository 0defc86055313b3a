package workspace

import (
	"context"
)

// ExportInput is empty; a scope holds exactly one workspace.
type ExportInput struct{}

// ExportOutput wraps the export artifact, pretty-printed JSON.
type ExportOutput struct {
	Data []byte `json:"data"`
}

// Export returns the serialized form of the scope's workspace.
func (u *UseCase) Export(ctx context.Context, _ *ExportInput) (*ExportOutput, error) {
	w, err := u.Repos.Workspace.Load(ctx)
	if err != nil {
		return nil, err
	}
	data, err := w.Encode()
	if err != nil {
		return nil, err
	}
	return &ExportOutput{Data: data}, nil
}

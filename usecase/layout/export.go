package layout

import (
	"context"
	"fmt"

	"github.com/gridpad/gridpad/domain/model"
	"github.com/gridpad/gridpad/internal/naming"
)

// ExportInput identifies the layout to export.
type ExportInput struct {
	Name string `json:"name"`
}

// ExportOutput wraps the export artifact, pretty-printed JSON.
type ExportOutput struct {
	Data []byte `json:"data"`
}

// Export returns the serialized form of a stored layout.
func (u *UseCase) Export(ctx context.Context, in *ExportInput) (*ExportOutput, error) {
	if in == nil {
		return nil, model.ErrLayoutInvalid
	}
	if err := naming.ValidateLayoutName(in.Name); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrLayoutInvalid, err)
	}
	data, err := u.Repos.Layout.Export(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("%w: %s", model.ErrLayoutNotFound, in.Name)
	}
	return &ExportOutput{Data: data}, nil
}

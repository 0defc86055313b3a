package layout

import (
	"context"
	"fmt"

	"github.com/gridpad/gridpad/domain/model"
	"github.com/gridpad/gridpad/internal/naming"
)

// ImportInput carries a serialized layout document, typically read from an
// export artifact.
type ImportInput struct {
	Data      []byte `json:"data"`
	Overwrite bool   `json:"overwrite"`
}

// ImportOutput wraps the imported layout.
type ImportOutput struct {
	Layout *model.Layout `json:"layout"`
}

// Import decodes, validates, and persists a layout document. Unparsable
// input fails with ErrMalformedDocument, an unknown version tag with
// ErrUnsupportedVersion.
func (u *UseCase) Import(ctx context.Context, in *ImportInput) (*ImportOutput, error) {
	if in == nil {
		return nil, model.ErrLayoutInvalid
	}
	l, err := model.DecodeLayout(in.Data)
	if err != nil {
		return nil, err
	}
	if err := naming.ValidateLayoutName(l.Name); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrLayoutInvalid, err)
	}
	if err := u.Repos.Layout.Import(ctx, l, in.Overwrite); err != nil {
		return nil, err
	}
	return &ImportOutput{Layout: l}, nil
}

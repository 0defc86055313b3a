package layout

import (
	"context"
	"fmt"

	"github.com/gridpad/gridpad/domain/model"
	"github.com/gridpad/gridpad/internal/naming"
)

// LoadInput identifies the layout to fetch.
type LoadInput struct {
	// Name is the layout name within the repository scope.
	Name string `json:"name"`
}

// LoadOutput wraps the retrieved layout.
type LoadOutput struct {
	Layout *model.Layout `json:"layout"`
}

// Load retrieves a layout by name.
func (u *UseCase) Load(ctx context.Context, in *LoadInput) (*LoadOutput, error) {
	if in == nil {
		return nil, model.ErrLayoutInvalid
	}
	if err := naming.ValidateLayoutName(in.Name); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrLayoutInvalid, err)
	}
	l, err := u.Repos.Layout.Load(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, fmt.Errorf("%w: %s", model.ErrLayoutNotFound, in.Name)
	}
	return &LoadOutput{Layout: l}, nil
}

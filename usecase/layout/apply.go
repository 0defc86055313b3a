package layout

import (
	"context"
	"fmt"

	"github.com/gridpad/gridpad/domain/model"
	"github.com/gridpad/gridpad/internal/naming"
)

// ApplyInput identifies the layout to turn back into a live widget list.
// Merge mints fresh instance ids for merging into an existing canvas.
type ApplyInput struct {
	Name  string `json:"name"`
	Merge bool   `json:"merge"`
}

// ApplyOutput wraps the live widget list in render order.
type ApplyOutput struct {
	Widgets []model.Widget `json:"widgets"`
}

// Apply restores a stored layout as live widgets.
func (u *UseCase) Apply(ctx context.Context, in *ApplyInput) (*ApplyOutput, error) {
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
	var widgets []model.Widget
	if in.Merge {
		widgets = l.Merge()
	} else {
		widgets = l.Restore()
	}
	return &ApplyOutput{Widgets: widgets}, nil
}

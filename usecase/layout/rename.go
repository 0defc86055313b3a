package layout

import (
	"context"
	"fmt"

	"github.com/gridpad/gridpad/domain/model"
	"github.com/gridpad/gridpad/internal/naming"
)

// RenameInput identifies the layout to move and its new name.
type RenameInput struct {
	OldName string `json:"old_name"`
	NewName string `json:"new_name"`
}

// RenameOutput is empty; the layout is addressed by its new name afterwards.
type RenameOutput struct{}

// Rename moves a layout to a new name, preserving its content and CreatedAt.
func (u *UseCase) Rename(ctx context.Context, in *RenameInput) (*RenameOutput, error) {
	if in == nil {
		return nil, model.ErrLayoutInvalid
	}
	if err := naming.ValidateLayoutName(in.OldName); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrLayoutInvalid, err)
	}
	if err := naming.ValidateLayoutName(in.NewName); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrLayoutInvalid, err)
	}
	if err := u.Repos.Layout.Rename(ctx, in.OldName, in.NewName); err != nil {
		return nil, err
	}
	return &RenameOutput{}, nil
}

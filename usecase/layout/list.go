package layout

import (
	"context"

	"github.com/gridpad/gridpad/domain/model"
)

// ListInput defines optional filters for listing layouts.
type ListInput struct{}

// ListOutput wraps listed layout metadata, sorted ascending by name.
type ListOutput struct {
	Layouts []*model.LayoutMeta `json:"layouts"`
}

// List returns metadata for all stored layouts.
func (u *UseCase) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	items, err := u.Repos.Layout.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Layouts: items}, nil
}

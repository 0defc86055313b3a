package layout

import (
	"context"
)

// RemoveInput identifies the layout to delete.
type RemoveInput struct {
	Name string `json:"name"`
}

// RemoveOutput is empty because remove has no return entity.
type RemoveOutput struct{}

// Remove deletes a layout; an absent name is a no-op.
func (u *UseCase) Remove(ctx context.Context, in *RemoveInput) (*RemoveOutput, error) {
	if in == nil || in.Name == "" { // idempotent no-op
		return &RemoveOutput{}, nil
	}
	if err := u.Repos.Layout.Remove(ctx, in.Name); err != nil {
		return nil, err
	}
	return &RemoveOutput{}, nil
}

package workspace

import (
	"context"
)

// ResetInput is empty; reset always acts on the scope's workspace.
type ResetInput struct{}

// ResetOutput is empty because reset has no return entity.
type ResetOutput struct{}

// Reset deletes the stored workspace document. The next load synthesizes a
// fresh default workspace.
func (u *UseCase) Reset(ctx context.Context, _ *ResetInput) (*ResetOutput, error) {
	if err := u.Repos.Workspace.Reset(ctx); err != nil {
		return nil, err
	}
	return &ResetOutput{}, nil
}

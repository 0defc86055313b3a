package workspace

import (
	"context"

	"github.com/gridpad/gridpad/domain/model"
)

// RepairInput is empty; repair always acts on the scope's workspace.
type RepairInput struct{}

// RepairOutput wraps the repaired workspace.
type RepairOutput struct {
	Workspace *model.Workspace `json:"workspace"`
}

// Repair loads the workspace (which sanitizes it) and persists the result,
// making the sanitizer's repairs durable.
func (u *UseCase) Repair(ctx context.Context, _ *RepairInput) (*RepairOutput, error) {
	w, err := u.Repos.Workspace.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := u.Repos.Workspace.Save(ctx, w); err != nil {
		return nil, err
	}
	return &RepairOutput{Workspace: w}, nil
}

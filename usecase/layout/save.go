package layout

import (
	"context"
	"fmt"

	"github.com/gridpad/gridpad/domain/model"
	"github.com/gridpad/gridpad/internal/naming"
)

// SaveInput carries a live widget list to persist under a name. Overwrite
// bypasses the duplicate-name guard.
type SaveInput struct {
	Name      string         `json:"name"`
	Items     []model.Widget `json:"items"`
	Overwrite bool           `json:"overwrite"`
}

// SaveOutput wraps the persisted, normalized layout.
type SaveOutput struct {
	Layout *model.Layout `json:"layout"`
}

// Save normalizes the widget list through the codec and persists it.
func (u *UseCase) Save(ctx context.Context, in *SaveInput) (*SaveOutput, error) {
	if in == nil {
		return nil, model.ErrLayoutInvalid
	}
	if err := naming.ValidateLayoutName(in.Name); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrLayoutInvalid, err)
	}
	l := model.NewLayout(in.Name, in.Items)
	if err := u.Repos.Layout.Save(ctx, l, in.Overwrite); err != nil {
		return nil, err
	}
	return &SaveOutput{Layout: l}, nil
}

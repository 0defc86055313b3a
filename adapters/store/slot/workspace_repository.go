package slot

import (
	"context"
	"fmt"
	"sync"

	"github.com/gridpad/gridpad/domain"
	"github.com/gridpad/gridpad/domain/model"
)

// WorkspaceRepository stores the single workspace document of one scope.
type WorkspaceRepository struct {
	mu      sync.Mutex
	backend domain.Backend
	scope   model.Scope
}

// NewWorkspaceRepository returns a repository handle for the given scope.
func NewWorkspaceRepository(b domain.Backend, sc model.Scope) *WorkspaceRepository {
	return &WorkspaceRepository{backend: b, scope: sc.Complete()}
}

// Load returns the sanitized workspace. An absent, unavailable, or
// unparsable slot yields a fresh default workspace. Load never writes back.
func (r *WorkspaceRepository) Load(ctx context.Context) (*model.Workspace, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.backend == nil {
		return model.NewWorkspace(), nil
	}
	raw, ok, err := r.backend.Get(ctx, workspaceKey(r.scope))
	if err != nil || !ok || len(raw) == 0 {
		return model.NewWorkspace(), nil
	}
	w, err := model.DecodeWorkspace(raw)
	if err != nil {
		return model.NewWorkspace(), nil
	}
	w.Sanitize()
	return w, nil
}

// Save sanitizes the workspace and writes the whole document.
func (r *WorkspaceRepository) Save(ctx context.Context, w *model.Workspace) error {
	if w == nil {
		return model.ErrWorkspaceInvalid
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.backend == nil {
		return model.ErrStorageUnavailable
	}
	w.Sanitize()
	data, err := w.Encode()
	if err != nil {
		return fmt.Errorf("encode workspace: %w", err)
	}
	if err := r.backend.Set(ctx, workspaceKey(r.scope), data); err != nil {
		return fmt.Errorf("%w: %v", model.ErrStorageUnavailable, err)
	}
	return nil
}

// Reset deletes the workspace slot. Idempotent.
func (r *WorkspaceRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.backend == nil {
		return model.ErrStorageUnavailable
	}
	if err := r.backend.Delete(ctx, workspaceKey(r.scope)); err != nil {
		return fmt.Errorf("%w: %v", model.ErrStorageUnavailable, err)
	}
	return nil
}

var _ domain.WorkspaceRepository = (*WorkspaceRepository)(nil)

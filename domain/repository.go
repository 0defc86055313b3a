package domain

import (
	"context"

	"github.com/gridpad/gridpad/domain/model"
)

// Backend abstracts the underlying key-value medium. Implementations must
// treat values as opaque bytes. A missing key is reported via ok=false, not
// an error; errors are reserved for the medium itself being unusable.
type Backend interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// LayoutRepository stores and retrieves named layouts within one scope.
// Read operations degrade to empty/nil when the backend is unavailable;
// mutating operations fail with typed errors from domain/model.
type LayoutRepository interface {
	List(ctx context.Context) ([]*model.LayoutMeta, error)
	Load(ctx context.Context, name string) (*model.Layout, error)
	Save(ctx context.Context, layout *model.Layout, overwrite bool) error
	Remove(ctx context.Context, name string) error
	Rename(ctx context.Context, oldName, newName string) error
	Import(ctx context.Context, layout *model.Layout, overwrite bool) error
	Export(ctx context.Context, name string) ([]byte, error)
}

// WorkspaceRepository stores the single workspace document of one scope.
// Load is a pure read: it sanitizes what it finds but never writes back.
type WorkspaceRepository interface {
	Load(ctx context.Context) (*model.Workspace, error)
	Save(ctx context.Context, w *model.Workspace) error
	Reset(ctx context.Context) error
}

// Repositories groups the repository interfaces of one scope.
type Repositories struct {
	Layout    LayoutRepository
	Workspace WorkspaceRepository
}

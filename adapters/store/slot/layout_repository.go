package slot

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/gridpad/gridpad/domain"
	"github.com/gridpad/gridpad/domain/model"
)

// LayoutRepository stores named layouts in one slot per scope. A nil backend
// models disabled storage: reads degrade to empty/nil, mutations fail with
// ErrStorageUnavailable. The mutex serializes mutations within the process so
// no caller can observe a torn collection; there is no cross-process lock and
// no atomicity across two calls.
type LayoutRepository struct {
	mu      sync.Mutex
	backend domain.Backend
	scope   model.Scope
}

// NewLayoutRepository returns a repository handle for the given scope.
// Empty scope fields default to (default, local).
func NewLayoutRepository(b domain.Backend, sc model.Scope) *LayoutRepository {
	return &LayoutRepository{backend: b, scope: sc.Complete()}
}

// read loads the whole collection. An undecodable individual entry is
// skipped; an unparsable slot is reported as ErrMalformedDocument so that
// mutations refuse to clobber data they cannot read.
func (r *LayoutRepository) read(ctx context.Context) (map[string]*model.Layout, error) {
	if r.backend == nil {
		return nil, model.ErrStorageUnavailable
	}
	raw, ok, err := r.backend.Get(ctx, layoutsKey(r.scope))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrStorageUnavailable, err)
	}
	if !ok || len(raw) == 0 {
		return map[string]*model.Layout{}, nil
	}
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: layout collection: %v", model.ErrMalformedDocument, err)
	}
	out := make(map[string]*model.Layout, len(entries))
	for name, entry := range entries {
		var l model.Layout
		if err := json.Unmarshal(entry, &l); err != nil {
			continue
		}
		if l.Name == "" {
			l.Name = name
		}
		out[name] = &l
	}
	return out, nil
}

func (r *LayoutRepository) write(ctx context.Context, layouts map[string]*model.Layout) error {
	data, err := json.Marshal(layouts)
	if err != nil {
		return fmt.Errorf("encode layout collection: %w", err)
	}
	if err := r.backend.Set(ctx, layoutsKey(r.scope), data); err != nil {
		return fmt.Errorf("%w: %v", model.ErrStorageUnavailable, err)
	}
	return nil
}

// List returns metadata for all stored layouts sorted ascending by name.
// It never fails: an unavailable backend or unparsable slot yields an empty
// list. The error return is reserved for context cancellation.
func (r *LayoutRepository) List(ctx context.Context) ([]*model.LayoutMeta, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	layouts, err := r.read(ctx)
	if err != nil {
		return []*model.LayoutMeta{}, nil
	}
	out := make([]*model.LayoutMeta, 0, len(layouts))
	for _, l := range layouts {
		out = append(out, l.Meta())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Load returns the stored layout or nil when absent. It never fails on a
// missing or unavailable backend.
func (r *LayoutRepository) Load(ctx context.Context, name string) (*model.Layout, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	layouts, err := r.read(ctx)
	if err != nil {
		return nil, nil
	}
	return layouts[name], nil
}

// Save writes the layout under its name. When the name is taken and overwrite
// is false it fails with ErrLayoutExists. Overwrite replaces content, not
// identity: the stored record's CreatedAt is preserved. UpdatedAt is always
// restamped.
func (r *LayoutRepository) Save(ctx context.Context, layout *model.Layout, overwrite bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	layouts, err := r.read(ctx)
	if err != nil {
		return err
	}
	if existing, ok := layouts[layout.Name]; ok {
		if !overwrite {
			return fmt.Errorf("%w: %s", model.ErrLayoutExists, layout.Name)
		}
		if !existing.CreatedAt.IsZero() {
			layout.CreatedAt = existing.CreatedAt
		}
	}
	layout.Version = model.LayoutVersion
	layout.UpdatedAt = time.Now().UTC()
	layouts[layout.Name] = layout
	return r.write(ctx, layouts)
}

// Remove deletes the entry if present. An absent name is not an error.
func (r *LayoutRepository) Remove(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	layouts, err := r.read(ctx)
	if err != nil {
		return err
	}
	if _, ok := layouts[name]; !ok {
		return nil
	}
	delete(layouts, name)
	return r.write(ctx, layouts)
}

// Rename moves the record from oldName to newName, rewriting its Name field
// and restamping UpdatedAt. CreatedAt and Items are preserved.
func (r *LayoutRepository) Rename(ctx context.Context, oldName, newName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	layouts, err := r.read(ctx)
	if err != nil {
		return err
	}
	l, ok := layouts[oldName]
	if !ok {
		return fmt.Errorf("%w: %s", model.ErrLayoutNotFound, oldName)
	}
	if _, taken := layouts[newName]; taken {
		return fmt.Errorf("%w: %s", model.ErrLayoutExists, newName)
	}
	delete(layouts, oldName)
	l.Name = newName
	l.UpdatedAt = time.Now().UTC()
	layouts[newName] = l
	return r.write(ctx, layouts)
}

// Import is Save under another name, distinguished at the call site for
// auditing.
func (r *LayoutRepository) Import(ctx context.Context, layout *model.Layout, overwrite bool) error {
	return r.Save(ctx, layout, overwrite)
}

// Export returns the pretty-printed JSON encoding of the stored layout, or
// nil when absent. Pure read; it never fails for content reasons.
func (r *LayoutRepository) Export(ctx context.Context, name string) ([]byte, error) {
	l, err := r.Load(ctx, name)
	if err != nil || l == nil {
		return nil, err
	}
	return l.Encode()
}

var _ domain.LayoutRepository = (*LayoutRepository)(nil)

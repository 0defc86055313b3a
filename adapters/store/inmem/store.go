package inmem

import (
	"context"

	"github.com/gridpad/gridpad/adapters/store/slot"
	"github.com/gridpad/gridpad/models/cfgpad"
)

// Store bundles an in-memory backend with loading helpers for file: mode,
// where layouts declared in gridpad.yml are seeded into the process and
// writes stay in process.
type Store struct {
	Backend *Backend
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{Backend: NewBackend()}
}

// LoadFromConfig seeds the store with the layouts declared in a gridpad.yml
// configuration.
func (s *Store) LoadFromConfig(ctx context.Context, cfg *cfgpad.Root) error {
	layouts, err := cfg.ToLayouts()
	if err != nil {
		return err
	}
	repo := slot.NewLayoutRepository(s.Backend, cfg.ScopeModel())
	for _, l := range layouts {
		if err := repo.Save(ctx, l, true); err != nil {
			return err
		}
	}
	return nil
}

// LoadFromFile loads a gridpad.yml file into the store.
func (s *Store) LoadFromFile(ctx context.Context, path string) error {
	cfg, err := cfgpad.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	return s.LoadFromConfig(ctx, cfg)
}

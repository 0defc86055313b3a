package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	badgerstore "github.com/gridpad/gridpad/adapters/store/badger"
	"github.com/gridpad/gridpad/adapters/store/inmem"
	"github.com/gridpad/gridpad/adapters/store/rdb"
	"github.com/gridpad/gridpad/domain"
	"github.com/gridpad/gridpad/domain/model"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// findFlag recursively searches parents for a flag.
func findFlag(cmd *cobra.Command, name string) *pflag.Flag {
	for c := cmd; c != nil; c = c.Parent() {
		if f := c.Flags().Lookup(name); f != nil {
			return f
		}
		if f := c.PersistentFlags().Lookup(name); f != nil {
			return f
		}
	}
	return nil
}

// getDBURL extracts the db-url flag value from the command hierarchy.
func getDBURL(cmd *cobra.Command) string {
	f := findFlag(cmd, "db-url")
	if f != nil && f.Value.String() != "" {
		return f.Value.String()
	}
	return "badger:~/.gridpad/db"
}

// getScope extracts the (tenant, user) scope from the command hierarchy,
// defaulting to (default, local).
func getScope(cmd *cobra.Command) model.Scope {
	sc := model.Scope{}
	if f := findFlag(cmd, "tenant"); f != nil {
		sc.Tenant = f.Value.String()
	}
	if f := findFlag(cmd, "user"); f != nil {
		sc.User = f.Value.String()
	}
	return sc.Complete()
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

// buildBackend creates a storage backend based on db-url. The returned
// closer releases backend resources; it is never nil.
func buildBackend(cmd *cobra.Command) (domain.Backend, func() error, error) {
	dbURL := getDBURL(cmd)
	noop := func() error { return nil }

	switch {
	case strings.HasPrefix(dbURL, "file:"):
		// Presets from gridpad.yml; writes stay in process.
		filePath := strings.TrimPrefix(dbURL, "file:")
		if filePath == "" {
			return nil, noop, fmt.Errorf("file path is required for file: URL")
		}
		store := inmem.NewStore()
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()
		if err := store.LoadFromFile(ctx, filePath); err != nil {
			return nil, noop, fmt.Errorf("failed to load presets from %s: %w", filePath, err)
		}
		return store.Backend, noop, nil

	case strings.HasPrefix(dbURL, "mem:"):
		return inmem.NewBackend(), noop, nil

	case strings.HasPrefix(dbURL, "sqlite:") || strings.HasPrefix(dbURL, "sqlite3:"):
		db, err := rdb.OpenFromURL(dbURL)
		if err != nil {
			return nil, noop, err
		}
		if err := rdb.AutoMigrate(db); err != nil {
			return nil, noop, err
		}
		return rdb.NewBackend(db), noop, nil

	case strings.HasPrefix(dbURL, "badger:"):
		path := expandHome(strings.TrimPrefix(dbURL, "badger:"))
		if path == "" {
			return nil, noop, fmt.Errorf("directory path is required for badger: URL")
		}
		db, err := badgerstore.Open(badgerstore.DefaultConfig(path))
		if err != nil {
			return nil, noop, err
		}
		backend := badgerstore.NewBackend(db)
		return backend, backend.Close, nil

	default:
		return nil, noop, fmt.Errorf("unsupported db scheme: %s", dbURL)
	}
}

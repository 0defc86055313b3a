// Package gridpadenv resolves the Gridpad project environment: the project
// root, the .gridpad directory, and the contents of .gridpad/config.yml.
package gridpadenv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variable names
const (
	GridpadRootEnvKey = "GRIDPAD_ROOT"
	GridpadDirEnvKey  = "GRIDPAD_DIR"
)

// Directory and file names
const (
	GridpadDirName = ".gridpad"
	ConfigFileName = "config.yml"
)

// Env holds the resolved GRIDPAD_ROOT, GRIDPAD_DIR, and loaded
// .gridpad/config.yml contents. It provides utilities for path expansion and
// boundary checking.
type Env struct {
	GridpadRoot string  // Resolved GRIDPAD_ROOT (project directory)
	GridpadDir  string  // Resolved GRIDPAD_DIR (typically .gridpad)
	Version     int     // .gridpad/config.yml version
	Store       Store   // .gridpad/config.yml store configuration
	Scope       Scope   // .gridpad/config.yml default scope
	Logging     Logging // .gridpad/config.yml logging configuration
}

// Store represents the store configuration from .gridpad/config.yml
type Store struct {
	URL string `yaml:"url,omitempty"` // db-url, e.g. badger:$GRIDPAD_DIR/db
}

// Scope represents the default (tenant, user) scope from .gridpad/config.yml
type Scope struct {
	Tenant string `yaml:"tenant,omitempty"`
	User   string `yaml:"user,omitempty"`
}

// Logging represents the logging configuration from .gridpad/config.yml
type Logging struct {
	Dir           string `yaml:"dir,omitempty"`           // Log directory (default: $GRIDPAD_DIR/logs)
	Format        string `yaml:"format,omitempty"`        // Log format: json (default), human
	Level         string `yaml:"level,omitempty"`         // Log level: DEBUG, INFO (default), WARN, ERROR
	RetentionDays int    `yaml:"retentionDays,omitempty"` // Days to retain log files (default: 7)
}

// configFile represents the structure of .gridpad/config.yml for unmarshaling
type configFile struct {
	Version int     `yaml:"version"`
	Store   Store   `yaml:"store,omitempty"`
	Scope   Scope   `yaml:"scope,omitempty"`
	Logging Logging `yaml:"logging,omitempty"`
}

// Resolve discovers GRIDPAD_ROOT and GRIDPAD_DIR, then loads
// .gridpad/config.yml.
//
// Resolution order for GRIDPAD_ROOT:
//  1. gridpadRoot parameter (from flag or GRIDPAD_ROOT env)
//  2. Upward search from workDir for a parent containing .gridpad/
//
// Resolution order for GRIDPAD_DIR:
//  1. gridpadDir parameter (from flag or GRIDPAD_DIR env)
//  2. Default: $GRIDPAD_ROOT/.gridpad
//
// Parameters can be empty strings to trigger discovery/defaults.
func Resolve(gridpadRoot, gridpadDir, workDir string) (*Env, error) {
	if gridpadRoot == "" {
		found, err := searchForGridpadRoot(workDir)
		if err != nil {
			return nil, fmt.Errorf("searching for %s directory: %w", GridpadDirName, err)
		}
		if found == "" {
			return nil, fmt.Errorf("GRIDPAD_ROOT not specified and %s directory not found in ancestors of %q", GridpadDirName, workDir)
		}
		gridpadRoot = found
	}

	var err error
	gridpadRoot, err = filepath.Abs(gridpadRoot)
	if err != nil {
		return nil, fmt.Errorf("resolving GRIDPAD_ROOT to absolute path: %w", err)
	}
	gridpadRoot = filepath.Clean(gridpadRoot)

	info, err := os.Stat(gridpadRoot)
	if err != nil {
		return nil, fmt.Errorf("GRIDPAD_ROOT %q does not exist: %w", gridpadRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("GRIDPAD_ROOT %q is not a directory", gridpadRoot)
	}

	if gridpadDir == "" {
		gridpadDir = filepath.Join(gridpadRoot, GridpadDirName)
	}

	gridpadDir, err = filepath.Abs(gridpadDir)
	if err != nil {
		return nil, fmt.Errorf("resolving GRIDPAD_DIR to absolute path: %w", err)
	}
	gridpadDir = filepath.Clean(gridpadDir)

	info, err = os.Stat(gridpadDir)
	if err != nil {
		return nil, fmt.Errorf("GRIDPAD_DIR %q does not exist: %w", gridpadDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("GRIDPAD_DIR %q is not a directory", gridpadDir)
	}

	cfg := &Env{
		GridpadRoot: gridpadRoot,
		GridpadDir:  gridpadDir,
	}

	if err := cfg.loadConfigFile(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// searchForGridpadRoot searches upward from startDir for a parent containing
// a .gridpad directory. Returns the parent directory (not .gridpad itself) or
// empty string if not found.
func searchForGridpadRoot(startDir string) (string, error) {
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving start directory: %w", err)
	}

	current := absDir
	for {
		gridpadPath := filepath.Join(current, GridpadDirName)
		info, err := os.Stat(gridpadPath)
		if err == nil && info.IsDir() {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			// Reached filesystem root without finding .gridpad
			return "", nil
		}
		current = parent
	}
}

// loadConfigFile loads .gridpad/config.yml into the Env.
// Does nothing if the file doesn't exist (not an error).
func (e *Env) loadConfigFile() error {
	configPath := filepath.Join(e.GridpadDir, ConfigFileName)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("reading config file %q: %w", configPath, err)
	}

	var cf configFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return fmt.Errorf("parsing config file %q: %w", configPath, err)
	}

	e.Version = cf.Version
	e.Store = cf.Store
	e.Scope = cf.Scope
	e.Logging = cf.Logging

	return nil
}

// ExpandVars replaces $GRIDPAD_ROOT and $GRIDPAD_DIR in the given string.
func (e *Env) ExpandVars(s string) string {
	s = strings.ReplaceAll(s, "$GRIDPAD_ROOT", e.GridpadRoot)
	s = strings.ReplaceAll(s, "$GRIDPAD_DIR", e.GridpadDir)
	return s
}

// IsWithinBoundary checks if the given path is within GRIDPAD_ROOT or
// GRIDPAD_DIR. Relative store and log paths must resolve inside the project.
// The path should be an absolute path (already resolved).
func (e *Env) IsWithinBoundary(path string) bool {
	cleanPath := filepath.Clean(path)

	relToRoot, err := filepath.Rel(e.GridpadRoot, cleanPath)
	if err == nil && !strings.HasPrefix(relToRoot, "..") && relToRoot != ".." {
		return true
	}

	relToDir, err := filepath.Rel(e.GridpadDir, cleanPath)
	if err == nil && !strings.HasPrefix(relToDir, "..") && relToDir != ".." {
		return true
	}

	return false
}

// InitialConfigYAML generates the initial .gridpad/config.yml content.
// The generated YAML has proper field ordering and 2-space indentation.
func InitialConfigYAML() ([]byte, error) {
	defaultConfig := configFile{
		Version: 1,
		Store: Store{
			URL: "badger:$GRIDPAD_DIR/db",
		},
	}

	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&defaultConfig); err != nil {
		return nil, fmt.Errorf("encoding default config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("closing yaml encoder: %w", err)
	}

	return []byte(buf.String()), nil
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gridpad/gridpad/config/gridpadenv"
	"gopkg.in/yaml.v3"
)

func TestInitCommand(t *testing.T) {
	tests := []struct {
		name          string
		existingFiles map[string]string // path -> content
		forceFlag     bool
		wantErr       bool
		wantErrMsg    string
	}{
		{
			name:          "new_directory",
			existingFiles: nil,
			forceFlag:     false,
			wantErr:       false,
		},
		{
			name: "existing_config_no_force",
			existingFiles: map[string]string{
				".gridpad/config.yml": "version: 1\n",
			},
			forceFlag:  false,
			wantErr:    true,
			wantErrMsg: "already exists",
		},
		{
			name: "existing_config_with_force",
			existingFiles: map[string]string{
				".gridpad/config.yml": "version: 1\n",
			},
			forceFlag: true,
			wantErr:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()

			for relPath, content := range tt.existingFiles {
				fullPath := filepath.Join(tmpDir, relPath)
				if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
					t.Fatalf("creating parent directory: %v", err)
				}
				if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
					t.Fatalf("creating existing file: %v", err)
				}
			}

			oldWd, err := os.Getwd()
			if err != nil {
				t.Fatalf("getting working directory: %v", err)
			}
			defer func() {
				if err := os.Chdir(oldWd); err != nil {
					t.Errorf("restoring working directory: %v", err)
				}
			}()
			if err := os.Chdir(tmpDir); err != nil {
				t.Fatalf("changing to temp directory: %v", err)
			}

			cmd := newCmdInit()
			cmd.SetOut(&bytes.Buffer{})
			if tt.forceFlag {
				cmd.Flags().Set("force", "true")
			}

			err = cmd.RunE(cmd, nil)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.wantErrMsg) {
					t.Errorf("error = %q, want substring %q", err, tt.wantErrMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("init returned error: %v", err)
			}

			configPath := filepath.Join(tmpDir, gridpadenv.GridpadDirName, gridpadenv.ConfigFileName)
			data, err := os.ReadFile(configPath)
			if err != nil {
				t.Fatalf("reading generated config: %v", err)
			}
			var cfg map[string]any
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				t.Fatalf("generated config does not parse: %v", err)
			}
			if cfg["version"] != 1 {
				t.Errorf("version = %v, want 1", cfg["version"])
			}
			logsDir := filepath.Join(tmpDir, gridpadenv.GridpadDirName, "logs")
			if info, err := os.Stat(logsDir); err != nil || !info.IsDir() {
				t.Errorf("logs directory not created: %v", err)
			}
		})
	}
}

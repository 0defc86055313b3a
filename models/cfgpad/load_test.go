package cfgpad

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gridpad.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp yaml: %v", err)
	}
	return path
}

func TestLoad_Success(t *testing.T) {
	path := writeConfig(t, `
version: 1
scope:
  tenant: acme
  user: alice
layouts:
  - name: Ops
    widgets:
      - id: clock
        instanceId: i1
        title: Clock
        order: 1
        w: 2
        h: 2
      - id: cpu
        title: CPU
        props:
          unit: percent
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Version != 1 {
		t.Errorf("expected version 1, got %d", cfg.Version)
	}
	if cfg.Scope.Tenant != "acme" || cfg.Scope.User != "alice" {
		t.Errorf("unexpected scope: %+v", cfg.Scope)
	}
	if len(cfg.Layouts) != 1 || cfg.Layouts[0].Name != "Ops" {
		t.Fatalf("unexpected layouts: %+v", cfg.Layouts)
	}
	widgets := cfg.Layouts[0].Widgets
	if len(widgets) != 2 || widgets[0].InstanceID != "i1" || widgets[1].Props["unit"] != "percent" {
		t.Errorf("unexpected widgets: %+v", widgets)
	}
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	path := writeConfig(t, `
version: 1
layouts: []
bogus: true
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unknown field, got nil")
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	if _, err := Load("/path/does/not/exist.yml"); err == nil {
		t.Fatalf("expected error for missing file, got nil")
	}
}

package naming

import (
	"strings"
	"testing"
)

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if id == "" {
			t.Fatalf("NewID returned empty string")
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("NewID returned duplicate %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestPrefixedIDs(t *testing.T) {
	if id := NewDashboardID(); !strings.HasPrefix(id, "db-") {
		t.Errorf("NewDashboardID() = %q, want db- prefix", id)
	}
	if id := NewInstanceID(); !strings.HasPrefix(id, "w-") {
		t.Errorf("NewInstanceID() = %q, want w- prefix", id)
	}
}

func TestNewCompactID(t *testing.T) {
	id := NewCompactID()
	if len(id) != 12 {
		t.Fatalf("NewCompactID() length = %d, want 12", len(id))
	}
	for _, c := range id {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'z') {
			t.Errorf("NewCompactID() contains non-base36 char %q", c)
		}
	}
	if NewCompactID() == NewCompactID() {
		t.Errorf("consecutive compact ids collided")
	}
}

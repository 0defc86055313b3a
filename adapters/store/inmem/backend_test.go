package inmem

import (
	"context"
	"testing"
)

func TestBackend(t *testing.T) {
	ctx := context.Background()
	b := NewBackend()

	if _, ok, err := b.Get(ctx, "absent"); err != nil || ok {
		t.Fatalf("Get(absent) = ok=%v err=%v, want miss", ok, err)
	}

	if err := b.Set(ctx, "k", []byte("v1")); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	v, ok, err := b.Get(ctx, "k")
	if err != nil || !ok || string(v) != "v1" {
		t.Fatalf("Get(k) = %q ok=%v err=%v", v, ok, err)
	}

	// Mutating the returned slice must not affect the stored value.
	v[0] = 'X'
	v2, _, _ := b.Get(ctx, "k")
	if string(v2) != "v1" {
		t.Errorf("stored value mutated through returned slice: %q", v2)
	}

	if err := b.Set(ctx, "k", []byte("v2")); err != nil {
		t.Fatalf("Set overwrite returned error: %v", err)
	}
	v3, _, _ := b.Get(ctx, "k")
	if string(v3) != "v2" {
		t.Errorf("overwrite not visible: %q", v3)
	}

	if err := b.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, ok, _ := b.Get(ctx, "k"); ok {
		t.Errorf("key still present after delete")
	}

	// Deleting an absent key is not an error.
	if err := b.Delete(ctx, "absent"); err != nil {
		t.Errorf("Delete(absent) returned error: %v", err)
	}
}

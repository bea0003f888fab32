package crypto

import (
	"strings"
	"testing"
)

func TestNanoIDGenerateDefaultLength(t *testing.T) {
	id, err := NewNanoID().Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(id) != nanoidSize {
		t.Errorf("id length = %d, want %d", len(id), nanoidSize)
	}
	for _, r := range id {
		if !strings.ContainsRune(nanoidAlphabet, r) {
			t.Errorf("id contains %q, not in alphabet", r)
		}
	}
}

func TestNanoIDGenerateCustomLength(t *testing.T) {
	id, err := NewNanoID().Generate(8)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(id) != 8 {
		t.Errorf("id length = %d, want 8", len(id))
	}
}

func TestNanoIDGenerateUnique(t *testing.T) {
	gen := NewNanoID()
	seen := make(map[string]bool)

	for i := 0; i < 1000; i++ {
		id, err := gen.Generate()
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate id generated: %q", id)
		}
		seen[id] = true
	}
}

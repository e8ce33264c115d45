package document

import (
	"strings"
	"testing"
)

func TestNewIDShapeAndUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	var prev string
	for i := 0; i < 1000; i++ {
		id := NewID()
		if len(id) != 26 {
			t.Fatalf("expected 26-char id, got %d (%q)", len(id), id)
		}
		for _, c := range id {
			if !strings.ContainsRune(idAlpha, c) {
				t.Fatalf("unexpected character %q in id %q", c, id)
			}
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
		if prev != "" && id < prev {
			t.Fatalf("expected ids to sort in creation order: %q came after %q", id, prev)
		}
		prev = id
	}
}

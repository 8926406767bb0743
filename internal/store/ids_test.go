package store

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewIDPrefixAndCharset(t *testing.T) {
	for _, prefix := range []string{"bag", "cat", "item", "stage", "task"} {
		id := NewID(prefix)
		if !strings.HasPrefix(id, prefix+"-") {
			t.Fatalf("expected %s prefix, got %q", prefix, id)
		}
		suffix := strings.TrimPrefix(id, prefix+"-")
		if got, want := len(suffix), 8; got != want {
			t.Fatalf("expected suffix len %d, got %d (%q)", want, got, suffix)
		}
		for _, r := range suffix {
			if (r < 'a' || r > 'z') && (r < '2' || r > '7') {
				t.Fatalf("suffix %q contains %q outside lowercase base32", suffix, r)
			}
		}
	}
}

func TestNewDocumentIDIsUUID(t *testing.T) {
	id := NewDocumentID()
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("NewDocumentID returned %q: %v", id, err)
	}
}

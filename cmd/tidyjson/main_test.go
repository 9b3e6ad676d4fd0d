package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadInputFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte(`{"a":1}`), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	data, err := readInput(path)
	if err != nil {
		t.Fatalf("readInput error: %v", err)
	}
	if string(data) != `{"a":1}` {
		t.Fatalf("unexpected contents: %q", data)
	}
}

func TestReadInputMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := readInput(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

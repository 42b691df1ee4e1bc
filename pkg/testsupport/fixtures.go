package testsupport

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-flexform/pkg/flexmodel"
)

// LoadStore reads every model document under dir into a flexmodel.Store.
// Testing helpers fail the test on error to keep table tests concise.
func LoadStore(t *testing.T, dir string) *flexmodel.Store {
	t.Helper()

	store, err := LoadStoreFromPath(dir)
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return store
}

// LoadStoreFromPath returns a Store without requiring testing.T, allowing
// callers to wire fixtures in setup functions.
func LoadStoreFromPath(dir string) (*flexmodel.Store, error) {
	if dir == "" {
		return nil, errors.New("testsupport: fixture directory is required")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("testsupport: stat fixtures: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("testsupport: %s is not a directory", dir)
	}
	store, err := flexmodel.LoadFS(os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("testsupport: load fixtures: %w", err)
	}
	return store, nil
}

// MarshalGolden renders value as indented JSON with a trailing newline, the
// format golden files are stored in.
func MarshalGolden(t *testing.T, value any) []byte {
	t.Helper()

	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	return append(payload, '\n')
}

// AssertGolden compares value against the golden file at path. When
// UPDATE_GOLDENS is set the file is rewritten instead.
func AssertGolden(t *testing.T, path string, value any) {
	t.Helper()

	got := MarshalGolden(t, value)
	if WriteMaybeGolden(t, path, got) {
		return
	}
	want := MustReadGolden(t, path)
	if diff := CompareGolden(string(want), string(got)); diff != "" {
		t.Fatalf("golden mismatch %s (-want +got):\n%s", path, diff)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Package testsupport holds golden-file helpers shared by package tests.
package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// MustMarshal serializes a payload with two-space indentation, failing the
// test on error.
func MustMarshal(t *testing.T, value any) []byte {
	t.Helper()

	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return payload
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

// AssertJSONEqual compares two JSON documents structurally and fails the
// test with a cmp diff when they differ. Key order and whitespace are
// ignored.
func AssertJSONEqual(t *testing.T, want, got []byte) {
	t.Helper()

	if diff := DiffJSON(want, got); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

// DiffJSON returns a diff between two JSON documents, or the empty string
// when they are structurally equal.
func DiffJSON(want, got []byte) string {
	var wantValue, gotValue any
	if err := json.Unmarshal(want, &wantValue); err != nil {
		return "want is not valid JSON: " + err.Error()
	}
	if err := json.Unmarshal(got, &gotValue); err != nil {
		return "got is not valid JSON: " + err.Error()
	}
	return cmp.Diff(wantValue, gotValue)
}

// AssertGolden marshals the payload and compares it against the golden file
// at path. Run tests with UPDATE_GOLDENS=1 to rewrite the golden instead.
func AssertGolden(t *testing.T, path string, value any) {
	t.Helper()

	payload := MustMarshal(t, value)
	if WriteMaybeGolden(t, path, payload) {
		return
	}
	AssertJSONEqual(t, MustReadGolden(t, path), payload)
}

package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteText writes content to name inside a fresh temp directory and returns
// the full path.
func WriteText(t testing.TB, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	WriteFile(t, path, []byte(content))
	return path
}

// WriteFile writes data to path, creating parent directories as needed.
func WriteFile(t testing.TB, path string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

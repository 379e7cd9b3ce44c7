package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// WriteSettingsFile writes content to name inside a fresh in-memory
// filesystem and returns both.
func WriteSettingsFile(t *testing.T, name, content string) (fs afero.Fs, path string) {
	t.Helper()

	fs = afero.NewMemMapFs()
	path = filepath.Join("/home/test/.i3", name)
	if err := afero.WriteFile(fs, path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write settings fixture %s: %v", path, err)
	}
	return fs, path
}

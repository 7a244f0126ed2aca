package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/teplostanski/mergeful/pkg/filesystem"
	"github.com/teplostanski/mergeful/pkg/types"
)

// MemoryFS returns an in-memory filesystem holding files. Parent
// directories of every file are created; extra empty directories can be
// listed in dirs.
func MemoryFS(t *testing.T, files map[string]string, dirs ...string) types.FS {
	t.Helper()

	mem := afero.NewMemMapFs()
	for _, dir := range dirs {
		if err := mem.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}
	for path, content := range files {
		if err := mem.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create parent directories for %s: %v", path, err)
		}
		if err := afero.WriteFile(mem, path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create file %s: %v", path, err)
		}
	}
	return filesystem.NewAferoFS(mem)
}

// MustRead reads path from fsys, failing the test on error
func MustRead(t *testing.T, fsys types.FS, path string) string {
	t.Helper()

	content, err := fsys.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

// Exists reports whether path can be stat'ed on fsys
func Exists(fsys types.FS, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}

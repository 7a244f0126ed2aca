package types

import (
	"io/fs"
)

// FS is the filesystem capability the merge pipeline is given
type FS interface {
	// Stat is used for the explicit source existence check
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

package testutil

import (
	"io/fs"

	"github.com/teplostanski/mergeful/pkg/types"
)

// FaultFS wraps a filesystem and fails or panics on selected paths
type FaultFS struct {
	types.FS

	statErrors  map[string]error
	readErrors  map[string]error
	writeErrors map[string]error
	writePanics map[string]any

	Writes int
}

// NewFaultFS wraps base
func NewFaultFS(base types.FS) *FaultFS {
	return &FaultFS{
		FS:          base,
		statErrors:  make(map[string]error),
		readErrors:  make(map[string]error),
		writeErrors: make(map[string]error),
		writePanics: make(map[string]any),
	}
}

// FailStat makes Stat(path) return err
func (f *FaultFS) FailStat(path string, err error) *FaultFS {
	f.statErrors[path] = err
	return f
}

// FailRead makes ReadFile(path) return err
func (f *FaultFS) FailRead(path string, err error) *FaultFS {
	f.readErrors[path] = err
	return f
}

// FailWrite makes WriteFile(path) return err
func (f *FaultFS) FailWrite(path string, err error) *FaultFS {
	f.writeErrors[path] = err
	return f
}

// PanicOnWrite makes WriteFile(path) panic with v
func (f *FaultFS) PanicOnWrite(path string, v any) *FaultFS {
	f.writePanics[path] = v
	return f
}

func (f *FaultFS) Stat(name string) (fs.FileInfo, error) {
	if err, ok := f.statErrors[name]; ok {
		return nil, err
	}
	return f.FS.Stat(name)
}

func (f *FaultFS) ReadFile(name string) ([]byte, error) {
	if err, ok := f.readErrors[name]; ok {
		return nil, err
	}
	return f.FS.ReadFile(name)
}

func (f *FaultFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	f.Writes++
	if v, ok := f.writePanics[name]; ok {
		panic(v)
	}
	if err, ok := f.writeErrors[name]; ok {
		return err
	}
	return f.FS.WriteFile(name, data, perm)
}

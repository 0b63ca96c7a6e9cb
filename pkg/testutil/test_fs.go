package testutil

import (
	"github.com/ntpeters/base16-template-converter/pkg/filesystem"
	"github.com/ntpeters/base16-template-converter/pkg/types"
	"github.com/spf13/afero"
)

// TestFS is an in-memory types.FS. Mem gives tests direct access to the
// backing afero filesystem for setup the converter never performs, such
// as creating directories.
type TestFS struct {
	types.FS
	Mem afero.Fs
}

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() *TestFS {
	mem := afero.NewMemMapFs()
	return &TestFS{FS: filesystem.NewAferoFS(mem), Mem: mem}
}

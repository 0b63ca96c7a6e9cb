package filesystem

import (
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoFSRoundTrip(t *testing.T) {
	mem := afero.NewMemMapFs()
	fsys := NewAferoFS(mem)

	require.NoError(t, mem.MkdirAll("/themes", 0755))
	require.NoError(t, fsys.WriteFile("/themes/a.mustache", []byte("{{scheme-name}}"), 0644))

	data, err := fsys.ReadFile("/themes/a.mustache")
	require.NoError(t, err)
	assert.Equal(t, "{{scheme-name}}", string(data))

	info, err := fsys.Stat("/themes/a.mustache")
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	_, err = fsys.Stat("/themes/b.mustache")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestAferoFSReadDirectory(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/themes", 0755))
	fsys := NewAferoFS(mem)

	_, err := fsys.ReadFile("/themes")
	assert.ErrorIs(t, err, fs.ErrInvalid)
}

func TestAferoFSReadOnly(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "/a.erb", []byte("x"), 0644))

	fsys := NewAferoFS(afero.NewReadOnlyFs(base))
	data, err := fsys.ReadFile("/a.erb")
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
	assert.Error(t, fsys.WriteFile("/a.mustache", []byte("y"), 0644))
}

func TestOSFS(t *testing.T) {
	dir := t.TempDir()
	fsys := NewOS()

	path := dir + "/theme.mustache"
	require.NoError(t, fsys.WriteFile(path, []byte("ok"), 0644))
	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(data))

	_, err = fsys.Stat(dir + "/missing.erb")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

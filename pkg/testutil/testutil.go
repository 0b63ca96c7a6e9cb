package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateFile creates a file with the given content in the specified directory.
// Parent directories are created as needed.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755), "create parent of %s", path)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "create %s", path)
	return path
}

// ReadFile reads the content of a file and returns it as a string.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err, "read %s", path)
	return string(content)
}

// AssertFileContent checks that a file exists and has the expected content.
func AssertFileContent(t *testing.T, path, expected string) {
	t.Helper()

	require.FileExists(t, path)
	assert.Equal(t, expected, ReadFile(t, path), "content of %s", path)
}

// AssertNoFile checks that a file does not exist.
func AssertNoFile(t *testing.T, path string) {
	t.Helper()
	assert.NoFileExists(t, path)
}

// IsolateXDG points the XDG config and state homes at a fresh temp dir
// for the duration of the test.
func IsolateXDG(t *testing.T) string {
	t.Helper()

	// Registered first so it runs after the environment is restored
	t.Cleanup(xdg.Reload)

	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	xdg.Reload()
	return root
}

// ScalarTag builds a legacy scalar tag such as <% @scheme %>
func ScalarTag(name string) string {
	return fmt.Sprintf("<%% @%s %%>", name)
}

// ColorTag builds a legacy color tag. A negative index yields the
// whole-value form.
func ColorTag(base, typ string, index int) string {
	if index < 0 {
		return fmt.Sprintf(`<%%= @base["%s"]["%s"] %%>`, base, typ)
	}
	return fmt.Sprintf(`<%%= @base["%s"]["%s"][%d] %%>`, base, typ, index)
}

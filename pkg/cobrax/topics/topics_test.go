package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"syntax.md":       {Data: []byte("# Syntax\n\nLegacy tags")},
		"config.txt":      {Data: []byte("Configuration")},
		"nested/extra.md": {Data: []byte("extra")},
		"ignored.json":    {Data: []byte("{}")},
		"notes.txxt":      {Data: []byte("custom")},
	}
}

func TestScan(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(testFS(), Options{})
		require.NoError(t, tm.Scan())

		assert.Equal(t, []string{"config", "extra", "syntax"}, tm.ListTopics())

		topic, ok := tm.GetTopic("syntax")
		require.True(t, ok)
		assert.Equal(t, "# Syntax\n\nLegacy tags", topic.Content)
		assert.Equal(t, "syntax.md", topic.FilePath)
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := New(testFS(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.Scan())
		assert.Equal(t, []string{"notes"}, tm.ListTopics())
	})
}

func TestGetTopicStripsFlagDashes(t *testing.T) {
	tm := New(testFS(), Options{})
	require.NoError(t, tm.Scan())

	_, ok := tm.GetTopic("--config")
	assert.True(t, ok)
	_, ok = tm.GetTopic("missing")
	assert.False(t, ok)
}

func TestInitializeHelpCommand(t *testing.T) {
	root := &cobra.Command{Use: "app", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(&cobra.Command{Use: "version", Short: "Print version", Run: func(*cobra.Command, []string) {}})

	_, err := Initialize(root, testFS(), Options{})
	require.NoError(t, err)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"list topics", []string{"help", "topics"}, "Available help topics:"},
		{"show topic", []string{"help", "syntax"}, "Legacy tags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			root.SetOut(&out)
			root.SetArgs(tt.args)
			require.NoError(t, root.Execute())
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestPlainRenderer(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "# x", r.Render("# x", ".md"))
}

func TestGlamourRendererSkipsNonMarkdown(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
}

func TestPlainGlamourRendererRendersMarkdown(t *testing.T) {
	r := NewPlainGlamourRenderer()
	out := r.Render("# Title\n\nbody text", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "body text")
}

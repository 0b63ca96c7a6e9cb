package residual

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Tag
	}{
		{
			name: "clean document",
			text: "{{scheme-name}}\n{{base00-hex}}\n",
		},
		{
			name: "single tag",
			text: "{{scheme-name}}\ncolor: <% =@base[\"00\"][\"hsl\"] %>\n",
			want: []Tag{{Line: 2, Column: 8, Text: `<% =@base["00"]["hsl"] %>`}},
		},
		{
			name: "multi-line tag",
			text: "a\n  <% if dark\n  %>\nb <%x%>",
			want: []Tag{
				{Line: 2, Column: 3, Text: "<% if dark\n  %>"},
				{Line: 4, Column: 3, Text: "<%x%>"},
			},
		},
		{
			name: "open without close",
			text: "<% dangling",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scan(tt.text)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTagSummary(t *testing.T) {
	tags := Scan("<% if\n   dark %>")
	require.Len(t, tags, 1)
	assert.Equal(t, "<% if dark %>", tags[0].Summary())
}

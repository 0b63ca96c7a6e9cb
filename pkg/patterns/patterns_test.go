package patterns

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/ntpeters/base16-template-converter/pkg/scheme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func legacyTag(base scheme.ColorBase, typ scheme.ColorType, sel Selector) string {
	if sel.Indexed {
		return fmt.Sprintf(`<%% =@base["%s"]["%s"][%d] %%>`, base, typ, sel.Component.Index())
	}
	return fmt.Sprintf(`<%% =@base["%s"]["%s"] %%>`, base, typ)
}

func TestLegacyScalarPatternSpaceTolerance(t *testing.T) {
	re := regexp.MustCompile(LegacyScalarPattern("scheme"))

	for _, in := range []string{"<% @scheme %>", "<%@scheme%>", "<% @scheme%>", "<%@scheme %>"} {
		assert.True(t, re.MatchString(in), in)
	}
	for _, in := range []string{"<%  @scheme %>", "<% @schemes %>", "<% scheme %>"} {
		assert.False(t, re.MatchString(in), in)
	}
}

func TestLegacyScalarPatternQuotesName(t *testing.T) {
	re := regexp.MustCompile(LegacyScalarPattern("slug(@scheme)"))
	assert.True(t, re.MatchString("<% @slug(@scheme) %>"))
	assert.False(t, re.MatchString("<% @slug@scheme %>"))
}

func TestLegacyColorPattern(t *testing.T) {
	tests := []struct {
		name    string
		sel     Selector
		want    string
		matches []string
		misses  []string
	}{
		{
			name:    "indexed",
			sel:     At(scheme.Green),
			want:    `<%\s?=\s?@base\["0F"\]\["hex"\]\[1\]\s?%>`,
			matches: []string{`<% =@base["0F"]["hex"][1] %>`, `<%=@base["0F"]["hex"][1]%>`, `<%= @base["0F"]["hex"][1] %>`},
			misses:  []string{`<% =@base["0F"]["hex"] %>`, `<% =@base["0F"]["hex"][2] %>`, `<% =@base["0f"]["hex"][1] %>`},
		},
		{
			name:    "whole",
			sel:     Whole(),
			want:    `<%\s?=\s?@base\["0F"\]\["hex"\]\s?%>`,
			matches: []string{`<% =@base["0F"]["hex"] %>`},
			misses:  []string{`<% =@base["0F"]["hex"][1] %>`, `<% =@base["0F"]["hexbgr"] %>`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LegacyColorPattern(scheme.ColorBase(15), scheme.Hex, tt.sel)
			assert.Equal(t, tt.want, got)

			re := regexp.MustCompile(got)
			for _, in := range tt.matches {
				assert.True(t, re.MatchString(in), in)
			}
			for _, in := range tt.misses {
				assert.False(t, re.MatchString(in), in)
			}
		})
	}
}

func TestNewPlaceholderDirectTypes(t *testing.T) {
	targets := map[scheme.ColorType]string{
		scheme.Hex:  "hex",
		scheme.RGB:  "rgb",
		scheme.SRGB: "dec",
	}

	for typ, target := range targets {
		for _, base := range scheme.Bases() {
			for _, c := range scheme.Components() {
				want := fmt.Sprintf("{{base%s-%s-%s}}", base, target, c.Letter())
				assert.Equal(t, want, NewPlaceholder(base, typ, At(c)))
			}
			assert.Equal(t, fmt.Sprintf("{{base%s-%s}}", base, target), NewPlaceholder(base, typ, Whole()))
		}
	}
}

func TestNewPlaceholderHexBGRReversesComponents(t *testing.T) {
	want := map[scheme.Component]string{
		scheme.Red:   "b",
		scheme.Green: "g",
		scheme.Blue:  "r",
	}

	for _, base := range scheme.Bases() {
		for c, letter := range want {
			got := NewPlaceholder(base, scheme.HexBGR, At(c))
			assert.Equal(t, fmt.Sprintf("{{base%s-hex-%s}}", base, letter), got)
		}
	}
}

func TestNewPlaceholderDHexDoubles(t *testing.T) {
	for _, base := range scheme.Bases() {
		for _, c := range scheme.Components() {
			hex := NewPlaceholder(base, scheme.Hex, At(c))
			assert.Equal(t, hex+hex, NewPlaceholder(base, scheme.DHex, At(c)))
		}
	}
}

// Whole-value hexbgr and dhex are compositions of their indexed forms.
// No legacy template is known to use them, so only the composition is
// pinned here.
func TestNewPlaceholderComposedWholeValues(t *testing.T) {
	base := scheme.ColorBase(0x0A)

	assert.Equal(t,
		"{{base0A-hex-b}}{{base0A-hex-g}}{{base0A-hex-r}}",
		NewPlaceholder(base, scheme.HexBGR, Whole()))
	assert.Equal(t,
		"{{base0A-hex-r}}{{base0A-hex-r}}{{base0A-hex-g}}{{base0A-hex-g}}{{base0A-hex-b}}{{base0A-hex-b}}",
		NewPlaceholder(base, scheme.DHex, Whole()))
}

func TestAllEnumeratesEveryPattern(t *testing.T) {
	all := All()
	require.Len(t, all, 3+5*16*4)

	assert.Equal(t, "scheme", all[0].Label)
	assert.Equal(t, "author", all[1].Label)
	assert.Equal(t, "slug(@scheme)", all[2].Label)
	assert.Equal(t, "base00 hex [0]", all[3].Label)
	assert.Equal(t, "base00 hex", all[6].Label)
	assert.Equal(t, "base01 hex [0]", all[7].Label)
	assert.Equal(t, "base0F srgb", all[len(all)-1].Label)

	seen := make(map[string]bool, len(all))
	for _, p := range all {
		assert.False(t, seen[p.Legacy], "duplicate pattern %s", p.Legacy)
		seen[p.Legacy] = true
	}
}

func TestPatternsAreDisjoint(t *testing.T) {
	all := All()

	for _, typ := range scheme.ColorTypes() {
		for _, base := range scheme.Bases() {
			for _, sel := range []Selector{At(scheme.Red), At(scheme.Green), At(scheme.Blue), Whole()} {
				tag := legacyTag(base, typ, sel)
				matched := 0
				for _, p := range all {
					if p.Regexp().MatchString(tag) {
						matched++
					}
				}
				assert.Equal(t, 1, matched, tag)
			}
		}
	}
}

func TestPatternApply(t *testing.T) {
	p := Pattern{
		Legacy:      LegacyColorPattern(0, scheme.Hex, At(scheme.Red)),
		Replacement: NewPlaceholder(0, scheme.Hex, At(scheme.Red)),
	}

	out, n := p.Apply(`a <% =@base["00"]["hex"][0] %> b <%=@base["00"]["hex"][0]%>`)
	assert.Equal(t, 2, n)
	assert.Equal(t, "a {{base00-hex-r}} b {{base00-hex-r}}", out)

	out, n = p.Apply(out)
	assert.Equal(t, 0, n)
	assert.Equal(t, "a {{base00-hex-r}} b {{base00-hex-r}}", out)
}

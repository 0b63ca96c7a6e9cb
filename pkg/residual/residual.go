// Package residual finds legacy tags that survived a conversion.
//
// A residual tag is any `<% ... %>` pair left in the converted text,
// including pairs that span lines. Finding one is not an error: it means
// the template uses a tag shape the converter does not know and the user
// has to convert it by hand.
package residual

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`(?s)<%.*?%>`)

// Tag is one unconverted legacy tag.
type Tag struct {
	// Line and Column are 1-based and point at the opening delimiter.
	Line   int
	Column int
	Text   string
}

// Scan returns every legacy tag pair left in text, in document order.
func Scan(text string) []Tag {
	locs := tagPattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}

	tags := make([]Tag, 0, len(locs))
	line, lineStart, pos := 1, 0, 0
	for _, loc := range locs {
		for ; pos < loc[0]; pos++ {
			if text[pos] == '\n' {
				line++
				lineStart = pos + 1
			}
		}
		tags = append(tags, Tag{
			Line:   line,
			Column: loc[0] - lineStart + 1,
			Text:   text[loc[0]:loc[1]],
		})
	}
	return tags
}

// Summary is a one-line rendering of a tag for advisories; multi-line tags
// are collapsed.
func (t Tag) Summary() string {
	return strings.Join(strings.Fields(t.Text), " ")
}

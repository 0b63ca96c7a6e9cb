package convert

import "github.com/ntpeters/base16-template-converter/pkg/patterns"

// Document is the text buffer being converted. It is mutated in place by
// every substitution.
type Document struct {
	text string
}

// NewDocument wraps source text.
func NewDocument(text string) *Document {
	return &Document{text: text}
}

// Text returns the current contents.
func (d *Document) Text() string {
	return d.text
}

// StripHeader removes the leading legacy header block, if any.
func (d *Document) StripHeader() bool {
	text, stripped := StripHeader(d.text)
	d.text = text
	return stripped
}

// Apply runs one pattern over the whole document and returns the number
// of replaced tags.
func (d *Document) Apply(p patterns.Pattern) int {
	text, n := p.Apply(d.text)
	d.text = text
	return n
}

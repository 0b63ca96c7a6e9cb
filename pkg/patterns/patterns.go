// Package patterns derives every legacy-tag/mustache-placeholder pair the
// converter knows about.
//
// Legacy tags come in two shapes:
//
//	<% @scheme %>                        scalar
//	<% =@base["0F"]["hex"][1] %>         color, optionally indexed
//
// Each shape tolerates at most one whitespace character on either side of
// the delimiters. The generated replacements are complete mustache
// placeholders, braces included, so derived types (hexbgr, dhex) can be
// expressed as a concatenation of several hex placeholders.
package patterns

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/ntpeters/base16-template-converter/pkg/scheme"
)

const (
	tagOpen  = `<%\s?`
	tagClose = `\s?%>`
)

// Selector picks either one component of a color or the whole value.
type Selector struct {
	Component scheme.Component
	Indexed   bool
}

// At selects a single component.
func At(c scheme.Component) Selector {
	return Selector{Component: c, Indexed: true}
}

// Whole selects the complete color value.
func Whole() Selector {
	return Selector{}
}

func (s Selector) String() string {
	if !s.Indexed {
		return "whole"
	}
	return fmt.Sprintf("[%d]", s.Component.Index())
}

// LegacyScalarPattern returns the expression matching the legacy tag whose
// body is exactly @name.
func LegacyScalarPattern(name string) string {
	return tagOpen + "@" + regexp.QuoteMeta(name) + tagClose
}

// LegacyColorPattern returns the expression matching
// <% =@base["BASE"]["type"] %> or, for an indexed selector,
// <% =@base["BASE"]["type"][i] %>. Base and type are inserted as-is; the
// enumerated domain only contains characters that are literal in RE2.
func LegacyColorPattern(base scheme.ColorBase, typ scheme.ColorType, sel Selector) string {
	var b strings.Builder
	b.WriteString(tagOpen)
	b.WriteString(`=\s?@base\["`)
	b.WriteString(base.String())
	b.WriteString(`"\]\["`)
	b.WriteString(string(typ))
	b.WriteString(`"\]`)
	if sel.Indexed {
		fmt.Fprintf(&b, `\[%d\]`, sel.Component.Index())
	}
	b.WriteString(tagClose)
	return b.String()
}

// ScalarPlaceholder wraps a scalar name in mustache braces.
func ScalarPlaceholder(name string) string {
	return "{{" + name + "}}"
}

// NewPlaceholder returns the mustache text replacing the legacy color tag
// for (base, typ, sel).
//
// hexbgr and dhex have no mustache type of their own. An indexed hexbgr
// tag becomes the hex placeholder of the mirrored component (r and b swap,
// g stays); an indexed dhex tag becomes its hex placeholder written twice.
// Whole values of both are the concatenation of their three indexed forms.
func NewPlaceholder(base scheme.ColorBase, typ scheme.ColorType, sel Selector) string {
	switch typ.Derivation() {
	case scheme.Reversed:
		if !sel.Indexed {
			return composeComponents(base, typ)
		}
		return directPlaceholder(base, typ.Target(), At(mirror(sel.Component)))
	case scheme.Doubled:
		if !sel.Indexed {
			return composeComponents(base, typ)
		}
		p := directPlaceholder(base, typ.Target(), sel)
		return p + p
	default:
		return directPlaceholder(base, typ.Target(), sel)
	}
}

func directPlaceholder(base scheme.ColorBase, target string, sel Selector) string {
	name := "base" + base.String() + "-" + target
	if sel.Indexed {
		name += "-" + sel.Component.Letter()
	}
	return ScalarPlaceholder(name)
}

func composeComponents(base scheme.ColorBase, typ scheme.ColorType) string {
	var b strings.Builder
	for _, c := range scheme.Components() {
		b.WriteString(NewPlaceholder(base, typ, At(c)))
	}
	return b.String()
}

// mirror maps index i to (2i-1+3) mod 3: 0->2, 1->1, 2->0.
func mirror(c scheme.Component) scheme.Component {
	return scheme.Component((2*c.Index() - 1 + 3) % 3)
}

// Pattern is one find/replace rule.
type Pattern struct {
	// Label names the rule in progress output, e.g. "base0A hexbgr [2]".
	Label string
	// Legacy is the RE2 expression matching the old tag.
	Legacy string
	// Replacement is the literal mustache text.
	Replacement string

	re *regexp.Regexp
}

// Regexp returns the compiled legacy expression.
func (p Pattern) Regexp() *regexp.Regexp {
	if p.re != nil {
		return p.re
	}
	return regexp.MustCompile(p.Legacy)
}

// Apply replaces every occurrence of the legacy tag in text and reports
// how many were replaced.
func (p Pattern) Apply(text string) (string, int) {
	re := p.Regexp()
	n := len(re.FindAllStringIndex(text, -1))
	if n == 0 {
		return text, 0
	}
	return re.ReplaceAllLiteralString(text, p.Replacement), n
}

// ScalarPatterns returns the scheme name, author and slug rules.
func ScalarPatterns() []Pattern {
	var out []Pattern
	for _, s := range scheme.Scalars() {
		out = append(out, Pattern{
			Label:       s.Legacy,
			Legacy:      LegacyScalarPattern(s.Legacy),
			Replacement: ScalarPlaceholder(s.Placeholder),
		})
	}
	return out
}

// ColorPatterns returns the rules for every type, base and selector:
// types in conversion order, bases ascending, components r, g, b and then
// the whole value.
func ColorPatterns() []Pattern {
	selectors := make([]Selector, 0, 4)
	for _, c := range scheme.Components() {
		selectors = append(selectors, At(c))
	}
	selectors = append(selectors, Whole())

	var out []Pattern
	for _, typ := range scheme.ColorTypes() {
		for _, base := range scheme.Bases() {
			for _, sel := range selectors {
				label := fmt.Sprintf("base%s %s", base, typ)
				if sel.Indexed {
					label += " " + sel.String()
				}
				out = append(out, Pattern{
					Label:       label,
					Legacy:      LegacyColorPattern(base, typ, sel),
					Replacement: NewPlaceholder(base, typ, sel),
				})
			}
		}
	}
	return out
}

var (
	allOnce sync.Once
	all     []Pattern
)

// All returns the complete ordered rule set, scalars first. The
// expressions are compiled once per process.
func All() []Pattern {
	allOnce.Do(func() {
		all = append(ScalarPatterns(), ColorPatterns()...)
		for i := range all {
			all[i].re = regexp.MustCompile(all[i].Legacy)
		}
	})
	out := make([]Pattern, len(all))
	copy(out, all)
	return out
}

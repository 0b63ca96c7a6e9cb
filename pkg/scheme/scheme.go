// Package scheme holds the fixed vocabulary shared by the legacy and the
// mustache template syntaxes: the 16 color bases, the color
// representation types, the RGB components and the scheme scalars.
//
// All tables in this package are initialized once and never mutated.
package scheme

import "fmt"

// BaseCount is the number of palette slots in a base16 scheme.
const BaseCount = 16

// ColorBase identifies one of the 16 palette slots, 0x00 through 0x0F.
type ColorBase int

// String renders the base as two uppercase hex digits ("00".."0F").
func (b ColorBase) String() string {
	return fmt.Sprintf("%02X", int(b))
}

// Bases returns all color bases in ascending order.
func Bases() []ColorBase {
	bases := make([]ColorBase, BaseCount)
	for i := range bases {
		bases[i] = ColorBase(i)
	}
	return bases
}

// Component selects the red, green or blue element of a color value.
type Component int

const (
	Red Component = iota
	Green
	Blue
)

var componentLetters = [...]string{"r", "g", "b"}

// Components returns r, g, b in index order.
func Components() []Component {
	return []Component{Red, Green, Blue}
}

// Index is the position used by the legacy syntax (`[0]`, `[1]`, `[2]`).
func (c Component) Index() int {
	return int(c)
}

// Letter is the suffix used by the mustache syntax.
func (c Component) Letter() string {
	return componentLetters[c]
}

func (c Component) String() string {
	return c.Letter()
}

// Derivation describes how a legacy color type is expressed in the
// mustache syntax.
type Derivation int

const (
	// Direct types have a mustache type of their own.
	Direct Derivation = iota
	// Reversed types are hex values with the component order flipped.
	Reversed
	// Doubled types repeat every hex component twice.
	Doubled
)

// ColorType is a legacy color representation.
type ColorType string

const (
	Hex    ColorType = "hex"
	HexBGR ColorType = "hexbgr"
	DHex   ColorType = "dhex"
	RGB    ColorType = "rgb"
	SRGB   ColorType = "srgb"
)

type typeRule struct {
	derivation Derivation
	target     string
}

// typeRules is the single place where legacy types are mapped to their
// mustache counterparts.
var typeRules = map[ColorType]typeRule{
	Hex:    {derivation: Direct, target: "hex"},
	HexBGR: {derivation: Reversed, target: "hex"},
	DHex:   {derivation: Doubled, target: "hex"},
	RGB:    {derivation: Direct, target: "rgb"},
	SRGB:   {derivation: Direct, target: "dec"},
}

var colorTypes = []ColorType{Hex, HexBGR, DHex, RGB, SRGB}

// ColorTypes returns every legacy color type in conversion order.
func ColorTypes() []ColorType {
	out := make([]ColorType, len(colorTypes))
	copy(out, colorTypes)
	return out
}

// Derivation returns how t maps to the mustache syntax.
func (t ColorType) Derivation() Derivation {
	return typeRules[t].derivation
}

// Target is the mustache type name the values of t are built from.
func (t ColorType) Target() string {
	return typeRules[t].target
}

// Scalar is a non-color scheme value.
type Scalar struct {
	// Legacy is the body of the old tag after the `@` sigil.
	Legacy string
	// Placeholder is the mustache name.
	Placeholder string
}

var scalars = []Scalar{
	{Legacy: "scheme", Placeholder: "scheme-name"},
	{Legacy: "author", Placeholder: "scheme-author"},
	{Legacy: "slug(@scheme)", Placeholder: "scheme-slug"},
}

// Scalars returns the scheme name, author and slug in conversion order.
func Scalars() []Scalar {
	out := make([]Scalar, len(scalars))
	copy(out, scalars)
	return out
}

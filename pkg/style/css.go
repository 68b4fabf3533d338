// Package style maps Figma visual properties onto equivalent CSS
// declarations. All functions are pure lookups over the figma API types;
// nothing here touches the network or mutates its input.
package style

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hellenic-development/figma-render/pkg/figma"
)

// imagePlaceholder is used for IMAGE fills whose render URL could not be
// resolved, so the element still occupies its bounds visibly.
const imagePlaceholder = "#cccccc"

// Decl is a single CSS property/value pair.
type Decl struct {
	Property string
	Value    string
}

// Declarations is an ordered list of CSS declarations. Order is
// preserved when serialized, matching the order properties were added.
type Declarations struct {
	decls []Decl
}

// Add appends a declaration. Empty values are dropped.
func (d *Declarations) Add(property, value string) {
	if value == "" {
		return
	}
	d.decls = append(d.decls, Decl{Property: property, Value: value})
}

// Merge appends all declarations from other, preserving their order.
func (d *Declarations) Merge(other Declarations) {
	d.decls = append(d.decls, other.decls...)
}

// Get returns the value of the first declaration for property, and
// whether it exists.
func (d *Declarations) Get(property string) (string, bool) {
	for _, decl := range d.decls {
		if decl.Property == property {
			return decl.Value, true
		}
	}
	return "", false
}

// Len returns the number of declarations.
func (d *Declarations) Len() int { return len(d.decls) }

// String serializes the declarations as an inline style attribute value:
// "prop: value; prop: value".
func (d *Declarations) String() string {
	parts := make([]string, 0, len(d.decls))
	for _, decl := range d.decls {
		parts = append(parts, decl.Property+": "+decl.Value)
	}
	return strings.Join(parts, "; ")
}

// FormatNumber renders a design-space value with the shortest decimal
// representation that converts back to the same float64, so coordinates
// survive the translation without rounding.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Px renders a design-space value as a CSS pixel length.
func Px(v float64) string {
	return FormatNumber(v) + "px"
}

// CSSColor converts a Figma color to a CSS rgb()/rgba() value. The color's
// alpha channel is multiplied by alphaScale (the owning paint's opacity).
// Fully opaque colors use the rgb() form.
func CSSColor(c *figma.Color, alphaScale float64) string {
	if c == nil {
		return "rgb(0, 0, 0)"
	}

	r := channel(c.R)
	g := channel(c.G)
	b := channel(c.B)

	a := c.A * alphaScale
	if a >= 1 {
		return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatAlpha(a))
}

// Hex converts a Figma color to #rrggbb form, ignoring alpha.
func Hex(c *figma.Color) string {
	if c == nil {
		return "#000000"
	}
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int {
	n := int(math.Round(v * 255))
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}

// formatAlpha trims float noise introduced by opacity multiplication
// down to four decimal places.
func formatAlpha(a float64) string {
	if a < 0 {
		a = 0
	}
	return strconv.FormatFloat(math.Round(a*10000)/10000, 'f', -1, 64)
}

// Background converts a node's fills to a CSS background value. The first
// visible fill wins: SOLID becomes a color, GRADIENT_LINEAR a
// linear-gradient, and IMAGE a url() pointing at the resolved render URL
// (or a grey placeholder when no URL is known). Returns "transparent"
// when no fill is visible.
func Background(fills []figma.Paint, imageURL string) string {
	for i := range fills {
		fill := &fills[i]
		if !fill.IsVisible() {
			continue
		}

		switch fill.Type {
		case "SOLID":
			return CSSColor(fill.Color, fill.OpacityValue())
		case "GRADIENT_LINEAR":
			if g := LinearGradient(fill); g != "" {
				return g
			}
			return "transparent"
		case "IMAGE":
			if imageURL != "" {
				return fmt.Sprintf("url('%s')", imageURL)
			}
			return imagePlaceholder
		}
		// Unsupported paint type: fall through to the next visible fill.
	}
	return "transparent"
}

// LinearGradient converts a GRADIENT_LINEAR paint to a CSS
// linear-gradient(). The angle is derived from the first two gradient
// handles; returns "" when the paint has fewer than two handles.
func LinearGradient(p *figma.Paint) string {
	if len(p.GradientHandlePositions) < 2 {
		return ""
	}

	h0 := p.GradientHandlePositions[0]
	h1 := p.GradientHandlePositions[1]
	angle := math.Atan2(h1.Y-h0.Y, h1.X-h0.X)*180/math.Pi + 90

	stops := make([]string, 0, len(p.GradientStops))
	for _, stop := range p.GradientStops {
		c := stop.Color
		stops = append(stops, fmt.Sprintf("%s %.1f%%", CSSColor(&c, p.OpacityValue()), stop.Position*100))
	}

	return fmt.Sprintf("linear-gradient(%.1fdeg, %s)", angle, strings.Join(stops, ", "))
}

// Border converts a node's strokes to a CSS border shorthand. Only the
// first visible stroke is used; non-SOLID strokes fall back to black.
// Returns "" when the node has no visible stroke.
func Border(node *figma.Node) string {
	var stroke *figma.Paint
	for i := range node.Strokes {
		if node.Strokes[i].IsVisible() {
			stroke = &node.Strokes[i]
			break
		}
	}
	if stroke == nil {
		return ""
	}

	weight := node.StrokeWeight
	if weight == 0 {
		weight = 1
	}

	borderColor := "#000000"
	if stroke.Type == "SOLID" {
		borderColor = CSSColor(stroke.Color, stroke.OpacityValue())
	}

	return fmt.Sprintf("%s solid %s", Px(weight), borderColor)
}

// BorderRadius converts a node's corner rounding to a CSS border-radius
// value. A scalar cornerRadius wins; otherwise the four-element
// rectangleCornerRadii array is emitted in top-left, top-right,
// bottom-right, bottom-left order, collapsed to one value when all four
// corners match. Returns "" for unrounded nodes.
func BorderRadius(node *figma.Node) string {
	if node.CornerRadius > 0 {
		return Px(node.CornerRadius)
	}

	radii := node.RectangleCornerRadii
	if len(radii) != 4 {
		return ""
	}

	uniform := true
	for _, r := range radii[1:] {
		if r != radii[0] {
			uniform = false
			break
		}
	}
	if uniform {
		if radii[0] == 0 {
			return ""
		}
		return Px(radii[0])
	}

	return fmt.Sprintf("%s %s %s %s", Px(radii[0]), Px(radii[1]), Px(radii[2]), Px(radii[3]))
}

// Shadows converts visible DROP_SHADOW and INNER_SHADOW effects into
// box-shadow entries ("[inset] x y blur spread color"), preserving the
// effect order.
func Shadows(effects []figma.Effect) []string {
	var shadows []string
	for i := range effects {
		e := &effects[i]
		if !e.IsVisible() {
			continue
		}
		if e.Type != "DROP_SHADOW" && e.Type != "INNER_SHADOW" {
			continue
		}

		var offset figma.Vector
		if e.Offset != nil {
			offset = *e.Offset
		}

		shadow := fmt.Sprintf("%s %s %s %s %s",
			Px(offset.X), Px(offset.Y), Px(e.Radius), Px(e.Spread), CSSColor(e.Color, 1))
		if e.Type == "INNER_SHADOW" {
			shadow = "inset " + shadow
		}
		shadows = append(shadows, shadow)
	}
	return shadows
}

// BlurRadius returns the radius of the first visible LAYER_BLUR effect
// and whether one exists.
func BlurRadius(effects []figma.Effect) (float64, bool) {
	for i := range effects {
		e := &effects[i]
		if e.Type == "LAYER_BLUR" && e.IsVisible() {
			return e.Radius, true
		}
	}
	return 0, false
}

// Text converts a TEXT node's type style and fills into typography
// declarations: font family/size/weight, line height, letter spacing,
// alignment, decoration, casing, and text color.
func Text(node *figma.Node) Declarations {
	var d Declarations

	ts := node.Style
	if ts == nil {
		ts = &figma.TypeStyle{}
	}

	family := ts.FontFamily
	if family == "" {
		family = "Arial"
	}
	d.Add("font-family", fmt.Sprintf("'%s', sans-serif", family))

	size := ts.FontSize
	if size == 0 {
		size = 16
	}
	d.Add("font-size", Px(size))

	weight := ts.FontWeight
	if weight == 0 {
		weight = 400
	}
	d.Add("font-weight", FormatNumber(weight))

	if ts.LineHeightPx > 0 {
		d.Add("line-height", Px(ts.LineHeightPx))
	} else if ts.LineHeightPercentFontSize > 0 {
		d.Add("line-height", FormatNumber(ts.LineHeightPercentFontSize)+"%")
	}

	if ts.LetterSpacing != 0 {
		d.Add("letter-spacing", Px(ts.LetterSpacing))
	}

	align := strings.ToLower(ts.TextAlignHorizontal)
	if align == "" {
		align = "left"
	}
	if align == "justified" {
		align = "justify"
	}
	d.Add("text-align", align)

	switch ts.TextDecoration {
	case "UNDERLINE":
		d.Add("text-decoration", "underline")
	case "STRIKETHROUGH":
		d.Add("text-decoration", "line-through")
	}

	switch ts.TextCase {
	case "UPPER":
		d.Add("text-transform", "uppercase")
	case "LOWER":
		d.Add("text-transform", "lowercase")
	case "TITLE":
		d.Add("text-transform", "capitalize")
	}

	if c := Background(node.Fills, ""); c != "transparent" {
		d.Add("color", c)
	}

	return d
}

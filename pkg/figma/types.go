package figma

// FileResponse represents the complete response from the Figma file API endpoint.
// It contains the file metadata and the root of the document tree.
type FileResponse struct {
	Name          string `json:"name"`
	LastModified  string `json:"lastModified"`
	ThumbnailURL  string `json:"thumbnailUrl"`
	Version       string `json:"version"`
	Document      Node   `json:"document"`
	SchemaVersion int    `json:"schemaVersion"`
}

// ImagesResponse represents the response from the Figma images API endpoint.
// Images maps node IDs to temporary render URLs; a node that could not be
// rendered maps to an empty string.
type ImagesResponse struct {
	Err    string            `json:"err,omitempty"`
	Images map[string]string `json:"images"`
}

// Node represents a single element in the Figma document tree hierarchy.
// Nodes can be frames, groups, text, shapes, or other Figma elements, each
// with their own visual properties and children.
//
// Fields whose API default is not the Go zero value (Visible defaults to
// true, Opacity to 1) are pointers; use the accessor methods instead of
// reading them directly.
type Node struct {
	ID                   string     `json:"id"`
	Name                 string     `json:"name"`
	Type                 string     `json:"type"`
	Visible              *bool      `json:"visible,omitempty"`
	Children             []Node     `json:"children,omitempty"`
	Fills                []Paint    `json:"fills,omitempty"`
	Strokes              []Paint    `json:"strokes,omitempty"`
	StrokeWeight         float64    `json:"strokeWeight,omitempty"`
	CornerRadius         float64    `json:"cornerRadius,omitempty"`
	RectangleCornerRadii []float64  `json:"rectangleCornerRadii,omitempty"`
	Opacity              *float64   `json:"opacity,omitempty"`
	Effects              []Effect   `json:"effects,omitempty"`
	Characters           string     `json:"characters,omitempty"`
	Style                *TypeStyle `json:"style,omitempty"`
	AbsoluteBoundingBox  *Rectangle `json:"absoluteBoundingBox,omitempty"`
	BackgroundColor      *Color     `json:"backgroundColor,omitempty"`
}

// IsVisible reports whether the node is visible. The Figma API omits the
// visible field for visible nodes, so a nil pointer means true.
func (n *Node) IsVisible() bool {
	return n.Visible == nil || *n.Visible
}

// OpacityValue returns the node opacity, defaulting to 1 when the API
// omitted the field.
func (n *Node) OpacityValue() float64 {
	if n.Opacity == nil {
		return 1
	}
	return *n.Opacity
}

// Color represents an RGBA color with float values ranging from 0 to 1.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Paint represents a fill or stroke applied to a Figma node. The paint type
// is one of SOLID, GRADIENT_LINEAR, GRADIENT_RADIAL, GRADIENT_ANGULAR,
// GRADIENT_DIAMOND, or IMAGE.
type Paint struct {
	Type                    string         `json:"type"`
	Visible                 *bool          `json:"visible,omitempty"`
	Opacity                 *float64       `json:"opacity,omitempty"`
	Color                   *Color         `json:"color,omitempty"`
	GradientStops           []GradientStop `json:"gradientStops,omitempty"`
	GradientHandlePositions []Vector       `json:"gradientHandlePositions,omitempty"`
	ImageRef                string         `json:"imageRef,omitempty"`
	ScaleMode               string         `json:"scaleMode,omitempty"`
}

// IsVisible reports whether the paint is visible; the API omits the field
// for visible paints.
func (p *Paint) IsVisible() bool {
	return p.Visible == nil || *p.Visible
}

// OpacityValue returns the paint opacity, defaulting to 1 when omitted.
func (p *Paint) OpacityValue() float64 {
	if p.Opacity == nil {
		return 1
	}
	return *p.Opacity
}

// GradientStop is a single color stop along a gradient axis.
// Position ranges from 0 to 1.
type GradientStop struct {
	Position float64 `json:"position"`
	Color    Color   `json:"color"`
}

// Effect represents a visual effect applied to a Figma node such as drop
// shadows, inner shadows, or blur effects.
type Effect struct {
	Type    string  `json:"type"`
	Visible *bool   `json:"visible,omitempty"`
	Radius  float64 `json:"radius,omitempty"`
	Color   *Color  `json:"color,omitempty"`
	Offset  *Vector `json:"offset,omitempty"`
	Spread  float64 `json:"spread,omitempty"`
}

// IsVisible reports whether the effect is visible; the API omits the field
// for visible effects.
func (e *Effect) IsVisible() bool {
	return e.Visible == nil || *e.Visible
}

// Vector represents a 2D coordinate or offset with X and Y values.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TypeStyle represents the text styling properties of a TEXT node: font
// family, weight, size, line height, letter spacing, alignment, decoration,
// and casing.
type TypeStyle struct {
	FontFamily                string  `json:"fontFamily"`
	FontPostScriptName        string  `json:"fontPostScriptName"`
	FontWeight                float64 `json:"fontWeight"`
	FontSize                  float64 `json:"fontSize"`
	LineHeightPx              float64 `json:"lineHeightPx,omitempty"`
	LineHeightPercentFontSize float64 `json:"lineHeightPercentFontSize,omitempty"`
	LetterSpacing             float64 `json:"letterSpacing,omitempty"`
	TextAlignHorizontal       string  `json:"textAlignHorizontal,omitempty"`
	TextAlignVertical         string  `json:"textAlignVertical,omitempty"`
	TextDecoration            string  `json:"textDecoration,omitempty"`
	TextCase                  string  `json:"textCase,omitempty"`
}

// Rectangle represents a bounding box with position (X, Y) and dimensions
// (Width, Height) in absolute canvas coordinates.
type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

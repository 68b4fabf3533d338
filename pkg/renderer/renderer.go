// Package renderer projects a Figma node tree into a static HTML document.
// Each visible node becomes one absolutely positioned div whose inline
// style is derived from the node's visual properties; coordinates pass
// through exactly as the API reported them.
package renderer

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/hellenic-development/figma-render/pkg/figma"
	"github.com/hellenic-development/figma-render/pkg/style"
)

// Options configures a render pass.
type Options struct {
	// ImageURLs maps node IDs to resolved render URLs for IMAGE fills.
	// Nodes with image fills but no entry here get a placeholder color.
	ImageURLs map[string]string
}

// Stats counts what a render pass produced.
type Stats struct {
	Nodes     int // elements emitted
	TextNodes int // TEXT elements emitted
	ImageFill int // elements with an IMAGE fill
	Skipped   int // invisible nodes pruned (subtrees count as one)
}

// Result is the outcome of rendering a single frame.
type Result struct {
	Body  string   // nested div markup for the frame
	Fonts []string // font families encountered, in first-use order
	Stats Stats
}

// FindFrames returns every visible FRAME node in the tree, depth first.
func FindFrames(root *figma.Node) []*figma.Node {
	var frames []*figma.Node
	var walk func(n *figma.Node)
	walk = func(n *figma.Node) {
		if n.Type == "FRAME" && n.IsVisible() {
			frames = append(frames, n)
		}
		for i := range n.Children {
			walk(&n.Children[i])
		}
	}
	walk(root)
	return frames
}

// FrameByName returns the visible frame with the given name, or nil.
func FrameByName(root *figma.Node, name string) *figma.Node {
	for _, f := range FindFrames(root) {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// ImageFillNodes returns the IDs of all nodes in the tree that carry a
// visible IMAGE fill, depth first.
func ImageFillNodes(root *figma.Node) []string {
	var ids []string
	var walk func(n *figma.Node)
	walk = func(n *figma.Node) {
		if hasImageFill(n) {
			ids = append(ids, n.ID)
		}
		for i := range n.Children {
			walk(&n.Children[i])
		}
	}
	walk(root)
	return ids
}

func hasImageFill(n *figma.Node) bool {
	for i := range n.Fills {
		if n.Fills[i].Type == "IMAGE" && n.Fills[i].IsVisible() {
			return true
		}
	}
	return false
}

// Render converts frame and its subtree into positioned markup. The frame
// itself is emitted at origin; descendants keep their offsets relative to
// the nearest ancestor with a bounding box.
func Render(frame *figma.Node, opts Options) *Result {
	r := &renderPass{
		imageURLs: opts.ImageURLs,
		fontSeen:  make(map[string]bool),
	}

	var origin *figma.Rectangle
	if frame.AbsoluteBoundingBox != nil {
		origin = frame.AbsoluteBoundingBox
	}

	body := r.renderNode(frame, origin)

	return &Result{
		Body:  body,
		Fonts: r.fonts,
		Stats: r.stats,
	}
}

type renderPass struct {
	imageURLs map[string]string
	fonts     []string
	fontSeen  map[string]bool
	stats     Stats
}

// renderNode emits markup for one node. parentBox is the bounding box the
// node's position is relative to; passing the node's own box renders it
// at origin.
func (r *renderPass) renderNode(node *figma.Node, parentBox *figma.Rectangle) string {
	if !node.IsVisible() {
		r.stats.Skipped++
		return ""
	}

	bbox := node.AbsoluteBoundingBox
	if bbox == nil {
		// No geometry of its own: render children against the inherited box.
		var parts []string
		for i := range node.Children {
			if child := r.renderNode(&node.Children[i], parentBox); child != "" {
				parts = append(parts, child)
			}
		}
		return strings.Join(parts, "\n")
	}

	relX, relY := bbox.X, bbox.Y
	if parentBox != nil {
		relX -= parentBox.X
		relY -= parentBox.Y
	}

	var decls style.Declarations
	decls.Add("position", "absolute")
	decls.Add("left", style.Px(relX))
	decls.Add("top", style.Px(relY))
	decls.Add("width", style.Px(bbox.Width))
	decls.Add("height", style.Px(bbox.Height))

	if node.Type == "TEXT" {
		return r.renderText(node, decls)
	}
	return r.renderContainer(node, bbox, decls)
}

func (r *renderPass) renderText(node *figma.Node, decls style.Declarations) string {
	text := style.Text(node)
	decls.Merge(text)
	r.collectFont(node)

	// A non-solid first fill (gradient or image) paints the box, not the
	// glyphs, so it still becomes a background.
	if len(node.Fills) > 0 && node.Fills[0].Type != "SOLID" {
		if bg := style.Background(node.Fills, r.imageURLs[node.ID]); bg != "transparent" {
			decls.Add("background", bg)
		}
	}

	if shadows := style.Shadows(node.Effects); len(shadows) > 0 {
		decls.Add("text-shadow", strings.Join(shadows, ", "))
	}

	r.stats.Nodes++
	r.stats.TextNodes++

	var sb strings.Builder
	sb.WriteString(`<div class="text-node" style="`)
	sb.WriteString(decls.String())
	sb.WriteString(`">`)
	sb.WriteString(html.EscapeString(node.Characters))
	sb.WriteString(`</div>`)
	return sb.String()
}

func (r *renderPass) renderContainer(node *figma.Node, bbox *figma.Rectangle, decls style.Declarations) string {
	if len(node.Fills) > 0 {
		if bg := style.Background(node.Fills, r.imageURLs[node.ID]); bg != "transparent" {
			decls.Add("background", bg)
		}
		if hasImageFill(node) {
			decls.Add("background-size", "cover")
			decls.Add("background-position", "center")
			r.stats.ImageFill++
		}
	}

	if border := style.Border(node); border != "" {
		decls.Add("border", border)
	}

	if radius := style.BorderRadius(node); radius != "" {
		decls.Add("border-radius", radius)
		// Keep children from painting over the rounded corners.
		decls.Add("overflow", "hidden")
	}

	if shadows := style.Shadows(node.Effects); len(shadows) > 0 {
		decls.Add("box-shadow", strings.Join(shadows, ", "))
	}

	if blur, ok := style.BlurRadius(node.Effects); ok {
		decls.Add("filter", "blur("+style.Px(blur)+")")
	}

	if opacity := node.OpacityValue(); opacity < 1 {
		decls.Add("opacity", style.FormatNumber(opacity))
	}

	r.stats.Nodes++

	var children []string
	for i := range node.Children {
		if child := r.renderNode(&node.Children[i], bbox); child != "" {
			children = append(children, child)
		}
	}

	var sb strings.Builder
	sb.WriteString(`<div class="`)
	sb.WriteString(nodeClass(node.Type))
	sb.WriteString(`" style="`)
	sb.WriteString(decls.String())
	sb.WriteString(`">`)
	if len(children) > 0 {
		sb.WriteString("\n")
		sb.WriteString(strings.Join(children, "\n"))
		sb.WriteString("\n")
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

func (r *renderPass) collectFont(node *figma.Node) {
	if node.Style == nil || node.Style.FontFamily == "" {
		return
	}
	family := node.Style.FontFamily
	if !r.fontSeen[family] {
		r.fontSeen[family] = true
		r.fonts = append(r.fonts, family)
	}
}

func nodeClass(nodeType string) string {
	if nodeType == "" {
		return "node"
	}
	return strings.ToLower(strings.ReplaceAll(nodeType, "_", "-")) + "-node"
}

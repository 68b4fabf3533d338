package figmarender

import (
	"context"
	"fmt"
	"strings"

	"github.com/hellenic-development/figma-render/pkg/figma"
	"github.com/hellenic-development/figma-render/pkg/style"
)

// Inspect fetches the file and returns an indented textual dump of its
// node tree: type, name, bounds, corner rounding, and paint summaries.
// Useful for understanding why a property is not showing up in the
// rendered output.
func Inspect(ctx context.Context, opts Options) (string, error) {
	_, fileResp, err := fetchFile(ctx, &opts)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s (version %s)\n", fileResp.Name, fileResp.Version))
	dumpNode(&sb, &fileResp.Document, 0)
	return sb.String(), nil
}

func dumpNode(sb *strings.Builder, node *figma.Node, depth int) {
	indent := strings.Repeat("  ", depth)

	sb.WriteString(indent)
	sb.WriteString(node.Type)
	sb.WriteString(": ")
	sb.WriteString(node.Name)

	if !node.IsVisible() {
		sb.WriteString(" (hidden)")
	}
	if bbox := node.AbsoluteBoundingBox; bbox != nil {
		sb.WriteString(fmt.Sprintf(" [%sx%s at %s,%s]",
			style.FormatNumber(bbox.Width), style.FormatNumber(bbox.Height),
			style.FormatNumber(bbox.X), style.FormatNumber(bbox.Y)))
	}
	if r := style.BorderRadius(node); r != "" {
		sb.WriteString(" radius=" + r)
	}
	if summary := paintSummary(node.Fills); summary != "" {
		sb.WriteString(" fills=" + summary)
	}
	if summary := paintSummary(node.Strokes); summary != "" {
		sb.WriteString(" strokes=" + summary)
	}
	if node.Type == "TEXT" && node.Style != nil {
		sb.WriteString(fmt.Sprintf(" font=%q %s/%s", node.Style.FontFamily,
			style.FormatNumber(node.Style.FontSize), style.FormatNumber(node.Style.FontWeight)))
	}
	sb.WriteString("\n")

	for i := range node.Children {
		dumpNode(sb, &node.Children[i], depth+1)
	}
}

// paintSummary renders a compact description of a paint list, e.g.
// "2(#ff0000,IMAGE)".
func paintSummary(paints []figma.Paint) string {
	if len(paints) == 0 {
		return ""
	}

	parts := make([]string, 0, len(paints))
	for i := range paints {
		p := &paints[i]
		switch {
		case !p.IsVisible():
			parts = append(parts, "hidden")
		case p.Type == "SOLID":
			parts = append(parts, style.Hex(p.Color))
		default:
			parts = append(parts, p.Type)
		}
	}
	return fmt.Sprintf("%d(%s)", len(paints), strings.Join(parts, ","))
}

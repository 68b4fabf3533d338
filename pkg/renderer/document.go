package renderer

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/hellenic-development/figma-render/pkg/style"
)

// googleFontsBase is the stylesheet endpoint used to load non-default
// font families referenced by text nodes.
const googleFontsBase = "https://fonts.googleapis.com/css2"

// fontWeightRange requests every standard weight so any font-weight the
// design uses resolves without a second round trip.
const fontWeightRange = "wght@100;200;300;400;500;600;700;800;900"

// FontsLink builds a single <link> element loading all the given font
// families from Google Fonts. Returns "" when no fonts are needed.
func FontsLink(fonts []string) string {
	if len(fonts) == 0 {
		return ""
	}

	params := make([]string, 0, len(fonts))
	for _, family := range fonts {
		params = append(params, "family="+strings.ReplaceAll(family, " ", "+")+":"+fontWeightRange)
	}

	return fmt.Sprintf(`<link href="%s?%s&display=swap" rel="stylesheet">`,
		googleFontsBase, strings.Join(params, "&"))
}

// BuildDocument wraps rendered frame markup in a complete HTML5 document:
// charset and viewport metadata, the font-loading link, a minimal reset,
// and a centered container sized to the frame's bounds.
func BuildDocument(title, body string, width, height float64, fonts []string) string {
	var sb strings.Builder

	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString("<html lang=\"en\">\n<head>\n")
	sb.WriteString("    <meta charset=\"UTF-8\">\n")
	sb.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	sb.WriteString("    <title>" + html.EscapeString(title) + "</title>\n")
	if link := FontsLink(fonts); link != "" {
		sb.WriteString("    " + link + "\n")
	}
	sb.WriteString("    <style>\n")
	sb.WriteString(`        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, Cantarell, sans-serif;
            background: #f5f5f5;
            display: flex;
            justify-content: center;
            align-items: center;
            min-height: 100vh;
            padding: 20px;
        }

        #figma-frame {
            position: relative;
`)
	sb.WriteString("            width: " + style.Px(width) + ";\n")
	sb.WriteString("            height: " + style.Px(height) + ";\n")
	sb.WriteString(`            background: white;
            box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);
        }

        .text-node {
            overflow: hidden;
            word-wrap: break-word;
            white-space: pre-wrap;
        }
    </style>
`)
	sb.WriteString("</head>\n<body>\n")
	sb.WriteString("    <div id=\"figma-frame\">\n")
	sb.WriteString(body)
	sb.WriteString("\n    </div>\n")
	sb.WriteString("</body>\n</html>\n")

	return sb.String()
}

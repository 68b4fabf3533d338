package renderer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestFontsLink(t *testing.T) {
	t.Run("no fonts", func(t *testing.T) {
		assert.Equal(t, "", FontsLink(nil))
	})

	t.Run("single family", func(t *testing.T) {
		link := FontsLink([]string{"Open Sans"})
		assert.Contains(t, link, "fonts.googleapis.com/css2")
		assert.Contains(t, link, "family=Open+Sans:wght@100;200;300;400;500;600;700;800;900")
		assert.Contains(t, link, "display=swap")
		assert.Contains(t, link, `rel="stylesheet"`)
	})

	t.Run("multiple families each get a param", func(t *testing.T) {
		link := FontsLink([]string{"Inter", "Roboto Mono"})
		assert.Contains(t, link, "family=Inter:")
		assert.Contains(t, link, "family=Roboto+Mono:")
	})
}

func TestBuildDocument(t *testing.T) {
	body := `<div class="frame-node" style="position: absolute; left: 0px; top: 0px; width: 375px; height: 812px"></div>`
	doc := BuildDocument("My Design", body, 375, 812, []string{"Inter"})

	t.Run("is parseable html", func(t *testing.T) {
		root, err := html.Parse(strings.NewReader(doc))
		require.NoError(t, err)

		var title string
		var foundFrame, foundFontLink bool
		var walk func(n *html.Node)
		walk = func(n *html.Node) {
			if n.Type == html.ElementNode {
				switch n.Data {
				case "title":
					if n.FirstChild != nil {
						title = n.FirstChild.Data
					}
				case "div":
					for _, a := range n.Attr {
						if a.Key == "id" && a.Val == "figma-frame" {
							foundFrame = true
						}
					}
				case "link":
					for _, a := range n.Attr {
						if a.Key == "href" && strings.Contains(a.Val, "fonts.googleapis.com") {
							foundFontLink = true
						}
					}
				}
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c)
			}
		}
		walk(root)

		assert.Equal(t, "My Design", title)
		assert.True(t, foundFrame, "missing #figma-frame container")
		assert.True(t, foundFontLink, "missing Google Fonts link")
	})

	t.Run("container is sized to the frame", func(t *testing.T) {
		assert.Contains(t, doc, "width: 375px;")
		assert.Contains(t, doc, "height: 812px;")
	})

	t.Run("body markup is embedded", func(t *testing.T) {
		assert.Contains(t, doc, body)
	})

	t.Run("title is escaped", func(t *testing.T) {
		escaped := BuildDocument(`<script>"x"</script>`, "", 10, 10, nil)
		assert.NotContains(t, escaped, "<script>")
		assert.Contains(t, escaped, "&lt;script&gt;")
	})

	t.Run("no fonts means no font link", func(t *testing.T) {
		plain := BuildDocument("Plain", "", 10, 10, nil)
		assert.NotContains(t, plain, "fonts.googleapis.com")
	})

	t.Run("fractional frame size survives", func(t *testing.T) {
		frac := BuildDocument("Frac", "", 375.5, 812.25, nil)
		assert.Contains(t, frac, "width: 375.5px;")
		assert.Contains(t, frac, "height: 812.25px;")
	})
}

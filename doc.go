// Package figmarender fetches a Figma design file via the Figma REST API
// and renders one of its frames into a static HTML file with inline CSS,
// preserving the design's coordinates exactly.
//
// The CLI lives in cmd/figma-render; this root package exposes the same
// pipeline as a Go API so that callers can embed rendering in their own
// tools without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named figmarender:
//
//	import "github.com/hellenic-development/figma-render" // package figmarender
//
// # Quick start
//
//	result, err := figmarender.Run(ctx, figmarender.Options{
//	    AccessToken: os.Getenv("FIGMA_TOKEN"),
//	    File:        "https://www.figma.com/design/ABC123/My-Design",
//	    FrameName:   "Login",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.html", []byte(result.HTML), 0644)
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
// # Frame selection
//
// A file usually contains several frames. [Options.FrameName] selects one
// by name; when empty, the first visible frame in the document is used.
// Requesting a frame that does not exist fails and the error names the
// frames that do.
//
// # Image fills
//
// Nodes painted with IMAGE fills reference assets by opaque handle; the
// pipeline resolves them to temporary render URLs through the Figma
// images API and inlines them as CSS backgrounds. Resolution failures are
// logged and the affected nodes fall back to a placeholder color.
package figmarender

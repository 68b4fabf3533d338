package figmarender

import (
	"context"
	"fmt"
	"strings"

	"github.com/hellenic-development/figma-render/pkg/figma"
	"github.com/hellenic-development/figma-render/pkg/renderer"
)

// Options configures the render pipeline.
type Options struct {
	AccessToken string
	File        string // Figma file key, or a full figma.com file URL
	FrameName   string // empty = first visible frame
	SkipImages  bool   // skip resolving IMAGE fill URLs
	Logger      Logger // nil = no logging

	// Client overrides the Figma API client; nil constructs one from
	// AccessToken. Mainly used by tests.
	Client *figma.Client
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the rendered output.
type Result struct {
	HTML        string // complete HTML document
	FileName    string // Figma file name
	FrameName   string // name of the rendered frame
	FrameWidth  float64
	FrameHeight float64
	Fonts       []string // font families referenced by text nodes
	Stats       renderer.Stats
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

// Run executes the render pipeline: fetch the file, select a frame,
// resolve image fills, and translate the frame's subtree into a complete
// HTML document.
func Run(ctx context.Context, opts Options) (*Result, error) {
	client, fileResp, err := fetchFile(ctx, &opts)
	if err != nil {
		return nil, err
	}

	frame, err := selectFrame(&fileResp.Document, opts.FrameName)
	if err != nil {
		return nil, err
	}
	opts.logInfo("Rendering frame: %s", frame.Name)

	// Resolve IMAGE fill URLs. Failure here degrades to placeholders
	// rather than aborting the run.
	imageURLs := map[string]string{}
	if !opts.SkipImages {
		if ids := renderer.ImageFillNodes(frame); len(ids) > 0 {
			opts.logInfo("Resolving %d image fill(s)...", len(ids))
			fileKey, _ := resolveFileKey(opts.File)
			urls, err := client.GetImageFills(ctx, fileKey, ids)
			if err != nil {
				opts.logWarn("Could not resolve image fills: %v", err)
			} else {
				imageURLs = urls
			}
		}
	}

	opts.logInfo("Generating HTML...")
	rendered := renderer.Render(frame, renderer.Options{ImageURLs: imageURLs})

	var width, height float64
	if frame.AbsoluteBoundingBox != nil {
		width = frame.AbsoluteBoundingBox.Width
		height = frame.AbsoluteBoundingBox.Height
	}

	doc := renderer.BuildDocument(fileResp.Name, rendered.Body, width, height, rendered.Fonts)

	return &Result{
		HTML:        doc,
		FileName:    fileResp.Name,
		FrameName:   frame.Name,
		FrameWidth:  width,
		FrameHeight: height,
		Fonts:       rendered.Fonts,
		Stats:       rendered.Stats,
	}, nil
}

// fetchFile validates the options, builds a client if needed, and fetches
// the file data.
func fetchFile(ctx context.Context, opts *Options) (*figma.Client, *figma.FileResponse, error) {
	if opts.AccessToken == "" && opts.Client == nil {
		return nil, nil, fmt.Errorf("access token required: set FIGMA_TOKEN or pass --token")
	}

	fileKey, err := resolveFileKey(opts.File)
	if err != nil {
		return nil, nil, err
	}
	opts.logInfo("File key: %s", fileKey)

	client := opts.Client
	if client == nil {
		client = figma.NewClient(opts.AccessToken)
	}

	opts.logInfo("Fetching file data from Figma...")
	fileResp, err := client.GetFile(ctx, fileKey)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch file: %w", err)
	}
	opts.logInfo("File: %s", fileResp.Name)

	return client, fileResp, nil
}

// resolveFileKey accepts either a bare file key or a full Figma URL.
func resolveFileKey(file string) (string, error) {
	if file == "" {
		return "", fmt.Errorf("file key or Figma URL required")
	}
	if figma.IsFileURL(file) {
		key, err := figma.ExtractFileKey(file)
		if err != nil {
			return "", fmt.Errorf("extract file key: %w", err)
		}
		return key, nil
	}
	return file, nil
}

// selectFrame picks the frame to render: the named one, or the first
// visible frame when name is empty.
func selectFrame(document *figma.Node, name string) (*figma.Node, error) {
	frames := renderer.FindFrames(document)
	if len(frames) == 0 {
		return nil, fmt.Errorf("no frames found in the Figma file")
	}

	if name == "" {
		return frames[0], nil
	}

	if frame := renderer.FrameByName(document, name); frame != nil {
		return frame, nil
	}

	names := make([]string, 0, len(frames))
	for _, f := range frames {
		names = append(names, f.Name)
	}
	return nil, fmt.Errorf("frame %q not found; available frames: %s", name, strings.Join(names, ", "))
}

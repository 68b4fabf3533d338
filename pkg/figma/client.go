// Package figma implements a minimal client for the Figma REST API:
// fetching a file's document tree and resolving render URLs for nodes
// that carry image fills.
package figma

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/hellenic-development/figma-render/pkg/httputil"
)

const figmaAPIBase = "https://api.figma.com/v1"

// Version is the current release of figma-render.
const Version = "0.3.0"

// Client is an authenticated Figma API client. The zero value is not
// usable; construct one with NewClient.
type Client struct {
	accessToken string
	baseURL     string
	httpClient  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the Figma API base URL. Used by tests to point
// the client at a local server.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(base, "/") }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a new Figma API client with the provided personal
// access token. The client uses connection pooling and a generous timeout
// so that very large design files can be fetched in one request.
func NewClient(accessToken string, opts ...Option) *Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 10,
	}

	c := &Client{
		accessToken: accessToken,
		baseURL:     figmaAPIBase,
		httpClient: &http.Client{
			Timeout:   5 * time.Minute,
			Transport: transport,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ExtractFileKey extracts the unique file identifier from a Figma URL.
// Supports both /file/ and /design/ URL patterns (e.g.
// figma.com/file/ABC123/Design-Name). Returns an error if the URL does
// not match the expected figma.com pattern.
func ExtractFileKey(figmaURL string) (string, error) {
	// Anchored so the entire URL must match the expected pattern.
	re := regexp.MustCompile(`^https?://(?:www\.)?figma\.com/(?:file|design)/([A-Za-z0-9]+)(?:/|\?|$)`)
	matches := re.FindStringSubmatch(figmaURL)

	if len(matches) < 2 {
		return "", fmt.Errorf("invalid Figma URL format: must be a valid figma.com URL with /file/ or /design/ path")
	}

	return matches[1], nil
}

// IsFileURL reports whether s looks like a Figma file URL rather than a
// bare file key.
func IsFileURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// GetFile retrieves the complete file data, including the document tree,
// from the Figma API. Rate limits (429) and server errors (5xx) are
// retried with exponential backoff; authentication and not-found errors
// fail immediately.
func (c *Client) GetFile(ctx context.Context, fileKey string) (*FileResponse, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/files/%s", c.baseURL, url.PathEscape(fileKey)))
	if err != nil {
		return nil, err
	}

	var fileResp FileResponse
	if err := json.Unmarshal(body, &fileResp); err != nil {
		return nil, fmt.Errorf("failed to parse file response: %w", err)
	}

	return &fileResp, nil
}

// GetImageFills requests render URLs for the given node IDs from the
// images API. The returned map is keyed by node ID; nodes the API could
// not render are absent or map to an empty string.
func (c *Client) GetImageFills(ctx context.Context, fileKey string, nodeIDs []string) (map[string]string, error) {
	if len(nodeIDs) == 0 {
		return map[string]string{}, nil
	}

	q := url.Values{}
	q.Set("ids", strings.Join(nodeIDs, ","))

	body, err := c.get(ctx, fmt.Sprintf("%s/images/%s?%s", c.baseURL, url.PathEscape(fileKey), q.Encode()))
	if err != nil {
		return nil, err
	}

	var imgResp ImagesResponse
	if err := json.Unmarshal(body, &imgResp); err != nil {
		return nil, fmt.Errorf("failed to parse images response: %w", err)
	}
	if imgResp.Err != "" {
		return nil, fmt.Errorf("images API returned error: %s", imgResp.Err)
	}

	if imgResp.Images == nil {
		imgResp.Images = map[string]string{}
	}
	return imgResp.Images, nil
}

// get performs an authenticated GET and returns the response body.
// Transient failures are retried up to three times.
func (c *Client) get(ctx context.Context, requestURL string) ([]byte, error) {
	var body []byte

	err := httputil.Retry(ctx, 3, 2*time.Second, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("X-Figma-Token", c.accessToken)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return httputil.Retryable(fmt.Errorf("failed to execute request: %w", err))
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			msg, _ := io.ReadAll(resp.Body)
			statusErr := fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
			if httputil.StatusRetryable(resp.StatusCode) {
				return httputil.Retryable(statusErr)
			}
			return statusErr
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return httputil.Retryable(fmt.Errorf("failed to read response body: %w", err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return body, nil
}

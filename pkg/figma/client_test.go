package figma

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFileKey(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name:    "valid /file/ URL",
			url:     "https://www.figma.com/file/ABC123XYZ/Design-Name",
			want:    "ABC123XYZ",
			wantErr: false,
		},
		{
			name:    "valid /design/ URL",
			url:     "https://www.figma.com/design/ABC123XYZ/Design-Name",
			want:    "ABC123XYZ",
			wantErr: false,
		},
		{
			name:    "URL with node-id parameter",
			url:     "https://www.figma.com/design/4gkABR5gEZnIvlCaXmA4KI/Makis-s-file?node-id=11933-305884",
			want:    "4gkABR5gEZnIvlCaXmA4KI",
			wantErr: false,
		},
		{
			name:    "URL without www subdomain",
			url:     "https://figma.com/file/ABC123XYZ/Design-Name",
			want:    "ABC123XYZ",
			wantErr: false,
		},
		{
			name:    "URL with http protocol",
			url:     "http://www.figma.com/file/ABC123XYZ/Design-Name",
			want:    "ABC123XYZ",
			wantErr: false,
		},
		{
			name:    "URL with trailing slash",
			url:     "https://www.figma.com/file/ABC123XYZ/",
			want:    "ABC123XYZ",
			wantErr: false,
		},
		{
			name:    "URL with query string directly after key",
			url:     "https://www.figma.com/file/ABC123XYZ?t=abc",
			want:    "ABC123XYZ",
			wantErr: false,
		},
		{
			name:    "invalid URL - missing file key",
			url:     "https://www.figma.com/file/",
			want:    "",
			wantErr: true,
		},
		{
			name:    "invalid URL - wrong domain",
			url:     "https://www.example.com/file/ABC123XYZ",
			want:    "",
			wantErr: true,
		},
		{
			name:    "invalid URL - wrong path",
			url:     "https://www.figma.com/dashboard/ABC123XYZ",
			want:    "",
			wantErr: true,
		},
		{
			name:    "empty URL",
			url:     "",
			want:    "",
			wantErr: true,
		},
		{
			name:    "file key with mixed alphanumeric",
			url:     "https://www.figma.com/file/aB1cD2eF3gH4iJ5kL6/MyDesign",
			want:    "aB1cD2eF3gH4iJ5kL6",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractFileKey(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ExtractFileKey() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ExtractFileKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsFileURL(t *testing.T) {
	assert.True(t, IsFileURL("https://www.figma.com/file/ABC/Design"))
	assert.True(t, IsFileURL("http://figma.com/design/ABC"))
	assert.False(t, IsFileURL("ABC123XYZ"))
	assert.False(t, IsFileURL(""))
}

func TestClientGetFile(t *testing.T) {
	t.Run("sends token and parses document", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/files/KEY123", r.URL.Path)
			assert.Equal(t, "secret-token", r.Header.Get("X-Figma-Token"))
			w.Write([]byte(`{
				"name": "My Design",
				"version": "42",
				"document": {
					"id": "0:0",
					"name": "Document",
					"type": "DOCUMENT",
					"children": [
						{"id": "1:1", "name": "Page 1", "type": "CANVAS"}
					]
				}
			}`))
		}))
		defer srv.Close()

		client := NewClient("secret-token", WithBaseURL(srv.URL))
		resp, err := client.GetFile(context.Background(), "KEY123")
		require.NoError(t, err)

		assert.Equal(t, "My Design", resp.Name)
		assert.Equal(t, "DOCUMENT", resp.Document.Type)
		require.Len(t, resp.Document.Children, 1)
		assert.Equal(t, "Page 1", resp.Document.Children[0].Name)
	})

	t.Run("not found fails without retrying", func(t *testing.T) {
		calls := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"status": 404, "err": "Not found"}`))
		}))
		defer srv.Close()

		client := NewClient("secret-token", WithBaseURL(srv.URL))
		_, err := client.GetFile(context.Background(), "MISSING")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
		assert.Equal(t, 1, calls)
	})

	t.Run("invalid token fails without retrying", func(t *testing.T) {
		calls := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"status": 403, "err": "Invalid token"}`))
		}))
		defer srv.Close()

		client := NewClient("bad-token", WithBaseURL(srv.URL))
		_, err := client.GetFile(context.Background(), "KEY123")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "403")
		assert.Equal(t, 1, calls)
	})

	t.Run("malformed body fails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		client := NewClient("secret-token", WithBaseURL(srv.URL))
		_, err := client.GetFile(context.Background(), "KEY123")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse")
	})
}

func TestClientGetImageFills(t *testing.T) {
	t.Run("requests ids and parses urls", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/images/KEY123", r.URL.Path)
			assert.Equal(t, "1:2,3:4", r.URL.Query().Get("ids"))
			w.Write([]byte(`{"images": {"1:2": "https://cdn.example.com/a.png", "3:4": ""}}`))
		}))
		defer srv.Close()

		client := NewClient("secret-token", WithBaseURL(srv.URL))
		urls, err := client.GetImageFills(context.Background(), "KEY123", []string{"1:2", "3:4"})
		require.NoError(t, err)

		assert.Equal(t, "https://cdn.example.com/a.png", urls["1:2"])
		assert.Equal(t, "", urls["3:4"])
	})

	t.Run("empty id list skips the request", func(t *testing.T) {
		client := NewClient("secret-token", WithBaseURL("http://127.0.0.1:0"))
		urls, err := client.GetImageFills(context.Background(), "KEY123", nil)
		require.NoError(t, err)
		assert.Empty(t, urls)
	})

	t.Run("api-level error is surfaced", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"err": "File not found", "images": {}}`))
		}))
		defer srv.Close()

		client := NewClient("secret-token", WithBaseURL(srv.URL))
		_, err := client.GetImageFills(context.Background(), "KEY123", []string{"1:2"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "File not found")
	})
}

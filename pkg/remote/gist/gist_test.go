package gist

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/notepaste/pkg/remote"
)

type gistRequest struct {
	Description string `json:"description"`
	Public      *bool  `json:"public"`
	Files       map[string]struct {
		Filename string `json:"filename"`
		Content  string `json:"content"`
	} `json:"files"`
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"), "token should be sent")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	ctx := zerolog.New(os.Stderr).WithContext(context.Background())
	c, err := New(ctx, Options{Token: "tok", BaseURL: srv.URL})
	require.NoError(t, err, "creating client should succeed")
	return c
}

func decode(t *testing.T, r *http.Request) gistRequest {
	t.Helper()
	var body gistRequest
	data, err := io.ReadAll(r.Body)
	require.NoError(t, err, "reading body should succeed")
	require.NoError(t, json.Unmarshal(data, &body), "body should be json")
	return body
}

func TestNew(t *testing.T) {
	_, err := New(context.Background(), Options{})
	require.Error(t, err, "missing token should fail")
	assert.Contains(t, err.Error(), "github token is required", "error should name the token")
}

func TestRequestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	ctx := zerolog.New(os.Stderr).WithContext(context.Background())
	c, err := New(ctx, Options{Token: "tok", BaseURL: srv.URL, Timeout: 20 * time.Millisecond})
	require.NoError(t, err, "creating client should succeed")

	start := time.Now()
	_, err = c.Create(ctx, "hello")
	require.Error(t, err, "a stalled request should fail")
	assert.Less(t, time.Since(start), 500*time.Millisecond, "the request timeout should cut the call short")
}

func TestCreate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method, "create should POST")
		assert.Equal(t, "/gists", r.URL.Path, "create should post to /gists")

		body := decode(t, r)
		require.NotNil(t, body.Public, "visibility should be sent")
		assert.False(t, *body.Public, "gist should be secret")
		assert.Equal(t, "hello", body.Files[FileName].Content, "text should be the note file")

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":"g1","html_url":"https://gist.github.com/g1"}`)
	})

	ctx := zerolog.New(os.Stderr).WithContext(context.Background())
	paste, err := c.Create(ctx, "hello")
	require.NoError(t, err, "create should succeed")
	assert.Equal(t, remote.Paste{ID: "g1", URL: "https://gist.github.com/g1", EditCode: EditCode}, paste, "paste should map the gist")
}

func TestUpdateAndRemove(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		call    func(ctx context.Context, c *Client) error
		method  string
		wantErr string
	}{
		{
			name:   "update_ok",
			status: http.StatusOK,
			call:   func(ctx context.Context, c *Client) error { return c.Update(ctx, "g1", EditCode, "new") },
			method: http.MethodPatch,
		},
		{
			name:    "update_not_found",
			status:  http.StatusNotFound,
			call:    func(ctx context.Context, c *Client) error { return c.Update(ctx, "g1", EditCode, "new") },
			method:  http.MethodPatch,
			wantErr: "Failed to update paste",
		},
		{
			name:   "remove_ok",
			status: http.StatusNoContent,
			call:   func(ctx context.Context, c *Client) error { return c.Remove(ctx, "g1", EditCode) },
			method: http.MethodDelete,
		},
		{
			name:    "remove_forbidden",
			status:  http.StatusForbidden,
			call:    func(ctx context.Context, c *Client) error { return c.Remove(ctx, "g1", EditCode) },
			method:  http.MethodDelete,
			wantErr: "Failed to remove paste",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.method, r.Method, "method should match")
				assert.Equal(t, "/gists/g1", r.URL.Path, "path should name the gist")
				w.WriteHeader(tt.status)
				if tt.status == http.StatusOK {
					_, _ = io.WriteString(w, `{"id":"g1"}`)
					return
				}
				if tt.status >= 400 {
					_, _ = io.WriteString(w, `{"message":"nope"}`)
				}
			})

			ctx := zerolog.New(os.Stderr).WithContext(context.Background())
			err := tt.call(ctx, c)
			if tt.wantErr != "" {
				require.Error(t, err, "call should fail")
				assert.Contains(t, err.Error(), tt.wantErr, "error should name the verb")
				return
			}
			require.NoError(t, err, "call should succeed")
		})
	}
}

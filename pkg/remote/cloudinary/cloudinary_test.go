package cloudinary

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/notepaste/pkg/remote"
	"gitlab.com/tozd/go/errors"
)

func testStore(t *testing.T, handler http.HandlerFunc) *Store {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	s, err := New(Options{
		CloudName: "demo",
		APIKey:    "key",
		APISecret: "shh",
		BaseURL:   srv.URL,
		Client:    srv.Client(),
		Now:       func() time.Time { return time.UnixMilli(1700000000000) },
	})
	require.NoError(t, err, "creating store should succeed")
	return s
}

func TestNew(t *testing.T) {
	_, err := New(Options{CloudName: "demo", APIKey: "key"})
	require.Error(t, err, "missing secret should fail")
	assert.Contains(t, err.Error(), "incomplete", "error should name the problem")

	s, err := New(Options{CloudName: "demo", APIKey: "key", APISecret: "shh"})
	require.NoError(t, err, "complete credentials should succeed")
	assert.Equal(t, DefaultBaseURL, s.opts.BaseURL, "base url should default")
	assert.Equal(t, 100, s.MaxDeleteBatch(), "batch limit should match the admin api")
}

func TestSignature(t *testing.T) {
	assert.Equal(t, "fa63d9dfecfbaa7d0b8439a0c099a24740417dc9", Signature("folder-1", "1700000000000", "shh"), "signature should match sha1 of the sorted params")
}

func TestUpload(t *testing.T) {
	ctx := zerolog.New(os.Stderr).WithContext(context.Background())

	s := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method, "upload should POST")
		assert.Equal(t, "/demo/image/upload", r.URL.Path, "upload path should include the cloud name")

		require.NoError(t, r.ParseMultipartForm(1<<20), "form should parse")
		assert.Equal(t, "folder-1", r.FormValue("asset_folder"), "folder should be sent")
		assert.Equal(t, "webp", r.FormValue("format"), "format should be webp")
		assert.Equal(t, "1700000000000", r.FormValue("timestamp"), "timestamp should be in milliseconds")
		assert.Equal(t, "fa63d9dfecfbaa7d0b8439a0c099a24740417dc9", r.FormValue("signature"), "signature should be sent")
		assert.Equal(t, "key", r.FormValue("api_key"), "api key should be sent")

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err, "file part should exist")
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, "img.png", hdr.Filename, "file name should be the base name")
		assert.Equal(t, "PNGDATA", string(data), "file content should be sent")

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"asset_id":"a1","public_id":"p1","secure_url":"https://res/x.webp","resource_type":"image"}`)
	})

	asset, err := s.Upload(ctx, remote.UploadInput{Name: "media/img.png", Content: []byte("PNGDATA"), Folder: "folder-1"})
	require.NoError(t, err, "upload should succeed")
	assert.Equal(t, remote.Asset{ID: "a1", URL: "https://res/x.webp", Type: "image"}, asset, "asset should map the response")
}

func TestUploadError(t *testing.T) {
	ctx := zerolog.New(os.Stderr).WithContext(context.Background())

	s := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"message":"Invalid Signature"}}`)
	})

	_, err := s.Upload(ctx, remote.UploadInput{Name: "img.png", Content: []byte("x"), Folder: "f"})
	require.Error(t, err, "bad status should fail")
	assert.Contains(t, err.Error(), "Failed to upload asset", "error should name the verb")
	assert.Contains(t, err.Error(), "Invalid Signature", "error should carry the api message")
}

func TestDeleteByAssetID(t *testing.T) {
	ctx := zerolog.New(os.Stderr).WithContext(context.Background())

	tests := []struct {
		name     string
		response string
		want     remote.DeleteResult
		wantErr  error
	}{
		{
			name:     "all_deleted",
			response: `{"deleted":{"a1":"deleted","a2":"deleted"},"deleted_counts":{},"partial":false}`,
			want:     remote.DeleteResult{Deleted: map[string]string{"a1": "deleted", "a2": "deleted"}, Partial: false},
		},
		{
			name:     "partial",
			response: `{"deleted":{"a1":"deleted","a2":""},"deleted_counts":{},"partial":true}`,
			want:     remote.DeleteResult{Deleted: map[string]string{"a1": "deleted", "a2": ""}, Partial: true},
		},
		{
			name:     "missing_fields",
			response: `{"message":"ok"}`,
			wantErr:  ErrInvalidResponse,
		},
		{
			name:     "not_json",
			response: `<html>`,
			wantErr:  ErrInvalidResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testStore(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method, "delete should use DELETE")
				assert.Equal(t, "/demo/resources", r.URL.Path, "delete path should include the cloud name")
				user, pass, ok := r.BasicAuth()
				assert.True(t, ok, "basic auth should be set")
				assert.Equal(t, "key", user, "basic auth user should be the api key")
				assert.Equal(t, "shh", pass, "basic auth password should be the secret")

				body, _ := io.ReadAll(r.Body)
				form, err := url.ParseQuery(string(body))
				require.NoError(t, err, "body should be urlencoded")
				assert.Equal(t, []string{"a1", "a2"}, form["asset_ids[]"], "ids should be sent in order")

				_, _ = io.WriteString(w, tt.response)
			})

			got, err := s.DeleteByAssetID(ctx, []string{"a1", "a2"})
			if tt.wantErr != nil {
				require.Error(t, err, "delete should fail")
				assert.True(t, errors.Is(err, tt.wantErr), "error should match")
				return
			}
			require.NoError(t, err, "delete should succeed")
			assert.Equal(t, tt.want, got, "result should match")
			assert.True(t, got.IsDeleted("a1"), "a1 should be deleted")
		})
	}
}

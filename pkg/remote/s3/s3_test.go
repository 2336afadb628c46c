package s3

import (
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/notepaste/pkg/config"
	"github.com/walteh/notepaste/pkg/remote"
	"gitlab.com/tozd/go/errors"
)

type fakeObjects struct {
	puts    map[string][]byte
	types   map[string]string
	putErr  error
	block   bool
	removed []string
	failKey map[string]string
}

func (f *fakeObjects) PutObject(ctx context.Context, bucket, key string, r io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.block {
		<-ctx.Done()
		return minio.UploadInfo{}, ctx.Err()
	}
	if f.putErr != nil {
		return minio.UploadInfo{}, f.putErr
	}
	data, _ := io.ReadAll(r)
	if f.puts == nil {
		f.puts = map[string][]byte{}
		f.types = map[string]string{}
	}
	f.puts[key] = data
	f.types[key] = opts.ContentType
	return minio.UploadInfo{Bucket: bucket, Key: key, Size: size, ETag: "etag"}, nil
}

func (f *fakeObjects) RemoveObjects(ctx context.Context, bucket string, in <-chan minio.ObjectInfo, opts minio.RemoveObjectsOptions) <-chan minio.RemoveObjectError {
	out := make(chan minio.RemoveObjectError)
	go func() {
		defer close(out)
		for obj := range in {
			f.removed = append(f.removed, obj.Key)
			if code, ok := f.failKey[obj.Key]; ok {
				out <- minio.RemoveObjectError{ObjectName: obj.Key, Err: minio.ErrorResponse{Code: code, Message: code}}
			}
		}
	}()
	return out
}

func testContext() context.Context {
	return zerolog.New(os.Stderr).WithContext(context.Background())
}

func TestObjectKey(t *testing.T) {
	// sha256("abc")
	const sum = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

	tests := []struct {
		name   string
		folder string
		path   string
		want   string
	}{
		{name: "under_folder", folder: "folder", path: "abc", want: "folder/" + sum + "/abc"},
		{name: "no_folder", folder: "", path: "abc", want: sum + "/abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ObjectKey(tt.folder, tt.path), "key should hash the vault path")
		})
	}
}

func TestUploadSameContentDifferentPaths(t *testing.T) {
	api := &fakeObjects{}
	s := New(api, "bucket", "https://cdn")

	a, err := s.Upload(testContext(), remote.UploadInput{Name: "a/img.png", Content: []byte("same"), Folder: "f1"})
	require.NoError(t, err, "first upload should succeed")
	b, err := s.Upload(testContext(), remote.UploadInput{Name: "b/img.png", Content: []byte("same"), Folder: "f1"})
	require.NoError(t, err, "second upload should succeed")

	assert.NotEqual(t, a.ID, b.ID, "different paths should get different keys")
	assert.Len(t, api.puts, 2, "both objects should exist")

	res, err := s.DeleteByAssetID(testContext(), []string{a.ID})
	require.NoError(t, err, "delete should succeed")
	assert.True(t, res.IsDeleted(a.ID), "first asset should be deleted")
	assert.Equal(t, []string{a.ID}, api.removed, "the second object should not be touched")
}

func TestUploadTimeout(t *testing.T) {
	api := &fakeObjects{block: true}
	s := New(api, "bucket", "https://cdn")
	s.timeout = 10 * time.Millisecond

	_, err := s.Upload(testContext(), remote.UploadInput{Name: "img.png", Content: []byte("abc"), Folder: "f1"})
	require.Error(t, err, "a stalled put should fail")
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "request deadline should be reported")
}

func TestAssetType(t *testing.T) {
	assert.Equal(t, "image", AssetType("a.png"), "png should be an image")
	assert.Equal(t, "video", AssetType("dir/clip.mp4"), "mp4 should be a video")
	assert.Equal(t, "image", AssetType("x"), "unknown should default to image")
}

func TestUpload(t *testing.T) {
	api := &fakeObjects{}
	s := New(api, "bucket", "https://cdn.example.com/")

	asset, err := s.Upload(testContext(), remote.UploadInput{Name: "img.png", Content: []byte("abc"), Folder: "f1"})
	require.NoError(t, err, "upload should succeed")

	key := ObjectKey("f1", "img.png")
	assert.Equal(t, remote.Asset{ID: key, URL: "https://cdn.example.com/" + key, Type: "image"}, asset, "asset should describe the object")
	assert.Equal(t, []byte("abc"), api.puts[key], "content should be uploaded")
	assert.Equal(t, "image/png", api.types[key], "content type should follow the extension")

	api.putErr = errors.New("denied")
	_, err = s.Upload(testContext(), remote.UploadInput{Name: "img.png", Content: []byte("abc"), Folder: "f1"})
	require.Error(t, err, "failed put should fail the upload")
	assert.Contains(t, err.Error(), "Failed to upload asset", "error should name the verb")
}

func TestDeleteByAssetID(t *testing.T) {
	api := &fakeObjects{failKey: map[string]string{"b": "AccessDenied", "c": "NoSuchKey"}}
	s := New(api, "bucket", "https://cdn")

	res, err := s.DeleteByAssetID(testContext(), []string{"a", "b", "c"})
	require.NoError(t, err, "delete should succeed")
	assert.Equal(t, []string{"a", "b", "c"}, api.removed, "every key should be sent")
	assert.True(t, res.Partial, "a failed key should mark the result partial")
	assert.True(t, res.IsDeleted("a"), "a should be deleted")
	assert.False(t, res.IsDeleted("b"), "b should not be deleted")
	assert.True(t, res.IsDeleted("c"), "a missing key should count as deleted")
	assert.Equal(t, 1000, s.MaxDeleteBatch(), "batch limit should match multi object delete")
}

func TestDial(t *testing.T) {
	_, err := Dial(config.S3Settings{Endpoint: "localhost:9000"}, 0)
	require.Error(t, err, "incomplete settings should fail")

	s, err := Dial(config.S3Settings{Endpoint: "localhost:9000", Bucket: "notes", AccessKey: "a", SecretKey: "b"}, time.Second)
	require.NoError(t, err, "complete settings should succeed")
	assert.Equal(t, time.Second, s.timeout, "request timeout should be kept")
	assert.Equal(t, "http://localhost:9000/notes", s.publicBase, "public base should default to the bucket url")
}

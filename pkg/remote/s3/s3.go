// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package s3 mirrors embeds to any S3 compatible bucket. Objects are keyed by
// vault path under the note's asset folder, so the object key doubles as the
// asset id.
package s3

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog"
	"github.com/walteh/notepaste/pkg/config"
	"github.com/walteh/notepaste/pkg/remote"
	"gitlab.com/tozd/go/errors"
)

// multi object delete accepts at most this many keys
const maxDeleteBatch = 1000

var videoExtensions = map[string]struct{}{
	"mp4": {}, "mpeg": {}, "avi": {}, "webm": {}, "mov": {}, "mkv": {},
}

// ObjectAPI is the part of *minio.Client the store calls.
type ObjectAPI interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObjects(ctx context.Context, bucketName string, objectsCh <-chan minio.ObjectInfo, opts minio.RemoveObjectsOptions) <-chan minio.RemoveObjectError
}

var _ ObjectAPI = (*minio.Client)(nil)

func init() {
	remote.RegisterAssetStore(config.AssetProviderS3, func(ctx context.Context, s *config.Settings) (remote.AssetStore, error) {
		return Dial(s.S3, s.RequestTimeout())
	})
}

// ☁️ Store is a remote.AssetStore backed by an S3 bucket.
type Store struct {
	api        ObjectAPI
	bucket     string
	publicBase string
	timeout    time.Duration
}

var _ remote.AssetStore = (*Store)(nil)

// 🔌 Dial connects to the endpoint in s with static credentials. Every
// request is bounded by timeout; zero leaves requests unbounded.
func Dial(s config.S3Settings, timeout time.Duration) (*Store, error) {
	if s.Endpoint == "" || s.Bucket == "" || s.AccessKey == "" || s.SecretKey == "" {
		return nil, errors.New("s3 settings are incomplete")
	}

	client, err := minio.New(s.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(s.AccessKey, s.SecretKey, ""),
		Secure: s.Secure,
	})
	if err != nil {
		return nil, errors.Errorf("creating s3 client: %w", err)
	}

	publicBase := s.PublicBaseURL
	if publicBase == "" {
		scheme := "http"
		if s.Secure {
			scheme = "https"
		}
		publicBase = scheme + "://" + s.Endpoint + "/" + s.Bucket
	}

	st := New(client, s.Bucket, publicBase)
	st.timeout = timeout
	return st, nil
}

// 🏭 New returns a Store over api. Public urls are publicBase joined with
// the object key.
func New(api ObjectAPI, bucket, publicBase string) *Store {
	return &Store{api: api, bucket: bucket, publicBase: strings.TrimSuffix(publicBase, "/")}
}

// MaxDeleteBatch is the multi object delete limit.
func (s *Store) MaxDeleteBatch() int { return maxDeleteBatch }

// ObjectKey is folder/<sha256 of the vault path>/<base name>. Two paths never
// share a key, whatever their content.
func ObjectKey(folder, name string) string {
	sum := sha256.Sum256([]byte(name))
	return path.Join(folder, hex.EncodeToString(sum[:]), path.Base(name))
}

func (s *Store) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// AssetType is "video" for video extensions and "image" otherwise.
func AssetType(name string) string {
	if _, ok := videoExtensions[strings.TrimPrefix(path.Ext(name), ".")]; ok {
		return "video"
	}
	return "image"
}

// 📤 Upload puts one object. Uploading the same path twice overwrites the
// same key.
func (s *Store) Upload(ctx context.Context, in remote.UploadInput) (remote.Asset, error) {
	key := ObjectKey(in.Folder, in.Name)

	opts := minio.PutObjectOptions{ContentType: mime.TypeByExtension(path.Ext(in.Name))}
	if opts.ContentType == "" {
		opts.ContentType = "application/octet-stream"
	}

	reqCtx, cancel := s.requestContext(ctx)
	defer cancel()

	info, err := s.api.PutObject(reqCtx, s.bucket, key, bytes.NewReader(in.Content), int64(len(in.Content)), opts)
	if err != nil {
		return remote.Asset{}, errors.Errorf("Failed to upload asset: putting %s: %w", key, err)
	}

	zerolog.Ctx(ctx).Debug().Str("embed", in.Name).Str("key", key).Str("etag", info.ETag).Msg("uploaded to s3")

	return remote.Asset{ID: key, URL: s.publicBase + "/" + key, Type: AssetType(in.Name)}, nil
}

// 🗑️ DeleteByAssetID removes objects by key. Keys the bucket reports an
// error for are left out of Deleted and mark the result partial; a missing
// key counts as deleted.
func (s *Store) DeleteByAssetID(ctx context.Context, ids []string) (remote.DeleteResult, error) {
	objects := make(chan minio.ObjectInfo, len(ids))
	for _, id := range ids {
		objects <- minio.ObjectInfo{Key: id}
	}
	close(objects)

	reqCtx, cancel := s.requestContext(ctx)
	defer cancel()

	failed := map[string]error{}
	for rerr := range s.api.RemoveObjects(reqCtx, s.bucket, objects, minio.RemoveObjectsOptions{}) {
		if rerr.Err == nil {
			continue
		}
		if minio.ToErrorResponse(rerr.Err).Code == "NoSuchKey" {
			continue
		}
		failed[rerr.ObjectName] = rerr.Err
	}

	if err := reqCtx.Err(); err != nil {
		return remote.DeleteResult{}, errors.Errorf("Failed to delete asset: %w", err)
	}

	res := remote.DeleteResult{Deleted: make(map[string]string, len(ids))}
	for _, id := range ids {
		if err, ok := failed[id]; ok {
			zerolog.Ctx(ctx).Debug().Err(err).Str("key", id).Msg("s3 delete failed")
			res.Partial = true
			continue
		}
		res.Deleted[id] = "deleted"
	}
	return res, nil
}

package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	minioLib "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/watchlist-server/internal/model"
)

// fakeObjectAPI implements objectAPI without network.
type fakeObjectAPI struct {
	bucketExists    bool
	bucketExistsErr error
	makeBucketErr   error
	madeBucket      string

	putErr         error
	putKey         string
	putSize        int64
	putContentType string
	putBody        []byte

	getRC  io.ReadCloser
	getErr error

	removeErr error

	statErr error
}

func (f *fakeObjectAPI) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.bucketExists, f.bucketExistsErr
}

func (f *fakeObjectAPI) MakeBucket(_ context.Context, bucket string, _ minioLib.MakeBucketOptions) error {
	f.madeBucket = bucket
	return f.makeBucketErr
}

func (f *fakeObjectAPI) PutObject(_ context.Context, _ string, key string, r io.Reader, size int64, opts minioLib.PutObjectOptions) (minioLib.UploadInfo, error) {
	f.putKey = key
	f.putSize = size
	f.putContentType = opts.ContentType
	f.putBody, _ = io.ReadAll(r)
	return minioLib.UploadInfo{}, f.putErr
}

func (f *fakeObjectAPI) GetObject(_ context.Context, _ string, _ string, _ minioLib.GetObjectOptions) (io.ReadCloser, error) {
	return f.getRC, f.getErr
}

func (f *fakeObjectAPI) RemoveObject(_ context.Context, _ string, _ string, _ minioLib.RemoveObjectOptions) error {
	return f.removeErr
}

func (f *fakeObjectAPI) StatObject(_ context.Context, _ string, _ string, _ minioLib.StatObjectOptions) (minioLib.ObjectInfo, error) {
	return minioLib.ObjectInfo{}, f.statErr
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name       string
		api        *fakeObjectAPI
		wantErr    string
		wantBucket string
	}{
		{name: "bucket exists", api: &fakeObjectAPI{bucketExists: true}},
		{name: "bucket created", api: &fakeObjectAPI{}, wantBucket: "posters"},
		{name: "exists check fails", api: &fakeObjectAPI{bucketExistsErr: errors.New("boom")}, wantErr: "failed to check bucket existence"},
		{name: "create fails", api: &fakeObjectAPI{makeBucketErr: errors.New("boom")}, wantErr: "failed to create bucket"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := newClient(context.Background(), tt.api, "posters")
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Nil(t, c)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "posters", c.bucket)
			assert.Equal(t, tt.wantBucket, tt.api.madeBucket)
		})
	}
}

func TestClient_Upload(t *testing.T) {
	api := &fakeObjectAPI{bucketExists: true}
	c, err := newClient(context.Background(), api, "posters")
	require.NoError(t, err)

	err = c.Upload(context.Background(), "posters/u/m", bytes.NewReader([]byte("jpeg")), 4, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "posters/u/m", api.putKey)
	assert.Equal(t, int64(4), api.putSize)
	assert.Equal(t, "image/jpeg", api.putContentType)
	assert.Equal(t, []byte("jpeg"), api.putBody)

	api.putErr = errors.New("boom")
	err = c.Upload(context.Background(), "k", bytes.NewReader(nil), -1, "")
	assert.ErrorContains(t, err, "failed to upload object")
}

func TestClient_Download(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		api := &fakeObjectAPI{bucketExists: true, getRC: io.NopCloser(bytes.NewReader([]byte("img")))}
		c, err := newClient(context.Background(), api, "posters")
		require.NoError(t, err)

		rc, err := c.Download(context.Background(), "k")
		require.NoError(t, err)
		defer rc.Close()
		body, _ := io.ReadAll(rc)
		assert.Equal(t, []byte("img"), body)
	})

	t.Run("missing", func(t *testing.T) {
		api := &fakeObjectAPI{bucketExists: true, statErr: minioLib.ErrorResponse{Code: "NoSuchKey"}}
		c, err := newClient(context.Background(), api, "posters")
		require.NoError(t, err)

		_, err = c.Download(context.Background(), "k")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("get fails", func(t *testing.T) {
		api := &fakeObjectAPI{bucketExists: true, getErr: errors.New("boom")}
		c, err := newClient(context.Background(), api, "posters")
		require.NoError(t, err)

		_, err = c.Download(context.Background(), "k")
		assert.ErrorContains(t, err, "failed to get object")
	})
}

func TestClient_DeleteAndExists(t *testing.T) {
	api := &fakeObjectAPI{bucketExists: true}
	c, err := newClient(context.Background(), api, "posters")
	require.NoError(t, err)

	assert.NoError(t, c.Delete(context.Background(), "k"))
	api.removeErr = errors.New("boom")
	assert.ErrorContains(t, c.Delete(context.Background(), "k"), "failed to delete object")

	ok, err := c.Exists(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, ok)

	api.statErr = minioLib.ErrorResponse{Code: "NoSuchKey"}
	ok, err = c.Exists(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, ok)

	api.statErr = errors.New("network")
	_, err = c.Exists(context.Background(), "k")
	assert.ErrorContains(t, err, "failed to stat object")
}

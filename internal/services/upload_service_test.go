package services

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/sakimura/org-directory-api/internal/storage"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	uploads   []fakeUpload
	uploadErr error
	urlErr    error
	baseURL   string
}

type fakeUpload struct {
	bucket string
	key    string
	data   []byte
	opts   storage.UploadOptions
}

func (f *fakeStorage) UploadObject(_ context.Context, bucket, key string, data []byte, opts storage.UploadOptions) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.uploads = append(f.uploads, fakeUpload{bucket: bucket, key: key, data: data, opts: opts})
	return nil
}

func (f *fakeStorage) PublicURL(bucket, key string) (string, error) {
	if f.urlErr != nil {
		return "", f.urlErr
	}
	return f.baseURL + "/" + bucket + "/" + key, nil
}

// A valid single-pixel-ish GIF header so content sniffing resolves image/gif
var gifBytes = []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00")

func TestUploadService_HappyPath(t *testing.T) {
	store := &fakeStorage{baseURL: "https://cdn.test"}
	svc := NewUploadService(store, "profile-images")

	url, err := svc.Upload(context.Background(), "avatar.png", "image/png", []byte("png-bytes"))
	require.NoError(t, err)

	require.Len(t, store.uploads, 1)
	up := store.uploads[0]
	require.Equal(t, "profile-images", up.bucket)
	require.Regexp(t, `^[0-9a-z]{11}-\d{13}\.png$`, up.key)
	require.Equal(t, []byte("png-bytes"), up.data)
	require.Equal(t, "image/png", up.opts.ContentType)
	require.Equal(t, CacheSeconds, up.opts.CacheSeconds)
	require.False(t, up.opts.Upsert)

	require.Regexp(t, regexp.MustCompile(`^https://cdn\.test/profile-images/.+\?_=\d+$`), url)
}

func TestUploadService_CacheBusterChangesBetweenUploads(t *testing.T) {
	store := &fakeStorage{baseURL: "https://cdn.test"}
	svc := NewUploadService(store, "profile-images")

	first, err := svc.Upload(context.Background(), "avatar.png", "image/png", []byte("same-content"))
	require.NoError(t, err)
	second, err := svc.Upload(context.Background(), "avatar.png", "image/png", []byte("same-content"))
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}

func TestUploadService_RejectsDisallowedType(t *testing.T) {
	store := &fakeStorage{baseURL: "https://cdn.test"}
	svc := NewUploadService(store, "profile-images")

	_, err := svc.Upload(context.Background(), "notes.pdf", "application/pdf", []byte("%PDF-1.4"))
	require.ErrorIs(t, err, ErrFileTypeNotAllowed)

	// Rejected before any network call
	require.Empty(t, store.uploads)
}

func TestUploadService_RejectsOversizedFile(t *testing.T) {
	store := &fakeStorage{baseURL: "https://cdn.test"}
	svc := NewUploadService(store, "profile-images")

	big := bytes.Repeat([]byte("a"), MaxFileSize+1)
	_, err := svc.Upload(context.Background(), "huge.png", "image/png", big)
	require.ErrorIs(t, err, ErrFileTooLarge)
	require.Empty(t, store.uploads)
}

func TestUploadService_FileAtCeilingAccepted(t *testing.T) {
	store := &fakeStorage{baseURL: "https://cdn.test"}
	svc := NewUploadService(store, "profile-images")

	exact := bytes.Repeat([]byte("a"), MaxFileSize)
	_, err := svc.Upload(context.Background(), "max.png", "image/png", exact)
	require.NoError(t, err)
	require.Len(t, store.uploads, 1)
}

func TestUploadService_SniffsMissingContentType(t *testing.T) {
	store := &fakeStorage{baseURL: "https://cdn.test"}
	svc := NewUploadService(store, "profile-images")

	_, err := svc.Upload(context.Background(), "avatar.gif", "", gifBytes)
	require.NoError(t, err)
	require.Equal(t, "image/gif", store.uploads[0].opts.ContentType)
}

func TestUploadService_EmptyFile(t *testing.T) {
	store := &fakeStorage{}
	svc := NewUploadService(store, "profile-images")

	_, err := svc.Upload(context.Background(), "avatar.png", "image/png", nil)
	require.ErrorIs(t, err, ErrEmptyFile)
}

func TestUploadService_StorageFailurePropagates(t *testing.T) {
	store := &fakeStorage{uploadErr: errors.New("The resource already exists")}
	svc := NewUploadService(store, "profile-images")

	_, err := svc.Upload(context.Background(), "avatar.png", "image/png", []byte("x"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")
}

func TestUploadService_PublicURLFailure(t *testing.T) {
	store := &fakeStorage{urlErr: storage.ErrNoPublicURL}
	svc := NewUploadService(store, "profile-images")

	_, err := svc.Upload(context.Background(), "avatar.png", "image/png", []byte("x"))
	require.ErrorIs(t, err, storage.ErrNoPublicURL)

	// The object was stored before URL resolution failed; it is not cleaned up
	require.Len(t, store.uploads, 1)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/sakimura/org-directory-api/internal/storage"
	"github.com/sakimura/org-directory-api/internal/utils"
)

const (
	// MaxFileSize is the upload ceiling in bytes (5 MB)
	MaxFileSize = 5 * 1024 * 1024

	// CacheSeconds asks intermediate caches to retain uploaded objects
	CacheSeconds = 3600
)

var (
	ErrFileTypeNotAllowed = errors.New("file type not supported: please upload a JPEG, PNG, or GIF image")
	ErrFileTooLarge       = errors.New("file size too large: maximum size is 5MB")
	ErrEmptyFile          = errors.New("please select an image to upload")
)

// allowedFileTypes is the fixed allow-list of raster image media types.
var allowedFileTypes = []string{"image/jpeg", "image/png", "image/gif"}

// ObjectStorage is the storage capability the upload pipeline needs.
type ObjectStorage interface {
	UploadObject(ctx context.Context, bucket, key string, data []byte, opts storage.UploadOptions) error
	PublicURL(bucket, key string) (string, error)
}

// UploadService validates a file, derives a collision-resistant key, writes
// the bytes to object storage and resolves a cache-busted public URL. Any
// failure terminates the attempt; nothing is retried and an object uploaded
// before a later failure is left in place.
type UploadService struct {
	storage ObjectStorage
	bucket  string
}

// NewUploadService creates a new UploadService writing into bucket.
func NewUploadService(storage ObjectStorage, bucket string) *UploadService {
	return &UploadService{
		storage: storage,
		bucket:  bucket,
	}
}

// Upload runs the pipeline and returns the public URL of the stored object.
// contentType is the declared media type; when empty it is sniffed from the
// file bytes. Validation happens before any network call.
func (s *UploadService) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyFile
	}

	if contentType == "" {
		contentType = mimetype.Detect(data).String()
	}
	if err := validateFile(contentType, len(data)); err != nil {
		return "", err
	}

	key := utils.GenerateObjectKey(filename)

	err := s.storage.UploadObject(ctx, s.bucket, key, data, storage.UploadOptions{
		ContentType:  contentType,
		CacheSeconds: CacheSeconds,
		Upsert:       false,
	})
	if err != nil {
		return "", err
	}

	publicURL, err := s.storage.PublicURL(s.bucket, key)
	if err != nil {
		return "", err
	}

	// The bucket is public; without a fresh query parameter a CDN or browser
	// could serve a stale cached miss for the newly created key.
	return fmt.Sprintf("%s?_=%d", publicURL, time.Now().UnixMilli()), nil
}

func validateFile(contentType string, size int) error {
	mediaType := strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])

	allowed := false
	for _, t := range allowedFileTypes {
		if mediaType == t {
			allowed = true
			break
		}
	}
	if !allowed {
		return ErrFileTypeNotAllowed
	}

	if size > MaxFileSize {
		return ErrFileTooLarge
	}

	return nil
}

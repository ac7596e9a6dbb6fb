package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ErrNoPublicURL is returned when the client cannot produce a public URL for
// an object, which happens when no storage endpoint is configured.
var ErrNoPublicURL = errors.New("failed to get public URL")

// UploadOptions controls how an object is written to the bucket.
type UploadOptions struct {
	ContentType  string
	CacheSeconds int
	// Upsert allows overwriting an existing key. The upload pipeline keeps
	// this off so a key collision fails instead of silently replacing.
	Upsert bool
}

// Client talks to a Supabase-compatible storage service over its REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a storage client. An empty URL is accepted; calls made
// through such a client fail at request time rather than at startup.
func NewClient(url, key string) *Client {
	if url != "" && !strings.HasPrefix(url, "http") {
		url = "https://" + url
	}

	return &Client{
		baseURL: strings.TrimSuffix(url, "/"),
		apiKey:  key,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// UploadObject writes data under bucket/key. The object keeps the declared
// content type and carries a max-age caching directive for CacheSeconds.
func (c *Client) UploadObject(ctx context.Context, bucket, key string, data []byte, opts UploadOptions) error {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, bucket, key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if opts.ContentType != "" {
		req.Header.Set("Content-Type", opts.ContentType)
	}
	req.Header.Set("Cache-Control", "max-age="+strconv.Itoa(opts.CacheSeconds))
	req.Header.Set("x-upsert", strconv.FormatBool(opts.Upsert))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("storage upload failed: %s", serviceError(resp))
	}

	return nil
}

// PublicURL returns the externally dereferenceable address of an object.
func (c *Client) PublicURL(bucket, key string) (string, error) {
	if c.baseURL == "" {
		return "", ErrNoPublicURL
	}
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, bucket, key), nil
}

// serviceError extracts the service's message from an error response body,
// falling back to the raw body and finally the HTTP status.
func serviceError(resp *http.Response) string {
	body, err := io.ReadAll(resp.Body)
	if err != nil || len(body) == 0 {
		return fmt.Sprintf("status %d", resp.StatusCode)
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}

	return fmt.Sprintf("status %d: %s", resp.StatusCode, string(body))
}

package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sakimura/org-directory-api/internal/dto"
	"github.com/sakimura/org-directory-api/internal/services"
	"github.com/sakimura/org-directory-api/internal/storage"
	"github.com/stretchr/testify/require"
)

func setupUploadTestEnv(t *testing.T) (*gin.Engine, *int32, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	client := storage.NewClient(server.URL, "test-key")
	uploadService := services.NewUploadService(client, "profile-images")
	handler := NewUploadHandler(uploadService)

	router := gin.New()
	router.POST("/api/uploads", handler.Upload)

	return router, &hits, server
}

func multipartBody(t *testing.T, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploadHandler_HappyPath(t *testing.T) {
	router, hits, _ := setupUploadTestEnv(t)

	body, contentType := multipartBody(t, "avatar.png", "image/png", []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.UploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Regexp(t, `/storage/v1/object/public/profile-images/[0-9a-z]{11}-\d{13}\.png\?_=\d+$`, resp.URL)
	require.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestUploadHandler_RejectsDisallowedType(t *testing.T) {
	router, hits, _ := setupUploadTestEnv(t)

	body, contentType := multipartBody(t, "notes.pdf", "application/pdf", []byte("%PDF-1.4"))
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "file type not supported")
	// Validation failed before any storage call
	require.Zero(t, atomic.LoadInt32(hits))
}

func TestUploadHandler_MissingFile(t *testing.T) {
	router, hits, _ := setupUploadTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", bytes.NewReader(nil))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Zero(t, atomic.LoadInt32(hits))
}

func TestUploadHandler_StorageFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"The resource already exists"}`))
	}))
	t.Cleanup(server.Close)

	client := storage.NewClient(server.URL, "test-key")
	handler := NewUploadHandler(services.NewUploadService(client, "profile-images"))
	router := gin.New()
	router.POST("/api/uploads", handler.Upload)

	body, contentType := multipartBody(t, "avatar.png", "image/png", []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadGateway, w.Code)
	require.Contains(t, w.Body.String(), "The resource already exists")
}

package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sakimura/org-directory-api/internal/dto"
	apierrors "github.com/sakimura/org-directory-api/internal/errors"
	"github.com/sakimura/org-directory-api/internal/services"
)

type UploadHandler struct {
	uploadService *services.UploadService
}

func NewUploadHandler(uploadService *services.UploadService) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
	}
}

// Upload accepts a multipart "file" field, runs the upload pipeline and
// returns the stored object's public URL
func (h *UploadHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		apierrors.BadRequest(c, "Please select an image to upload")
		return
	}

	file, err := header.Open()
	if err != nil {
		apierrors.BadRequest(c, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		apierrors.BadRequest(c, "Failed to read uploaded file")
		return
	}

	contentType := header.Header.Get("Content-Type")
	url, err := h.uploadService.Upload(c.Request.Context(), header.Filename, contentType, data)
	if err != nil {
		if errors.Is(err, services.ErrFileTypeNotAllowed) ||
			errors.Is(err, services.ErrFileTooLarge) ||
			errors.Is(err, services.ErrEmptyFile) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.StorageError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.UploadResponse{URL: url})
}

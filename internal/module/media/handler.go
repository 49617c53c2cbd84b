package media

import (
	"github.com/gin-gonic/gin"

	"github.com/intiprima/backoffice/internal/domain"
	"github.com/intiprima/backoffice/internal/pkg"
)

// UploadResponse carries the public URL of a stored object.
type UploadResponse struct {
	URL string `json:"url"`
}

// MediaHandler handles media upload requests.
type MediaHandler struct {
	svc Service
}

// NewHandler creates a new MediaHandler with the given service.
func NewHandler(svc Service) *MediaHandler {
	return &MediaHandler{svc: svc}
}

// Upload handles POST /api/v1/media. Staff-only. Expects a multipart form
// with a "file" part and an optional "folder" field.
func (h *MediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "file is required", err))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeInternal, "failed to read upload", err))
		return
	}
	defer file.Close()

	url, err := h.svc.Upload(c.Request.Context(), domain.UploadInput{
		Folder:      c.PostForm("folder"),
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, UploadResponse{URL: url})
}

package media

import "github.com/gin-gonic/gin"

// MediaModule implements the app.Module interface for media uploads.
type MediaModule struct {
	handler *MediaHandler
}

// NewModule creates a new MediaModule with the given handler.
// Panics if h is nil.
func NewModule(h *MediaHandler) *MediaModule {
	if h == nil {
		panic("media.NewModule: handler must not be nil")
	}
	return &MediaModule{handler: h}
}

// RegisterRoutes registers the media upload route. Uploads are staff-only.
func (m *MediaModule) RegisterRoutes(public *gin.RouterGroup, staff *gin.RouterGroup) {
	staff.POST("/media", m.handler.Upload)
}

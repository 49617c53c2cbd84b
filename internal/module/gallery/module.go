package gallery

import "github.com/gin-gonic/gin"

// GalleryModule implements the app.Module interface for the gallery domain.
type GalleryModule struct {
	handler *GalleryHandler
}

// NewModule creates a new GalleryModule with the given handler.
// Panics if h is nil.
func NewModule(h *GalleryHandler) *GalleryModule {
	if h == nil {
		panic("gallery.NewModule: handler must not be nil")
	}
	return &GalleryModule{handler: h}
}

// RegisterRoutes registers gallery routes. Reads are public; mutations are
// staff-only.
func (m *GalleryModule) RegisterRoutes(public *gin.RouterGroup, staff *gin.RouterGroup) {
	public.GET("/gallery", m.handler.List)
	public.GET("/gallery/:id", m.handler.Get)

	staff.POST("/gallery", m.handler.Create)
	staff.PUT("/gallery/:id", m.handler.Update)
	staff.DELETE("/gallery/:id", m.handler.Delete)
}

package contact

import "github.com/gin-gonic/gin"

// ContactModule implements the app.Module interface for contact submissions.
type ContactModule struct {
	handler *ContactHandler
}

// NewModule creates a new ContactModule with the given handler.
// Panics if h is nil.
func NewModule(h *ContactHandler) *ContactModule {
	if h == nil {
		panic("contact.NewModule: handler must not be nil")
	}
	return &ContactModule{handler: h}
}

// RegisterRoutes registers contact-form routes. Submission is public;
// reading and deleting submissions is staff-only.
func (m *ContactModule) RegisterRoutes(public *gin.RouterGroup, staff *gin.RouterGroup) {
	public.POST("/contact-forms", m.handler.Create)

	staff.GET("/contact-forms", m.handler.List)
	staff.GET("/contact-forms/:id", m.handler.Get)
	staff.DELETE("/contact-forms/:id", m.handler.Delete)
}

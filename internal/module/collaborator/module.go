package collaborator

import "github.com/gin-gonic/gin"

// CollaboratorModule implements the app.Module interface for the collaborator domain.
type CollaboratorModule struct {
	handler *CollaboratorHandler
}

// NewModule creates a new CollaboratorModule with the given handler.
// Panics if h is nil.
func NewModule(h *CollaboratorHandler) *CollaboratorModule {
	if h == nil {
		panic("collaborator.NewModule: handler must not be nil")
	}
	return &CollaboratorModule{handler: h}
}

// RegisterRoutes registers collaborator routes. Reads are public; mutations
// are staff-only.
func (m *CollaboratorModule) RegisterRoutes(public *gin.RouterGroup, staff *gin.RouterGroup) {
	public.GET("/collaborators", m.handler.List)
	public.GET("/collaborators/:id", m.handler.Get)

	staff.POST("/collaborators", m.handler.Create)
	staff.PUT("/collaborators/:id", m.handler.Update)
	staff.DELETE("/collaborators/:id", m.handler.Delete)
}

package principal

import "github.com/gin-gonic/gin"

// PrincipalModule implements the app.Module interface for the principal domain.
type PrincipalModule struct {
	handler *PrincipalHandler
}

// NewModule creates a new PrincipalModule with the given handler.
// Panics if h is nil.
func NewModule(h *PrincipalHandler) *PrincipalModule {
	if h == nil {
		panic("principal.NewModule: handler must not be nil")
	}
	return &PrincipalModule{handler: h}
}

// RegisterRoutes registers principal routes. Reads are public; mutations are
// staff-only.
func (m *PrincipalModule) RegisterRoutes(public *gin.RouterGroup, staff *gin.RouterGroup) {
	public.GET("/principals", m.handler.List)
	public.GET("/principals/:id", m.handler.Get)
	public.GET("/principals/slug/:slug", m.handler.GetBySlug)

	staff.POST("/principals", m.handler.Create)
	staff.PUT("/principals/:id", m.handler.Update)
	staff.DELETE("/principals/:id", m.handler.Delete)
}

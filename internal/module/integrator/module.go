package integrator

import "github.com/gin-gonic/gin"

// IntegratorModule implements the app.Module interface for the integrator domain.
type IntegratorModule struct {
	handler *IntegratorHandler
}

// NewModule creates a new IntegratorModule with the given handler.
// Panics if h is nil.
func NewModule(h *IntegratorHandler) *IntegratorModule {
	if h == nil {
		panic("integrator.NewModule: handler must not be nil")
	}
	return &IntegratorModule{handler: h}
}

// RegisterRoutes registers integrator routes. Reads are public; mutations are
// staff-only.
func (m *IntegratorModule) RegisterRoutes(public *gin.RouterGroup, staff *gin.RouterGroup) {
	public.GET("/integrators", m.handler.List)
	public.GET("/integrators/:id", m.handler.Get)
	public.GET("/integrators/slug/:slug", m.handler.GetBySlug)

	staff.POST("/integrators", m.handler.Create)
	staff.PUT("/integrators/:id", m.handler.Update)
	staff.DELETE("/integrators/:id", m.handler.Delete)
}

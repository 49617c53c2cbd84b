package solution

import "github.com/gin-gonic/gin"

// SolutionModule implements the app.Module interface for the solution domain.
type SolutionModule struct {
	handler *SolutionHandler
}

// NewModule creates a new SolutionModule with the given handler.
// Panics if h is nil.
func NewModule(h *SolutionHandler) *SolutionModule {
	if h == nil {
		panic("solution.NewModule: handler must not be nil")
	}
	return &SolutionModule{handler: h}
}

// RegisterRoutes registers solution routes. Reads are public; mutations are
// staff-only.
func (m *SolutionModule) RegisterRoutes(public *gin.RouterGroup, staff *gin.RouterGroup) {
	public.GET("/solutions", m.handler.List)
	public.GET("/solutions/:id", m.handler.Get)
	public.GET("/solutions/slug/:slug", m.handler.GetBySlug)

	staff.POST("/solutions", m.handler.Create)
	staff.PUT("/solutions/:id", m.handler.Update)
	staff.DELETE("/solutions/:id", m.handler.Delete)
}

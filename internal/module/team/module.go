package team

import "github.com/gin-gonic/gin"

// TeamModule implements the app.Module interface for the team domain.
type TeamModule struct {
	handler *TeamHandler
}

// NewModule creates a new TeamModule with the given handler.
// Panics if h is nil.
func NewModule(h *TeamHandler) *TeamModule {
	if h == nil {
		panic("team.NewModule: handler must not be nil")
	}
	return &TeamModule{handler: h}
}

// RegisterRoutes registers team member routes. Reads are public; mutations
// are staff-only.
func (m *TeamModule) RegisterRoutes(public *gin.RouterGroup, staff *gin.RouterGroup) {
	public.GET("/team-members", m.handler.List)
	public.GET("/team-members/:id", m.handler.Get)

	staff.POST("/team-members", m.handler.Create)
	staff.PUT("/team-members/:id", m.handler.Update)
	staff.DELETE("/team-members/:id", m.handler.Delete)
}

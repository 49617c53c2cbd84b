package team

import (
	"github.com/gin-gonic/gin"

	"github.com/intiprima/backoffice/internal/domain"
	"github.com/intiprima/backoffice/internal/pkg"
)

// TeamHandler handles REST API requests for the team member resource.
type TeamHandler struct {
	svc Service
}

// NewHandler creates a new TeamHandler with the given service.
func NewHandler(svc Service) *TeamHandler {
	return &TeamHandler{svc: svc}
}

// Create handles POST /api/v1/team-members.
func (h *TeamHandler) Create(c *gin.Context) {
	var req CreateTeamMemberRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	member, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, member)
}

// Get handles GET /api/v1/team-members/:id.
func (h *TeamHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	member, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, member)
}

// List handles GET /api/v1/team-members.
func (h *TeamHandler) List(c *gin.Context) {
	params := pkg.ParseListParams(c, listConfig)

	result, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/team-members/:id.
func (h *TeamHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req UpdateTeamMemberRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	member, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, member)
}

// Delete handles DELETE /api/v1/team-members/:id.
func (h *TeamHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}

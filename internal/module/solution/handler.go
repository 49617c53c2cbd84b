package solution

import (
	"github.com/gin-gonic/gin"

	"github.com/intiprima/backoffice/internal/domain"
	"github.com/intiprima/backoffice/internal/pkg"
)

// SolutionHandler handles REST API requests for the solution resource.
type SolutionHandler struct {
	svc Service
}

// NewHandler creates a new SolutionHandler with the given service.
func NewHandler(svc Service) *SolutionHandler {
	return &SolutionHandler{svc: svc}
}

// Create handles POST /api/v1/solutions.
func (h *SolutionHandler) Create(c *gin.Context) {
	var req CreateSolutionRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	solution, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, solution)
}

// Get handles GET /api/v1/solutions/:id.
func (h *SolutionHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	solution, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, solution)
}

// GetBySlug handles GET /api/v1/solutions/slug/:slug.
func (h *SolutionHandler) GetBySlug(c *gin.Context) {
	solution, err := h.svc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, solution)
}

// List handles GET /api/v1/solutions.
func (h *SolutionHandler) List(c *gin.Context) {
	params := pkg.ParseListParams(c, listConfig)

	result, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/solutions/:id.
func (h *SolutionHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req UpdateSolutionRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	solution, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, solution)
}

// Delete handles DELETE /api/v1/solutions/:id.
func (h *SolutionHandler) Delete(c *gin.Context) {
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

package integrator

import (
	"github.com/gin-gonic/gin"

	"github.com/intiprima/backoffice/internal/domain"
	"github.com/intiprima/backoffice/internal/pkg"
)

// IntegratorHandler handles REST API requests for the integrator resource.
type IntegratorHandler struct {
	svc Service
}

// NewHandler creates a new IntegratorHandler with the given service.
func NewHandler(svc Service) *IntegratorHandler {
	return &IntegratorHandler{svc: svc}
}

// Create handles POST /api/v1/integrators.
func (h *IntegratorHandler) Create(c *gin.Context) {
	var req CreateIntegratorRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	integrator, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, integrator)
}

// Get handles GET /api/v1/integrators/:id.
func (h *IntegratorHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	integrator, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, integrator)
}

// GetBySlug handles GET /api/v1/integrators/slug/:slug.
func (h *IntegratorHandler) GetBySlug(c *gin.Context) {
	integrator, err := h.svc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, integrator)
}

// List handles GET /api/v1/integrators.
func (h *IntegratorHandler) List(c *gin.Context) {
	params := pkg.ParseListParams(c, listConfig)

	result, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/integrators/:id.
func (h *IntegratorHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req UpdateIntegratorRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	integrator, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, integrator)
}

// Delete handles DELETE /api/v1/integrators/:id.
func (h *IntegratorHandler) Delete(c *gin.Context) {
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

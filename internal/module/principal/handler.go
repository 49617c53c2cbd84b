package principal

import (
	"github.com/gin-gonic/gin"

	"github.com/intiprima/backoffice/internal/domain"
	"github.com/intiprima/backoffice/internal/pkg"
)

// PrincipalHandler handles REST API requests for the principal resource.
type PrincipalHandler struct {
	svc Service
}

// NewHandler creates a new PrincipalHandler with the given service.
func NewHandler(svc Service) *PrincipalHandler {
	return &PrincipalHandler{svc: svc}
}

// Create handles POST /api/v1/principals.
func (h *PrincipalHandler) Create(c *gin.Context) {
	var req CreatePrincipalRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	principal, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, principal)
}

// Get handles GET /api/v1/principals/:id.
func (h *PrincipalHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	principal, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, principal)
}

// GetBySlug handles GET /api/v1/principals/slug/:slug.
func (h *PrincipalHandler) GetBySlug(c *gin.Context) {
	principal, err := h.svc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, principal)
}

// List handles GET /api/v1/principals.
func (h *PrincipalHandler) List(c *gin.Context) {
	params := pkg.ParseListParams(c, listConfig)

	result, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/principals/:id.
func (h *PrincipalHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req UpdatePrincipalRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	principal, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, principal)
}

// Delete handles DELETE /api/v1/principals/:id.
func (h *PrincipalHandler) Delete(c *gin.Context) {
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

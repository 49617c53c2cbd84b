package collaborator

import (
	"github.com/gin-gonic/gin"

	"github.com/intiprima/backoffice/internal/domain"
	"github.com/intiprima/backoffice/internal/pkg"
)

// CollaboratorHandler handles REST API requests for the collaborator resource.
type CollaboratorHandler struct {
	svc Service
}

// NewHandler creates a new CollaboratorHandler with the given service.
func NewHandler(svc Service) *CollaboratorHandler {
	return &CollaboratorHandler{svc: svc}
}

// Create handles POST /api/v1/collaborators.
func (h *CollaboratorHandler) Create(c *gin.Context) {
	var req CreateCollaboratorRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	collab, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, collab)
}

// Get handles GET /api/v1/collaborators/:id.
func (h *CollaboratorHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	collab, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, collab)
}

// List handles GET /api/v1/collaborators.
func (h *CollaboratorHandler) List(c *gin.Context) {
	params := pkg.ParseListParams(c, listConfig)

	result, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/collaborators/:id.
func (h *CollaboratorHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req UpdateCollaboratorRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	collab, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, collab)
}

// Delete handles DELETE /api/v1/collaborators/:id.
func (h *CollaboratorHandler) Delete(c *gin.Context) {
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

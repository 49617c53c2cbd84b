package contact

import (
	"github.com/gin-gonic/gin"

	"github.com/intiprima/backoffice/internal/domain"
	"github.com/intiprima/backoffice/internal/pkg"
)

// ContactHandler handles REST API requests for contact submissions.
type ContactHandler struct {
	svc Service
}

// NewHandler creates a new ContactHandler with the given service.
func NewHandler(svc Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// Create handles POST /api/v1/contact-forms. Always public.
func (h *ContactHandler) Create(c *gin.Context) {
	var req CreateContactRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	submission, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, submission)
}

// Get handles GET /api/v1/contact-forms/:id. Staff-only.
func (h *ContactHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	submission, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, submission)
}

// List handles GET /api/v1/contact-forms. Staff-only.
func (h *ContactHandler) List(c *gin.Context) {
	params := pkg.ParseListParams(c, listConfig)

	result, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Delete handles DELETE /api/v1/contact-forms/:id. Staff-only.
func (h *ContactHandler) Delete(c *gin.Context) {
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

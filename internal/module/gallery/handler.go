package gallery

import (
	"github.com/gin-gonic/gin"

	"github.com/intiprima/backoffice/internal/domain"
	"github.com/intiprima/backoffice/internal/pkg"
)

// GalleryHandler handles REST API requests for the gallery resource.
type GalleryHandler struct {
	svc Service
}

// NewHandler creates a new GalleryHandler with the given service.
func NewHandler(svc Service) *GalleryHandler {
	return &GalleryHandler{svc: svc}
}

// Create handles POST /api/v1/gallery.
func (h *GalleryHandler) Create(c *gin.Context) {
	var req CreateGalleryImageRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	image, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, image)
}

// Get handles GET /api/v1/gallery/:id.
func (h *GalleryHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	image, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, image)
}

// List handles GET /api/v1/gallery.
func (h *GalleryHandler) List(c *gin.Context) {
	params := pkg.ParseListParams(c, listConfig)

	result, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/gallery/:id.
func (h *GalleryHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req UpdateGalleryImageRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	image, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, image)
}

// Delete handles DELETE /api/v1/gallery/:id.
func (h *GalleryHandler) Delete(c *gin.Context) {
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

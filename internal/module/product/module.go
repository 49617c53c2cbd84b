package product

import "github.com/gin-gonic/gin"

// ProductModule implements the app.Module interface for the product domain.
type ProductModule struct {
	handler *ProductHandler
}

// NewModule creates a new ProductModule with the given handler.
// Panics if h is nil.
func NewModule(h *ProductHandler) *ProductModule {
	if h == nil {
		panic("product.NewModule: handler must not be nil")
	}
	return &ProductModule{handler: h}
}

// RegisterRoutes registers product routes. Reads are public; mutations are
// staff-only.
func (m *ProductModule) RegisterRoutes(public *gin.RouterGroup, staff *gin.RouterGroup) {
	public.GET("/products", m.handler.List)
	public.GET("/products/:id", m.handler.Get)
	public.GET("/products/slug/:slug", m.handler.GetBySlug)

	staff.POST("/products", m.handler.Create)
	staff.PUT("/products/:id", m.handler.Update)
	staff.DELETE("/products/:id", m.handler.Delete)
}

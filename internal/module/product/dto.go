package product

// CreateProductRequest represents the input for creating a product.
// The slug is derived from the title at create time and never supplied
// by the client.
type CreateProductRequest struct {
	Title       string `json:"title" form:"title" binding:"required,max=200"`
	Category    string `json:"category" form:"category" binding:"omitempty,max=100"`
	Summary     string `json:"summary" form:"summary" binding:"omitempty,max=500"`
	Description string `json:"description" form:"description" binding:"omitempty"`
	ImageURL    string `json:"image_url" form:"image_url" binding:"omitempty,url,max=500"`
	BrochureURL string `json:"brochure_url" form:"brochure_url" binding:"omitempty,url,max=500"`
}

// UpdateProductRequest represents the input for updating a product.
// The slug is immutable after creation and is not accepted here.
type UpdateProductRequest struct {
	Title       string `json:"title" form:"title" binding:"required,max=200"`
	Category    string `json:"category" form:"category" binding:"omitempty,max=100"`
	Summary     string `json:"summary" form:"summary" binding:"omitempty,max=500"`
	Description string `json:"description" form:"description" binding:"omitempty"`
	ImageURL    string `json:"image_url" form:"image_url" binding:"omitempty,url,max=500"`
	BrochureURL string `json:"brochure_url" form:"brochure_url" binding:"omitempty,url,max=500"`
}

package gallery

// CreateGalleryImageRequest represents the input for adding a gallery image.
type CreateGalleryImageRequest struct {
	Title    string `json:"title" form:"title" binding:"required,max=200"`
	Category string `json:"category" form:"category" binding:"omitempty,max=100"`
	ImageURL string `json:"image_url" form:"image_url" binding:"required,url,max=500"`
}

// UpdateGalleryImageRequest represents the input for updating a gallery image.
type UpdateGalleryImageRequest struct {
	Title    string `json:"title" form:"title" binding:"required,max=200"`
	Category string `json:"category" form:"category" binding:"omitempty,max=100"`
	ImageURL string `json:"image_url" form:"image_url" binding:"required,url,max=500"`
}

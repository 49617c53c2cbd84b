package integrator

// CreateIntegratorRequest represents the input for creating a system
// integrator. The slug is derived from the name at create time.
type CreateIntegratorRequest struct {
	Name        string `json:"name" form:"name" binding:"required,max=200"`
	Region      string `json:"region" form:"region" binding:"omitempty,max=100"`
	Description string `json:"description" form:"description" binding:"omitempty"`
	LogoURL     string `json:"logo_url" form:"logo_url" binding:"omitempty,url,max=500"`
	WebsiteURL  string `json:"website_url" form:"website_url" binding:"omitempty,url,max=500"`
}

// UpdateIntegratorRequest represents the input for updating a system
// integrator. The slug is immutable after creation.
type UpdateIntegratorRequest struct {
	Name        string `json:"name" form:"name" binding:"required,max=200"`
	Region      string `json:"region" form:"region" binding:"omitempty,max=100"`
	Description string `json:"description" form:"description" binding:"omitempty"`
	LogoURL     string `json:"logo_url" form:"logo_url" binding:"omitempty,url,max=500"`
	WebsiteURL  string `json:"website_url" form:"website_url" binding:"omitempty,url,max=500"`
}

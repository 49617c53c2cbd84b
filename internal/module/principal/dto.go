package principal

// CreatePrincipalRequest represents the input for creating a principal
// product line. The slug is derived from the name at create time.
type CreatePrincipalRequest struct {
	Name         string `json:"name" form:"name" binding:"required,max=200"`
	Manufacturer string `json:"manufacturer" form:"manufacturer" binding:"omitempty,max=200"`
	Description  string `json:"description" form:"description" binding:"omitempty"`
	WebsiteURL   string `json:"website_url" form:"website_url" binding:"omitempty,url,max=500"`
	LogoURL      string `json:"logo_url" form:"logo_url" binding:"omitempty,url,max=500"`
}

// UpdatePrincipalRequest represents the input for updating a principal
// product line. The slug is immutable after creation.
type UpdatePrincipalRequest struct {
	Name         string `json:"name" form:"name" binding:"required,max=200"`
	Manufacturer string `json:"manufacturer" form:"manufacturer" binding:"omitempty,max=200"`
	Description  string `json:"description" form:"description" binding:"omitempty"`
	WebsiteURL   string `json:"website_url" form:"website_url" binding:"omitempty,url,max=500"`
	LogoURL      string `json:"logo_url" form:"logo_url" binding:"omitempty,url,max=500"`
}

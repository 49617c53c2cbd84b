package collaborator

// CreateCollaboratorRequest represents the input for adding a collaborator.
type CreateCollaboratorRequest struct {
	Name       string `json:"name" form:"name" binding:"required,max=200"`
	LogoURL    string `json:"logo_url" form:"logo_url" binding:"omitempty,url,max=500"`
	WebsiteURL string `json:"website_url" form:"website_url" binding:"omitempty,url,max=500"`
}

// UpdateCollaboratorRequest represents the input for updating a collaborator.
type UpdateCollaboratorRequest struct {
	Name       string `json:"name" form:"name" binding:"required,max=200"`
	LogoURL    string `json:"logo_url" form:"logo_url" binding:"omitempty,url,max=500"`
	WebsiteURL string `json:"website_url" form:"website_url" binding:"omitempty,url,max=500"`
}

package team

// CreateTeamMemberRequest represents the input for adding a team member.
type CreateTeamMemberRequest struct {
	Name         string `json:"name" form:"name" binding:"required,max=100"`
	Position     string `json:"position" form:"position" binding:"required,max=100"`
	PhotoURL     string `json:"photo_url" form:"photo_url" binding:"omitempty,url,max=500"`
	DisplayOrder int    `json:"display_order" form:"display_order" binding:"omitempty,min=0"`
}

// UpdateTeamMemberRequest represents the input for updating a team member.
type UpdateTeamMemberRequest struct {
	Name         string `json:"name" form:"name" binding:"required,max=100"`
	Position     string `json:"position" form:"position" binding:"required,max=100"`
	PhotoURL     string `json:"photo_url" form:"photo_url" binding:"omitempty,url,max=500"`
	DisplayOrder int    `json:"display_order" form:"display_order" binding:"omitempty,min=0"`
}

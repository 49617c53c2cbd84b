package solution

// CreateSolutionRequest represents the input for creating a solution.
// The slug is derived from the title at create time.
type CreateSolutionRequest struct {
	Title       string `json:"title" form:"title" binding:"required,max=200"`
	Summary     string `json:"summary" form:"summary" binding:"omitempty,max=500"`
	Description string `json:"description" form:"description" binding:"omitempty"`
	ImageURL    string `json:"image_url" form:"image_url" binding:"omitempty,url,max=500"`
}

// UpdateSolutionRequest represents the input for updating a solution.
// The slug is immutable after creation.
type UpdateSolutionRequest struct {
	Title       string `json:"title" form:"title" binding:"required,max=200"`
	Summary     string `json:"summary" form:"summary" binding:"omitempty,max=500"`
	Description string `json:"description" form:"description" binding:"omitempty"`
	ImageURL    string `json:"image_url" form:"image_url" binding:"omitempty,url,max=500"`
}

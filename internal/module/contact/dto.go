package contact

// CreateContactRequest represents a public contact-form submission.
type CreateContactRequest struct {
	Name    string `json:"name" form:"name" binding:"required,max=100"`
	Email   string `json:"email" form:"email" binding:"required,email"`
	Phone   string `json:"phone" form:"phone" binding:"omitempty,max=30"`
	Subject string `json:"subject" form:"subject" binding:"required,max=200"`
	Message string `json:"message" form:"message" binding:"required,max=2000"`
}

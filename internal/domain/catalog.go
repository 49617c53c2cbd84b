package domain

// Product is a manufactured product presented in the public catalog.
type Product struct {
	BaseModel
	Title       string `gorm:"size:200;not null" json:"title"`
	Slug        string `gorm:"size:80;uniqueIndex;not null" json:"slug"`
	Category    string `gorm:"size:100;index" json:"category"`
	Summary     string `gorm:"size:500" json:"summary"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `gorm:"size:500" json:"image_url"`
	BrochureURL string `gorm:"size:500" json:"brochure_url"`
}

// Solution is an engineering solution or service offering.
type Solution struct {
	BaseModel
	Title       string `gorm:"size:200;not null" json:"title"`
	Slug        string `gorm:"size:80;uniqueIndex;not null" json:"slug"`
	Summary     string `gorm:"size:500" json:"summary"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `gorm:"size:500" json:"image_url"`
}

// Principal is a principal product line represented by the company.
type Principal struct {
	BaseModel
	Name         string `gorm:"size:200;not null" json:"name"`
	Slug         string `gorm:"size:80;uniqueIndex;not null" json:"slug"`
	Manufacturer string `gorm:"size:200" json:"manufacturer"`
	Description  string `gorm:"type:text" json:"description"`
	WebsiteURL   string `gorm:"size:500" json:"website_url"`
	LogoURL      string `gorm:"size:500" json:"logo_url"`
}

// Integrator is a partner system integrator.
type Integrator struct {
	BaseModel
	Name        string `gorm:"size:200;not null" json:"name"`
	Slug        string `gorm:"size:80;uniqueIndex;not null" json:"slug"`
	Region      string `gorm:"size:100;index" json:"region"`
	Description string `gorm:"type:text" json:"description"`
	LogoURL     string `gorm:"size:500" json:"logo_url"`
	WebsiteURL  string `gorm:"size:500" json:"website_url"`
}

// TeamMember is a staff member shown on the about page.
type TeamMember struct {
	BaseModel
	Name         string `gorm:"size:100;not null" json:"name"`
	Position     string `gorm:"size:100;not null" json:"position"`
	PhotoURL     string `gorm:"size:500" json:"photo_url"`
	DisplayOrder int    `gorm:"default:0;index" json:"display_order"`
}

// Collaborator is a partner company shown in the collaborators strip.
type Collaborator struct {
	BaseModel
	Name       string `gorm:"size:200;not null" json:"name"`
	LogoURL    string `gorm:"size:500" json:"logo_url"`
	WebsiteURL string `gorm:"size:500" json:"website_url"`
}

// GalleryImage is a single image in the site gallery.
type GalleryImage struct {
	BaseModel
	Title    string `gorm:"size:200;not null" json:"title"`
	Category string `gorm:"size:100;index" json:"category"`
	ImageURL string `gorm:"size:500;not null" json:"image_url"`
}

// ContactSubmission is a message submitted through the public contact form.
type ContactSubmission struct {
	BaseModel
	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"size:255;not null" json:"email"`
	Phone   string `gorm:"size:30" json:"phone"`
	Subject string `gorm:"size:200;not null" json:"subject"`
	Message string `gorm:"size:2000;not null" json:"message"`
}

// StaffUser is a back-office account. Accounts are seeded out of band;
// the API only exposes login.
type StaffUser struct {
	BaseModel
	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`
}

package models

import "gorm.io/datatypes"

type TeamMember struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Image string `json:"image"`
}

type SocialLinks struct {
	Linkedin string `json:"linkedin"`
	Twitter  string `json:"twitter"`
}

// Founder is a startup account looking for a technical co-founder.
// FundingAmount is numeric (USD) so range filters are well-typed.
type Founder struct {
	BaseModel
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	StartupName   string                      `gorm:"not null;index" json:"startupName"`
	Logo          string                      `json:"logo,omitempty"`
	Tagline       string                      `json:"tagline,omitempty"`
	Stage         string                      `json:"stage,omitempty"`
	FundingAmount int64                       `gorm:"index" json:"fundingAmount"`
	EmployeeCount int                         `json:"employeeCount"`
	Founded       string                      `json:"founded,omitempty"`
	Location      string                      `json:"location,omitempty"`
	Industry      datatypes.JSONSlice[string] `json:"industry"`
	Website       string                      `json:"website,omitempty"`

	Description   string `gorm:"type:text" json:"description,omitempty"`
	Problem       string `gorm:"type:text" json:"problem,omitempty"`
	Solution      string `gorm:"type:text" json:"solution,omitempty"`
	Traction      string `gorm:"type:text" json:"traction,omitempty"`
	BusinessModel string `gorm:"type:text" json:"businessModel,omitempty"`
	Market        string `gorm:"type:text" json:"market,omitempty"`
	Competition   string `gorm:"type:text" json:"competition,omitempty"`

	TeamMembers   datatypes.JSONSlice[TeamMember] `json:"teamMembers"`
	TechStack     datatypes.JSONSlice[string]     `json:"techStack"`
	OpenPositions datatypes.JSONSlice[string]     `json:"openPositions"`
	Equity        string                          `json:"equity,omitempty"`
	Benefits      datatypes.JSONSlice[string]     `json:"benefits"`
	Culture       string                          `gorm:"type:text" json:"culture,omitempty"`
	Vision        string                          `gorm:"type:text" json:"vision,omitempty"`

	ContactEmail string                              `json:"contactEmail,omitempty"`
	ContactPhone string                              `json:"contactPhone,omitempty"`
	SocialLinks  datatypes.JSONType[SocialLinks]     `json:"socialLinks"`

	PhoneVerification
}

package dto

import "cofoundermatch_backend/internal/models"

// DeveloperProfile is the formatted developer document served to clients.
// Every field has a zero default so the frontend never sees null.
type DeveloperProfile struct {
	ID                string                  `json:"id"`
	Name              string                  `json:"name"`
	Avatar            string                  `json:"avatar"`
	Title             string                  `json:"title"`
	Location          string                  `json:"location"`
	YearsOfExperience int                     `json:"yearsOfExperience"`
	Bio               string                  `json:"bio"`
	Skills            []string                `json:"skills"`
	TopSkills         []models.TopSkill       `json:"topSkills"`
	GithubURL         string                  `json:"githubUrl"`
	LinkedinURL       string                  `json:"linkedinUrl"`
	PersonalWebsite   string                  `json:"personalWebsite"`
	Email             string                  `json:"email"`
	Education         []models.Education      `json:"education"`
	WorkExperience    []models.WorkExperience `json:"workExperience"`
	Projects          []models.Project        `json:"projects"`
	Achievements      []string                `json:"achievements"`
	Languages         []string                `json:"languages"`
}

// UpdateDeveloperProfileRequest - allow-listed partial update. Identity
// fields (email, password, githubId) are deliberately absent.
type UpdateDeveloperProfileRequest struct {
	Name              *string                  `json:"name"`
	Title             *string                  `json:"title"`
	Location          *string                  `json:"location"`
	YearsOfExperience *int                     `json:"yearsOfExperience"`
	Bio               *string                  `json:"bio"`
	Skills            []string                 `json:"skills"`
	TopSkills         []models.TopSkill        `json:"topSkills"`
	GithubURL         *string                  `json:"githubUrl"`
	LinkedinURL       *string                  `json:"linkedinUrl"`
	PersonalWebsite   *string                  `json:"personalWebsite"`
	Education         []models.Education       `json:"education"`
	WorkExperience    []models.WorkExperience  `json:"workExperience"`
	Projects          []models.Project         `json:"projects"`
	Achievements      []string                 `json:"achievements"`
	Languages         []string                 `json:"languages"`
}

// UpdateFounderProfileRequest - allow-listed partial update of the startup
// profile. Email and password change flows are separate.
type UpdateFounderProfileRequest struct {
	StartupName   *string              `json:"name"`
	Logo          *string              `json:"logo"`
	Tagline       *string              `json:"tagline"`
	Stage         *string              `json:"stage"`
	FundingAmount *int64               `json:"fundingAmount"`
	EmployeeCount *int                 `json:"employeeCount"`
	Founded       *string              `json:"founded"`
	Location      *string              `json:"location"`
	Industry      []string             `json:"industry"`
	Website       *string              `json:"website"`
	Description   *string              `json:"description"`
	Problem       *string              `json:"problem"`
	Solution      *string              `json:"solution"`
	Traction      *string              `json:"traction"`
	BusinessModel *string              `json:"businessModel"`
	Market        *string              `json:"market"`
	Competition   *string              `json:"competition"`
	TeamMembers   []models.TeamMember  `json:"teamMembers"`
	TechStack     []string             `json:"techStack"`
	OpenPositions []string             `json:"openPositions"`
	Equity        *string              `json:"equity"`
	Benefits      []string             `json:"benefits"`
	Culture       *string              `json:"culture"`
	Vision        *string              `json:"vision"`
	ContactEmail  *string              `json:"contactEmail"`
	ContactPhone  *string              `json:"contactPhone"`
	SocialLinks   *models.SocialLinks  `json:"socialLinks"`
}

// FounderProfileResponse wraps profile updates.
type FounderProfileResponse struct {
	Message string          `json:"message"`
	Founder *models.Founder `json:"founder"`
}

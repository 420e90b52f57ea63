package dto

import (
	"time"

	"cofoundermatch_backend/internal/models"
)

// SearchFoundersRequest - the enumerated founder filter schema, bound from
// query parameters. Unknown parameters are ignored rather than turned into
// ad-hoc field filters.
type SearchFoundersRequest struct {
	Search        string `form:"search"`
	Location      string `form:"location"`
	Stage         string `form:"stage"`
	Industry      string `form:"industry"`
	TechStack     string `form:"techStack"`
	MinFunding    *int64 `form:"minFunding"`
	MaxFunding    *int64 `form:"maxFunding"`
	OpenPositions string `form:"openPositions"`
	Sort          string `form:"sort" binding:"omitempty,oneof=recent funding employees"`
	Page          int    `form:"page" binding:"omitempty,min=1"`
	Limit         int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

type SearchDevelopersRequest struct {
	Search        string `form:"search"`
	Location      string `form:"location"`
	Title         string `form:"title"`
	Skills        string `form:"skills"`
	Languages     string `form:"languages"`
	MinExperience *int   `form:"minExperience"`
	MaxExperience *int   `form:"maxExperience"`
	Sort          string `form:"sort" binding:"omitempty,oneof=recent experience name"`
	Page          int    `form:"page" binding:"omitempty,min=1"`
	Limit         int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

// Pagination - pages is always ceil(total/limit).
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
	Limit int   `json:"limit"`
}

// FounderSearchItem is the public founder projection: no password hash,
// no account email, no verification state.
type FounderSearchItem struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	StartupName   string              `json:"startupName"`
	Logo          string              `json:"logo"`
	Tagline       string              `json:"tagline"`
	Stage         string              `json:"stage"`
	FundingAmount int64               `json:"fundingAmount"`
	EmployeeCount int                 `json:"employeeCount"`
	Founded       string              `json:"founded"`
	Location      string              `json:"location"`
	Industry      []string            `json:"industry"`
	Website       string              `json:"website"`
	Description   string              `json:"description"`
	TeamMembers   []models.TeamMember `json:"teamMembers"`
	TechStack     []string            `json:"techStack"`
	OpenPositions []string            `json:"openPositions"`
	Equity        string              `json:"equity"`
	Benefits      []string            `json:"benefits"`
	CreatedAt     time.Time           `json:"createdAt"`
}

type DeveloperSearchItem struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Avatar            string            `json:"avatar"`
	Title             string            `json:"title"`
	Location          string            `json:"location"`
	YearsOfExperience int               `json:"yearsOfExperience"`
	Bio               string            `json:"bio"`
	Skills            []string          `json:"skills"`
	TopSkills         []models.TopSkill `json:"topSkills"`
	GithubURL         string            `json:"githubUrl"`
	LinkedinURL       string            `json:"linkedinUrl"`
	PersonalWebsite   string            `json:"personalWebsite"`
	Languages         []string          `json:"languages"`
	CreatedAt         time.Time         `json:"createdAt"`
}

type FounderSearchResponse struct {
	Founders   []FounderSearchItem `json:"founders"`
	Pagination Pagination          `json:"pagination"`
}

type DeveloperSearchResponse struct {
	Developers []DeveloperSearchItem `json:"developers"`
	Pagination Pagination            `json:"pagination"`
}

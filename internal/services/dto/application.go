package dto

import (
	"time"

	"cofoundermatch_backend/internal/models"
)

type SubmitApplicationRequest struct {
	Position       string     `json:"position" binding:"required"`
	CoverLetter    string     `json:"coverLetter" binding:"required"`
	Resume         string     `json:"resume"`
	ExpectedSalary *int       `json:"expectedSalary"`
	StartDate      *time.Time `json:"startDate"`
}

type SubmitApplicationResponse struct {
	Message     string              `json:"message"`
	Application *models.Application `json:"application"`
}

// ReceivedApplicationsRequest - founder inbox filters, bound from query.
type ReceivedApplicationsRequest struct {
	Status   string `form:"status" binding:"omitempty,oneof=pending accepted rejected"`
	Position string `form:"position"`
	Sort     string `form:"sort" binding:"omitempty,oneof=recent oldest position"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

type UpdateApplicationStatusResponse struct {
	Message     string              `json:"message"`
	Application *models.Application `json:"application"`
}

// ContactInfo is revealed to the counterpart only on accepted applications.
type ContactInfo struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CompanySummary is the limited founder projection on a developer's list.
type CompanySummary struct {
	Name     string   `json:"name"`
	Logo     string   `json:"logo"`
	Location string   `json:"location"`
	Industry []string `json:"industry"`
}

type MyApplication struct {
	ID          string                   `json:"id"`
	Company     CompanySummary           `json:"company"`
	Position    string                   `json:"position"`
	Status      models.ApplicationStatus `json:"status"`
	AppliedDate time.Time                `json:"appliedDate"`
	ContactInfo *ContactInfo             `json:"contactInfo"`
}

// CandidateSummary is the developer projection on a founder's inbox.
// Password is structurally absent; contact info appears only when accepted.
type CandidateSummary struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Avatar      string            `json:"avatar"`
	Title       string            `json:"title"`
	Experience  int               `json:"experience"`
	Location    string            `json:"location"`
	Skills      []string          `json:"skills"`
	GithubURL   string            `json:"githubUrl"`
	LinkedinURL string            `json:"linkedinUrl"`
	ContactInfo *ContactInfo      `json:"contactInfo,omitempty"`
}

type ApplicationDetails struct {
	Position       string                   `json:"position"`
	Status         models.ApplicationStatus `json:"status"`
	CoverLetter    string                   `json:"coverLetter"`
	Resume         string                   `json:"resume"`
	ExpectedSalary *int                     `json:"expectedSalary"`
	StartDate      *time.Time               `json:"startDate"`
	AppliedDate    time.Time                `json:"appliedDate"`
	Notes          string                   `json:"notes"`
}

type ReceivedApplication struct {
	ID          string             `json:"id"`
	Candidate   CandidateSummary   `json:"candidate"`
	Application ApplicationDetails `json:"application"`
}

package models

import "gorm.io/datatypes"

// TopSkill is a ranked skill with a self-assessed level (1-100).
type TopSkill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type Education struct {
	Degree string `json:"degree"`
	School string `json:"school"`
	Year   string `json:"year"`
}

type WorkExperience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type Project struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// Developer is a technical candidate. Accounts are created either with
// email+password or through GitHub sign-in; in the latter case PasswordHash
// stays empty until the user sets one.
type Developer struct {
	BaseModel
	GithubID     *string `gorm:"uniqueIndex" json:"githubId,omitempty"`
	Name         string  `json:"name"`
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string  `json:"-"`
	AvatarURL    string  `json:"avatarUrl,omitempty"`

	Title             string `json:"title,omitempty"`
	Location          string `json:"location,omitempty"`
	YearsOfExperience int    `json:"yearsOfExperience"`
	Bio               string `gorm:"type:text" json:"bio,omitempty"`

	Skills    datatypes.JSONSlice[string]   `json:"skills"`
	TopSkills datatypes.JSONSlice[TopSkill] `json:"topSkills"`

	GithubURL       string `json:"githubUrl,omitempty"`
	LinkedinURL     string `json:"linkedinUrl,omitempty"`
	PersonalWebsite string `json:"personalWebsite,omitempty"`

	Education      datatypes.JSONSlice[Education]      `json:"education"`
	WorkExperience datatypes.JSONSlice[WorkExperience] `json:"workExperience"`
	Projects       datatypes.JSONSlice[Project]        `json:"projects"`
	Achievements   datatypes.JSONSlice[string]         `json:"achievements"`
	Languages      datatypes.JSONSlice[string]         `json:"languages"`

	PhoneVerification
}

// PasswordSet reports whether the account has a usable password
// (false for GitHub-only accounts).
func (d *Developer) PasswordSet() bool {
	return d.PasswordHash != ""
}

package models

import "time"

// Application is a developer's request to join a founder's startup for one
// named position. The composite unique index makes the "no duplicate
// application" invariant hold even under concurrent submissions.
type Application struct {
	BaseModel
	DeveloperID string `gorm:"type:uuid;not null;index;uniqueIndex:idx_applications_dev_founder_position" json:"developer"`
	FounderID   string `gorm:"type:uuid;not null;index;uniqueIndex:idx_applications_dev_founder_position" json:"founder"`
	Position    string `gorm:"not null;uniqueIndex:idx_applications_dev_founder_position" json:"position"`

	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CoverLetter string            `gorm:"type:text;not null" json:"coverLetter"`
	Resume      string            `json:"resume,omitempty"`

	// Notes are founder-private and excluded from developer-facing views.
	Notes          string     `gorm:"type:text" json:"notes,omitempty"`
	ExpectedSalary *int       `json:"expectedSalary,omitempty"`
	StartDate      *time.Time `json:"startDate,omitempty"`

	// ResponseDate is recorded when the founder accepts.
	ResponseDate *time.Time `json:"responseDate,omitempty"`

	Developer *Developer `gorm:"foreignKey:DeveloperID" json:"-"`
	Founder   *Founder   `gorm:"foreignKey:FounderID" json:"-"`
}

package models

import "time"

type BaseModel struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `gorm:"default:now()" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// PhoneVerification is embedded into both account models. The code and its
// expiry are server-side state and never serialized.
type PhoneVerification struct {
	Phone                        string     `gorm:"index" json:"phone,omitempty"`
	IsPhoneVerified              bool       `gorm:"default:false" json:"isPhoneVerified"`
	PhoneVerificationCode        string     `json:"-"`
	PhoneVerificationCodeExpires *time.Time `json:"-"`
}

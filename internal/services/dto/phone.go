package dto

// Role here is the lowercase account-collection selector used by the
// public phone-auth endpoints, not the token role claim.

type RequestVerificationRequest struct {
	Phone string `json:"phone" binding:"required" validate:"phone"`
	Role  string `json:"role" binding:"required,oneof=developer founder"`
	Email string `json:"email" binding:"required,email"`
}

type VerifyPhoneRequest struct {
	Phone string `json:"phone" binding:"required" validate:"phone"`
	Code  string `json:"code" binding:"required,len=6"`
	Role  string `json:"role" binding:"required,oneof=developer founder"`
	Email string `json:"email" binding:"required,email"`
}

package apperrors

import "net/http"

// Predefined errors for the CoFounderMatch domain. Status codes follow the
// public API contract: duplicate signup/application and bad verification
// input are 400s, ownership misses are 404s.

// --- Auth ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusBadRequest,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

var ErrPasswordAlreadySet = New(
	CodeInvalidOperation,
	"auth",
	"Password already set",
	http.StatusBadRequest,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password must be at least 8 characters long",
	http.StatusBadRequest,
)

// --- Profiles ---

var ErrDeveloperNotFound = New(
	CodeNotFound,
	"developer",
	"Developer not found",
	http.StatusNotFound,
)

var ErrFounderNotFound = New(
	CodeNotFound,
	"founder",
	"Founder not found",
	http.StatusNotFound,
)

// --- Applications ---

var ErrAlreadyApplied = New(
	CodeAlreadyExists,
	"application",
	"You have already applied for this position",
	http.StatusBadRequest,
)

var ErrApplicationNotFound = New(
	CodeNotFound,
	"application",
	"Application not found",
	http.StatusNotFound,
)

var ErrInvalidApplicationStatus = New(
	CodeInvalidStatus,
	"application",
	"Status must be either 'accepted' or 'rejected'",
	http.StatusBadRequest,
)

// ErrApplicationAlreadyDecided rejects a second transition out of pending.
var ErrApplicationAlreadyDecided = New(
	CodeConflict,
	"application",
	"Application has already been decided",
	http.StatusConflict,
)

// --- Phone verification ---

var ErrPhoneMismatch = New(
	CodeValidationFailed,
	"phone",
	"Phone number does not match",
	http.StatusBadRequest,
)

var ErrVerificationCodeExpired = New(
	CodeValidationFailed,
	"phone",
	"Verification code expired",
	http.StatusBadRequest,
)

var ErrInvalidVerificationCode = New(
	CodeValidationFailed,
	"phone",
	"Invalid verification code",
	http.StatusBadRequest,
)

// --- External services ---

func ErrSMSDeliveryFailed(err error) *AppError {
	return Wrap(err, CodeExternalServiceError, "sms", "Failed to send verification SMS", http.StatusInternalServerError)
}

func ErrOAuthExchangeFailed(err error) *AppError {
	return Wrap(err, CodeExternalServiceError, "oauth", "GitHub authentication failed", http.StatusInternalServerError)
}

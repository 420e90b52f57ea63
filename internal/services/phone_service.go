package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"cofoundermatch_backend/internal/logger"
	"cofoundermatch_backend/internal/repositories"
	"cofoundermatch_backend/internal/services/dto"
	"cofoundermatch_backend/internal/services/sms"
	"cofoundermatch_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const verificationCodeTTL = 10 * time.Minute

// phoneAccount is the slice of an account the verification flow needs,
// decoupling it from the two concrete account models.
type phoneAccount struct {
	ID          string
	Phone       string
	Code        string
	CodeExpires *time.Time
}

type PhoneService struct {
	developerRepo repositories.DeveloperRepository
	founderRepo   repositories.FounderRepository
	sms           sms.Provider
}

func NewPhoneService(developerRepo repositories.DeveloperRepository, founderRepo repositories.FounderRepository, provider sms.Provider) *PhoneService {
	return &PhoneService{
		developerRepo: developerRepo,
		founderRepo:   founderRepo,
		sms:           provider,
	}
}

// RequestVerification stores a fresh code against the account and sends it by
// SMS. Re-requesting replaces the previous code and restarts the expiry.
func (s *PhoneService) RequestVerification(ctx context.Context, db *gorm.DB, req dto.RequestVerificationRequest) error {
	account, err := s.findAccount(db, req.Role, req.Email)
	if err != nil {
		return err
	}

	code, err := generateVerificationCode()
	if err != nil {
		return apperrors.InternalError(err)
	}
	expires := time.Now().Add(verificationCodeTTL)

	if err := s.storeCode(db, req.Role, account.ID, req.Phone, code, expires); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.sms.SendVerificationCode(ctx, req.Phone, code); err != nil {
		return apperrors.ErrSMSDeliveryFailed(err)
	}

	logger.CtxInfo(ctx, "verification code sent", "role", req.Role)
	return nil
}

// Verify checks phone, expiry and code in that order, then marks the account
// verified and clears the stored code.
func (s *PhoneService) Verify(ctx context.Context, db *gorm.DB, req dto.VerifyPhoneRequest) error {
	account, err := s.findAccount(db, req.Role, req.Email)
	if err != nil {
		return err
	}

	if err := checkVerification(account, req.Phone, req.Code, time.Now()); err != nil {
		return err
	}

	if err := s.markVerified(db, req.Role, account.ID); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "phone verified", "role", req.Role)
	return nil
}

func checkVerification(account *phoneAccount, phone, code string, now time.Time) error {
	if account.Phone != phone {
		return apperrors.ErrPhoneMismatch
	}
	if account.CodeExpires == nil || now.After(*account.CodeExpires) {
		return apperrors.ErrVerificationCodeExpired
	}
	if account.Code == "" || account.Code != code {
		return apperrors.ErrInvalidVerificationCode
	}
	return nil
}

func (s *PhoneService) findAccount(db *gorm.DB, role, email string) (*phoneAccount, error) {
	switch role {
	case "founder":
		f, err := s.founderRepo.FindByEmail(db, email)
		if err != nil {
			if errors.Is(err, repositories.ErrFounderNotFound) {
				return nil, apperrors.ErrFounderNotFound
			}
			return nil, apperrors.InternalError(err)
		}
		return &phoneAccount{ID: f.ID, Phone: f.Phone, Code: f.PhoneVerificationCode, CodeExpires: f.PhoneVerificationCodeExpires}, nil
	default:
		d, err := s.developerRepo.FindByEmail(db, email)
		if err != nil {
			if errors.Is(err, repositories.ErrDeveloperNotFound) {
				return nil, apperrors.ErrDeveloperNotFound
			}
			return nil, apperrors.InternalError(err)
		}
		return &phoneAccount{ID: d.ID, Phone: d.Phone, Code: d.PhoneVerificationCode, CodeExpires: d.PhoneVerificationCodeExpires}, nil
	}
}

func (s *PhoneService) storeCode(db *gorm.DB, role, id, phone, code string, expires time.Time) error {
	if role == "founder" {
		return s.founderRepo.SetPhoneVerification(db, id, phone, code, expires)
	}
	return s.developerRepo.SetPhoneVerification(db, id, phone, code, expires)
}

func (s *PhoneService) markVerified(db *gorm.DB, role, id string) error {
	if role == "founder" {
		return s.founderRepo.MarkPhoneVerified(db, id)
	}
	return s.developerRepo.MarkPhoneVerified(db, id)
}

// generateVerificationCode returns a uniformly random 6-digit code.
func generateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

package repositories

import (
	"errors"
	"time"

	"cofoundermatch_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrFounderNotFound      = errors.New("founder not found")
	ErrFounderAlreadyExists = errors.New("founder already exists")
)

type FounderRepository interface {
	Create(db *gorm.DB, founder *models.Founder) error
	FindByID(db *gorm.DB, id string) (*models.Founder, error)
	FindByEmail(db *gorm.DB, email string) (*models.Founder, error)
	Update(db *gorm.DB, founder *models.Founder) error
	SetPhoneVerification(db *gorm.DB, id, phone, code string, expires time.Time) error
	MarkPhoneVerified(db *gorm.DB, id string) error
	Search(db *gorm.DB, criteria FounderSearchCriteria) ([]models.Founder, int64, error)
}

type FounderRepositoryImpl struct{}

func NewFounderRepository() FounderRepository {
	return &FounderRepositoryImpl{}
}

func (r *FounderRepositoryImpl) Create(db *gorm.DB, founder *models.Founder) error {
	var existing models.Founder
	if err := db.Where("email = ?", founder.Email).First(&existing).Error; err == nil {
		return ErrFounderAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(founder).Error
}

func (r *FounderRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Founder, error) {
	var founder models.Founder
	err := db.First(&founder, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFounderNotFound
		}
		return nil, err
	}
	return &founder, nil
}

func (r *FounderRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.Founder, error) {
	var founder models.Founder
	err := db.First(&founder, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFounderNotFound
		}
		return nil, err
	}
	return &founder, nil
}

func (r *FounderRepositoryImpl) Update(db *gorm.DB, founder *models.Founder) error {
	return db.Save(founder).Error
}

func (r *FounderRepositoryImpl) SetPhoneVerification(db *gorm.DB, id, phone, code string, expires time.Time) error {
	res := db.Model(&models.Founder{}).Where("id = ?", id).Updates(map[string]interface{}{
		"phone":                           phone,
		"is_phone_verified":               false,
		"phone_verification_code":         code,
		"phone_verification_code_expires": expires,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrFounderNotFound
	}
	return nil
}

func (r *FounderRepositoryImpl) MarkPhoneVerified(db *gorm.DB, id string) error {
	res := db.Model(&models.Founder{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_phone_verified":               true,
		"phone_verification_code":         "",
		"phone_verification_code_expires": nil,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrFounderNotFound
	}
	return nil
}

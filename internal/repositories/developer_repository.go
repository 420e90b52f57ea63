package repositories

import (
	"errors"
	"time"

	"cofoundermatch_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrDeveloperNotFound      = errors.New("developer not found")
	ErrDeveloperAlreadyExists = errors.New("developer already exists")
)

type DeveloperRepository interface {
	Create(db *gorm.DB, dev *models.Developer) error
	FindByID(db *gorm.DB, id string) (*models.Developer, error)
	FindByEmail(db *gorm.DB, email string) (*models.Developer, error)
	FindByGithubID(db *gorm.DB, githubID string) (*models.Developer, error)
	Update(db *gorm.DB, dev *models.Developer) error
	SetPassword(db *gorm.DB, id, passwordHash string) error
	SetPhoneVerification(db *gorm.DB, id, phone, code string, expires time.Time) error
	MarkPhoneVerified(db *gorm.DB, id string) error
	Search(db *gorm.DB, criteria DeveloperSearchCriteria) ([]models.Developer, int64, error)
}

type DeveloperRepositoryImpl struct{}

func NewDeveloperRepository() DeveloperRepository {
	return &DeveloperRepositoryImpl{}
}

func (r *DeveloperRepositoryImpl) Create(db *gorm.DB, dev *models.Developer) error {
	var existing models.Developer
	if err := db.Where("email = ?", dev.Email).First(&existing).Error; err == nil {
		return ErrDeveloperAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(dev).Error
}

func (r *DeveloperRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Developer, error) {
	var dev models.Developer
	err := db.First(&dev, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeveloperNotFound
		}
		return nil, err
	}
	return &dev, nil
}

func (r *DeveloperRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.Developer, error) {
	var dev models.Developer
	err := db.First(&dev, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeveloperNotFound
		}
		return nil, err
	}
	return &dev, nil
}

func (r *DeveloperRepositoryImpl) FindByGithubID(db *gorm.DB, githubID string) (*models.Developer, error) {
	var dev models.Developer
	err := db.First(&dev, "github_id = ?", githubID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeveloperNotFound
		}
		return nil, err
	}
	return &dev, nil
}

func (r *DeveloperRepositoryImpl) Update(db *gorm.DB, dev *models.Developer) error {
	return db.Save(dev).Error
}

func (r *DeveloperRepositoryImpl) SetPassword(db *gorm.DB, id, passwordHash string) error {
	res := db.Model(&models.Developer{}).Where("id = ?", id).
		Update("password_hash", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDeveloperNotFound
	}
	return nil
}

func (r *DeveloperRepositoryImpl) SetPhoneVerification(db *gorm.DB, id, phone, code string, expires time.Time) error {
	res := db.Model(&models.Developer{}).Where("id = ?", id).Updates(map[string]interface{}{
		"phone":                           phone,
		"is_phone_verified":               false,
		"phone_verification_code":         code,
		"phone_verification_code_expires": expires,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDeveloperNotFound
	}
	return nil
}

func (r *DeveloperRepositoryImpl) MarkPhoneVerified(db *gorm.DB, id string) error {
	res := db.Model(&models.Developer{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_phone_verified":               true,
		"phone_verification_code":         "",
		"phone_verification_code_expires": nil,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDeveloperNotFound
	}
	return nil
}

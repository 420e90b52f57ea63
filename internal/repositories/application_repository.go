package repositories

import (
	"errors"
	"time"

	"cofoundermatch_backend/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound       = errors.New("application not found")
	ErrDuplicateApplication      = errors.New("application already exists for this position")
	ErrApplicationAlreadyDecided = errors.New("application has already been decided")
)

// ReceivedFilter narrows a founder's inbox listing.
type ReceivedFilter struct {
	Status   models.ApplicationStatus
	Position string
	Sort     string // recent (default) | oldest | position
}

type ApplicationRepository interface {
	Create(db *gorm.DB, app *models.Application) error
	Exists(db *gorm.DB, developerID, founderID, position string) (bool, error)
	ListByDeveloper(db *gorm.DB, developerID string) ([]models.Application, error)
	ListByFounder(db *gorm.DB, founderID string, filter ReceivedFilter) ([]models.Application, error)
	DecideIfPending(db *gorm.DB, id, founderID string, status models.ApplicationStatus, notes string) (*models.Application, error)
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

// Create inserts the application. The composite unique index on
// (developer_id, founder_id, position) turns a concurrent duplicate into
// ErrDuplicateApplication instead of a second row.
func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, app *models.Application) error {
	if err := db.Create(app).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) Exists(db *gorm.DB, developerID, founderID, position string) (bool, error) {
	var count int64
	err := db.Model(&models.Application{}).
		Where("developer_id = ? AND founder_id = ? AND position = ?", developerID, founderID, position).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ApplicationRepositoryImpl) ListByDeveloper(db *gorm.DB, developerID string) ([]models.Application, error) {
	var apps []models.Application
	err := db.Preload("Founder").
		Where("developer_id = ?", developerID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) ListByFounder(db *gorm.DB, founderID string, filter ReceivedFilter) ([]models.Application, error) {
	query := db.Preload("Developer").Where("founder_id = ?", founderID)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Position != "" {
		query = query.Where("position = ?", filter.Position)
	}

	var apps []models.Application
	err := query.Order(receivedSortExpr(filter.Sort)).Find(&apps).Error
	return apps, err
}

func receivedSortExpr(sort string) string {
	switch sort {
	case "oldest":
		return "created_at ASC"
	case "position":
		return "position ASC"
	default:
		return "created_at DESC"
	}
}

// DecideIfPending performs the status transition as one conditional UPDATE
// guarded on status='pending', so two founder decisions cannot both win.
// ResponseDate is recorded when the new status is accepted.
func (r *ApplicationRepositoryImpl) DecideIfPending(db *gorm.DB, id, founderID string, status models.ApplicationStatus, notes string) (*models.Application, error) {
	updates := map[string]interface{}{
		"status": status,
		"notes":  notes,
	}
	if status == models.ApplicationStatusAccepted {
		updates["response_date"] = time.Now()
	}

	res := db.Model(&models.Application{}).
		Where("id = ? AND founder_id = ? AND status = ?", id, founderID, models.ApplicationStatusPending).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		// Distinguish "not yours / unknown" from "already decided".
		var existing models.Application
		err := db.First(&existing, "id = ? AND founder_id = ?", id, founderID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		if err != nil {
			return nil, err
		}
		return nil, ErrApplicationAlreadyDecided
	}

	var updated models.Application
	if err := db.First(&updated, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

package repositories

import (
	"cofoundermatch_backend/internal/models"

	"gorm.io/gorm"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// FounderSearchCriteria is the enumerated filter schema for founder search.
// Only known keys translate to predicates; anything else never reaches SQL.
type FounderSearchCriteria struct {
	Search        string
	Location      string
	Stage         string
	Industry      string
	TechStack     string
	MinFunding    *int64
	MaxFunding    *int64
	OpenPositions bool
	Sort          string
	Page          int
	Limit         int
}

// DeveloperSearchCriteria mirrors FounderSearchCriteria for the developer side.
type DeveloperSearchCriteria struct {
	Search        string
	Location      string
	Title         string
	Skills        string
	Languages     string
	MinExperience *int
	MaxExperience *int
	Sort          string
	Page          int
	Limit         int
}

// founderSortExpr maps a sort preset to an ORDER BY expression.
// Unknown presets fall back to newest-first.
func founderSortExpr(sort string) string {
	switch sort {
	case "funding":
		return "funding_amount DESC"
	case "employees":
		return "employee_count DESC"
	default:
		return "created_at DESC"
	}
}

func developerSortExpr(sort string) string {
	switch sort {
	case "experience":
		return "years_of_experience DESC"
	case "name":
		return "name ASC"
	default:
		return "created_at DESC"
	}
}

// clampPagination normalizes page/limit and returns the SQL offset.
func clampPagination(page, limit int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit, (page - 1) * limit
}

func (r *FounderRepositoryImpl) Search(db *gorm.DB, criteria FounderSearchCriteria) ([]models.Founder, int64, error) {
	query := db.Model(&models.Founder{})

	if criteria.Search != "" {
		like := "%" + criteria.Search + "%"
		query = query.Where(
			"startup_name ILIKE ? OR description ILIKE ? OR tagline ILIKE ? OR industry::text ILIKE ? OR tech_stack::text ILIKE ?",
			like, like, like, like, like,
		)
	}
	if criteria.Location != "" {
		query = query.Where("location ILIKE ?", "%"+criteria.Location+"%")
	}
	if criteria.Stage != "" {
		query = query.Where("stage ILIKE ?", "%"+criteria.Stage+"%")
	}
	if criteria.Industry != "" {
		query = query.Where("industry::text ILIKE ?", "%"+criteria.Industry+"%")
	}
	if criteria.TechStack != "" {
		query = query.Where("tech_stack::text ILIKE ?", "%"+criteria.TechStack+"%")
	}
	if criteria.MinFunding != nil {
		query = query.Where("funding_amount >= ?", *criteria.MinFunding)
	}
	if criteria.MaxFunding != nil {
		query = query.Where("funding_amount <= ?", *criteria.MaxFunding)
	}
	if criteria.OpenPositions {
		// A never-set slice is stored as jsonb 'null', which passes IS NOT
		// NULL; only real arrays may reach jsonb_array_length.
		query = query.Where("jsonb_typeof(open_positions::jsonb) = 'array' AND jsonb_array_length(open_positions::jsonb) > 0")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	_, limit, offset := clampPagination(criteria.Page, criteria.Limit)

	var founders []models.Founder
	err := query.Order(founderSortExpr(criteria.Sort)).
		Offset(offset).Limit(limit).
		Find(&founders).Error
	if err != nil {
		return nil, 0, err
	}
	return founders, total, nil
}

func (r *DeveloperRepositoryImpl) Search(db *gorm.DB, criteria DeveloperSearchCriteria) ([]models.Developer, int64, error) {
	query := db.Model(&models.Developer{})

	if criteria.Search != "" {
		like := "%" + criteria.Search + "%"
		query = query.Where(
			"name ILIKE ? OR bio ILIKE ? OR skills::text ILIKE ? OR title ILIKE ? OR location ILIKE ?",
			like, like, like, like, like,
		)
	}
	if criteria.Location != "" {
		query = query.Where("location ILIKE ?", "%"+criteria.Location+"%")
	}
	if criteria.Title != "" {
		query = query.Where("title ILIKE ?", "%"+criteria.Title+"%")
	}
	if criteria.Skills != "" {
		query = query.Where("skills::text ILIKE ?", "%"+criteria.Skills+"%")
	}
	if criteria.Languages != "" {
		query = query.Where("languages::text ILIKE ?", "%"+criteria.Languages+"%")
	}
	if criteria.MinExperience != nil {
		query = query.Where("years_of_experience >= ?", *criteria.MinExperience)
	}
	if criteria.MaxExperience != nil {
		query = query.Where("years_of_experience <= ?", *criteria.MaxExperience)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	_, limit, offset := clampPagination(criteria.Page, criteria.Limit)

	var developers []models.Developer
	err := query.Order(developerSortExpr(criteria.Sort)).
		Offset(offset).Limit(limit).
		Find(&developers).Error
	if err != nil {
		return nil, 0, err
	}
	return developers, total, nil
}

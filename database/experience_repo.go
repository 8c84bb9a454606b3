package database

import (
	"errors"

	"github.com/harshityadav/portfolio-backend/models"
	"gorm.io/gorm"
)

type ExperienceRepo struct {
	db *gorm.DB
}

func NewExperienceRepo(db *gorm.DB) *ExperienceRepo {
	return &ExperienceRepo{db}
}

// FindAll returns experiences ordered by display order; hidden rows only when asked
func (r *ExperienceRepo) FindAll(filter ListFilter) ([]*models.Experience, error) {
	query := r.db.Order("display_order asc")
	if !filter.IncludeHidden {
		query = query.Where("is_visible = ?", true)
	}

	var experiences []*models.Experience
	err := query.Find(&experiences).Error
	return experiences, err
}

// FindByID returns an experience by its ID, or nil if no such experience exists
func (r *ExperienceRepo) FindByID(id uint) (*models.Experience, error) {
	var experience models.Experience
	err := r.db.First(&experience, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &experience, nil
}

// Add inserts a new experience into the database
func (r *ExperienceRepo) Add(experience *models.Experience) error {
	return r.db.Create(experience).Error
}

// Update updates an existing experience in the database
func (r *ExperienceRepo) Update(experience *models.Experience) error {
	return r.db.Save(experience).Error
}

// Delete removes an experience by id; its responsibilities cascade at the schema level
func (r *ExperienceRepo) Delete(id uint) error {
	return r.db.Delete(&models.Experience{}, id).Error
}

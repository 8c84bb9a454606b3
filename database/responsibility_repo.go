package database

import (
	"errors"

	"github.com/harshityadav/portfolio-backend/models"
	"gorm.io/gorm"
)

type ResponsibilityRepo struct {
	db *gorm.DB
}

func NewResponsibilityRepo(db *gorm.DB) *ResponsibilityRepo {
	return &ResponsibilityRepo{db}
}

// FindAll returns responsibilities ordered by display order, optionally
// restricted to one experience
func (r *ResponsibilityRepo) FindAll(filter ListFilter) ([]*models.Responsibility, error) {
	query := r.db.Order("display_order asc")
	if filter.ExperienceID != 0 {
		query = query.Where("experience_id = ?", filter.ExperienceID)
	}

	var responsibilities []*models.Responsibility
	err := query.Find(&responsibilities).Error
	return responsibilities, err
}

// FindByID returns a responsibility by its ID, or nil if no such responsibility exists
func (r *ResponsibilityRepo) FindByID(id uint) (*models.Responsibility, error) {
	var responsibility models.Responsibility
	err := r.db.First(&responsibility, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &responsibility, nil
}

// Add inserts a new responsibility into the database
func (r *ResponsibilityRepo) Add(responsibility *models.Responsibility) error {
	return r.db.Create(responsibility).Error
}

// Update updates an existing responsibility in the database
func (r *ResponsibilityRepo) Update(responsibility *models.Responsibility) error {
	return r.db.Save(responsibility).Error
}

// Delete removes a responsibility from the database by id
func (r *ResponsibilityRepo) Delete(id uint) error {
	return r.db.Delete(&models.Responsibility{}, id).Error
}

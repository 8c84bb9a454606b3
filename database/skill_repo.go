package database

import (
	"errors"

	"github.com/harshityadav/portfolio-backend/models"
	"gorm.io/gorm"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

// FindAll returns skills ordered by display order, optionally restricted to
// one category; hidden rows only when asked
func (r *SkillRepo) FindAll(filter ListFilter) ([]*models.Skill, error) {
	query := r.db.Order("display_order asc")
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if !filter.IncludeHidden {
		query = query.Where("is_visible = ?", true)
	}

	var skills []*models.Skill
	err := query.Find(&skills).Error
	return skills, err
}

// FindByID returns a skill by its ID, or nil if no such skill exists
func (r *SkillRepo) FindByID(id uint) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.First(&skill, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// Add inserts a new skill into the database
func (r *SkillRepo) Add(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

// Update updates an existing skill in the database
func (r *SkillRepo) Update(skill *models.Skill) error {
	return r.db.Save(skill).Error
}

// Delete removes a skill from the database by id
func (r *SkillRepo) Delete(id uint) error {
	return r.db.Delete(&models.Skill{}, id).Error
}

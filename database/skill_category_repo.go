package database

import (
	"errors"

	"github.com/harshityadav/portfolio-backend/models"
	"gorm.io/gorm"
)

type SkillCategoryRepo struct {
	db *gorm.DB
}

func NewSkillCategoryRepo(db *gorm.DB) *SkillCategoryRepo {
	return &SkillCategoryRepo{db}
}

// FindAll returns skill categories ordered by display order; hidden rows only when asked
func (r *SkillCategoryRepo) FindAll(filter ListFilter) ([]*models.SkillCategory, error) {
	query := r.db.Order("display_order asc")
	if !filter.IncludeHidden {
		query = query.Where("is_visible = ?", true)
	}

	var categories []*models.SkillCategory
	err := query.Find(&categories).Error
	return categories, err
}

// FindByID returns a skill category by its ID, or nil if no such category exists
func (r *SkillCategoryRepo) FindByID(id uint) (*models.SkillCategory, error) {
	var category models.SkillCategory
	err := r.db.First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Add inserts a new skill category into the database
func (r *SkillCategoryRepo) Add(category *models.SkillCategory) error {
	return r.db.Create(category).Error
}

// Update updates an existing skill category in the database
func (r *SkillCategoryRepo) Update(category *models.SkillCategory) error {
	return r.db.Save(category).Error
}

// Delete removes a skill category by id; its skills cascade at the schema level
func (r *SkillCategoryRepo) Delete(id uint) error {
	return r.db.Delete(&models.SkillCategory{}, id).Error
}

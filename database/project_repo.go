package database

import (
	"errors"

	"github.com/harshityadav/portfolio-backend/models"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns projects ordered by display order; hidden rows only when asked
func (r *ProjectRepo) FindAll(filter ListFilter) ([]*models.Project, error) {
	query := r.db.Order("display_order asc")
	if !filter.IncludeHidden {
		query = query.Where("is_visible = ?", true)
	}

	var projects []*models.Project
	err := query.Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or nil if no such project exists
func (r *ProjectRepo) FindByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update updates an existing project in the database, refreshing updated_at
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project from the database by id; project_tags rows cascade
func (r *ProjectRepo) Delete(id uint) error {
	return r.db.Delete(&models.Project{}, id).Error
}

package database

import (
	"github.com/harshityadav/portfolio-backend/models"
	"gorm.io/gorm"
)

type ProjectTagRepo struct {
	db *gorm.DB
}

func NewProjectTagRepo(db *gorm.DB) *ProjectTagRepo {
	return &ProjectTagRepo{db}
}

// TagsForProject returns the tags linked to a project
func (r *ProjectTagRepo) TagsForProject(projectID uint) ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.Model(&models.Tag{}).
		Joins("JOIN project_tags ON project_tags.tag_id = tags.id").
		Where("project_tags.project_id = ?", projectID).
		Order("tags.name asc").
		Find(&tags).Error
	return tags, err
}

// AddTagToProject links a tag to a project. Inserting the same pair twice is
// a constraint violation; callers diff desired vs. current sets first.
func (r *ProjectTagRepo) AddTagToProject(projectID, tagID uint) error {
	return r.db.Create(&models.ProjectTag{ProjectID: projectID, TagID: tagID}).Error
}

// RemoveTagFromProject unlinks a tag from a project; a no-op if the pair is absent
func (r *ProjectTagRepo) RemoveTagFromProject(projectID, tagID uint) error {
	return r.db.
		Where("project_id = ? AND tag_id = ?", projectID, tagID).
		Delete(&models.ProjectTag{}).Error
}

package models

// Tag is a short label attached to projects. Its lifecycle is independent of
// any project; deleting a tag cascades its ProjectTag links.
type Tag struct {
	ID   uint   `json:"id" db:"id" gorm:"primaryKey"`
	Name string `json:"name" db:"name" gorm:"type:varchar(50);not null;unique"`

	ProjectTags []ProjectTag `json:"-" gorm:"foreignKey:TagID;references:ID;constraint:OnDelete:CASCADE"`
}

// ProjectTag links a project to a tag. The (ProjectID, TagID) pair is unique;
// rows are cascade-deleted when either side is deleted.
type ProjectTag struct {
	ID        uint `json:"id" db:"id" gorm:"primaryKey"`
	ProjectID uint `json:"projectId" db:"project_id" gorm:"not null;index:idx_project_tags_project_id;uniqueIndex:idx_project_tags_pair"`
	TagID     uint `json:"tagId" db:"tag_id" gorm:"not null;uniqueIndex:idx_project_tags_pair"`

	Project *Project `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Tag     *Tag     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

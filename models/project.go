package models

import "time"

// Project represents a portfolio project card
type Project struct {
	ID           uint      `json:"id" db:"id" gorm:"primaryKey"`
	Title        string    `json:"title" db:"title" gorm:"type:varchar(255);not null"`
	Description  string    `json:"description" db:"description" gorm:"type:text;not null"`
	Image        string    `json:"image" db:"image" gorm:"type:varchar(255);not null"`
	DemoURL      *string   `json:"demoUrl,omitempty" db:"demo_url" gorm:"type:varchar(255)"`
	GithubURL    *string   `json:"githubUrl,omitempty" db:"github_url" gorm:"type:varchar(255)"`
	DisplayOrder int       `json:"displayOrder" db:"display_order" gorm:"not null;default:0"`
	IsVisible    bool      `json:"isVisible" db:"is_visible" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	ProjectTags []ProjectTag `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

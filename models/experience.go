package models

// Experience is one entry on the experience timeline. IsPlaceholder marks a
// "future role" filler card.
type Experience struct {
	ID            uint   `json:"id" db:"id" gorm:"primaryKey"`
	Title         string `json:"title" db:"title" gorm:"type:varchar(255);not null"`
	Period        string `json:"period" db:"period" gorm:"type:varchar(100);not null"`
	IsPlaceholder bool   `json:"isPlaceholder" db:"is_placeholder" gorm:"not null;default:false"`
	DisplayOrder  int    `json:"displayOrder" db:"display_order" gorm:"not null;default:0"`
	IsVisible     bool   `json:"isVisible" db:"is_visible" gorm:"not null"`

	Responsibilities []Responsibility `json:"responsibilities,omitempty" gorm:"foreignKey:ExperienceID;references:ID;constraint:OnDelete:CASCADE"`
}

// Responsibility is a single bullet line under an experience entry.
type Responsibility struct {
	ID           uint   `json:"id" db:"id" gorm:"primaryKey"`
	Text         string `json:"text" db:"text" gorm:"type:text;not null"`
	ExperienceID uint   `json:"experienceId" db:"experience_id" gorm:"not null;index:idx_responsibilities_experience_id"`
	DisplayOrder int    `json:"displayOrder" db:"display_order" gorm:"not null;default:0"`

	Experience *Experience `json:"-" gorm:"foreignKey:ExperienceID;constraint:OnDelete:CASCADE"`
}

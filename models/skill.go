package models

// SkillCategory groups skills into a titled, icon-tagged section.
type SkillCategory struct {
	ID           uint   `json:"id" db:"id" gorm:"primaryKey"`
	Title        string `json:"title" db:"title" gorm:"type:varchar(100);not null"`
	Icon         string `json:"icon" db:"icon" gorm:"type:varchar(100);not null"`
	DisplayOrder int    `json:"displayOrder" db:"display_order" gorm:"not null;default:0"`
	IsVisible    bool   `json:"isVisible" db:"is_visible" gorm:"not null"`

	Skills []Skill `json:"skills,omitempty" gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:CASCADE"`
}

// Skill is a single proficiency entry. Percentage is a 0-100 score; when
// IsCertification is set the percentage is not meaningfully displayed.
type Skill struct {
	ID              uint   `json:"id" db:"id" gorm:"primaryKey"`
	Name            string `json:"name" db:"name" gorm:"type:varchar(100);not null"`
	Percentage      int    `json:"percentage" db:"percentage" gorm:"not null;default:0"`
	IsCertification bool   `json:"isCertification" db:"is_certification" gorm:"not null;default:false"`
	CategoryID      uint   `json:"categoryId" db:"category_id" gorm:"not null;index:idx_skills_category_id"`
	DisplayOrder    int    `json:"displayOrder" db:"display_order" gorm:"not null;default:0"`
	IsVisible       bool   `json:"isVisible" db:"is_visible" gorm:"not null"`

	Category *SkillCategory `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

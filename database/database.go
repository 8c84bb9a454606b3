package database

import (
	"gorm.io/gorm"
)

// Database aggregates the per-entity repositories over a shared GORM instance.
type Database struct {
	db                 *gorm.DB
	userRepo           *UserRepo
	sessionRepo        *SessionRepo
	projectRepo        *ProjectRepo
	tagRepo            *TagRepo
	projectTagRepo     *ProjectTagRepo
	skillCategoryRepo  *SkillCategoryRepo
	skillRepo          *SkillRepo
	experienceRepo     *ExperienceRepo
	responsibilityRepo *ResponsibilityRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:                 db,
		userRepo:           NewUserRepo(db),
		sessionRepo:        NewSessionRepo(db),
		projectRepo:        NewProjectRepo(db),
		tagRepo:            NewTagRepo(db),
		projectTagRepo:     NewProjectTagRepo(db),
		skillCategoryRepo:  NewSkillCategoryRepo(db),
		skillRepo:          NewSkillRepo(db),
		experienceRepo:     NewExperienceRepo(db),
		responsibilityRepo: NewResponsibilityRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) SessionRepo() *SessionRepo {
	return d.sessionRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

func (d Database) ProjectTagRepo() *ProjectTagRepo {
	return d.projectTagRepo
}

func (d Database) SkillCategoryRepo() *SkillCategoryRepo {
	return d.skillCategoryRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) ExperienceRepo() *ExperienceRepo {
	return d.experienceRepo
}

func (d Database) ResponsibilityRepo() *ResponsibilityRepo {
	return d.responsibilityRepo
}

// WithTx runs fn against a Database bound to a single transaction. Any error
// returned by fn rolls the whole transaction back, so multi-row writes such
// as create-project-then-attach-tags apply all-or-nothing.
func (d Database) WithTx(fn func(tx Database) error) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

package api

import (
	"github.com/harshityadav/portfolio-backend/auth"
	"github.com/harshityadav/portfolio-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, sessions *auth.Manager, cookies cookieSettings) *routeHandlers {
	return &routeHandlers{
		authHandler:           newAuthHandler(db.UserRepo(), sessions, cookies),
		projectHandler:        newProjectHandler(db),
		tagHandler:            newTagHandler(db.TagRepo()),
		skillCategoryHandler:  newSkillCategoryHandler(db.SkillCategoryRepo()),
		skillHandler:          newSkillHandler(db.SkillRepo(), db.SkillCategoryRepo()),
		experienceHandler:     newExperienceHandler(db),
		responsibilityHandler: newResponsibilityHandler(db.ResponsibilityRepo(), db.ExperienceRepo()),
		publicHandler:         newPublicHandler(db),
		contactHandler:        newContactHandler(),
	}
}

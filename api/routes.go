package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// setupRoutes wires the public surface, the session endpoints and the
// admin-gated CRUD groups.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(HTTPLoggingMiddleware(log.Logger))

		// Session endpoints
		r.Post("/api/register", handlers.authHandler.register())
		r.Post("/api/login", handlers.authHandler.login())
		r.Post("/api/logout", handlers.authHandler.logout())

		// Contact form
		r.Post("/api/contact", handlers.contactHandler.submit())

		// Public read surface: visible records only
		r.Get("/api/projects", handlers.publicHandler.listProjects())
		r.Get("/api/tags", handlers.publicHandler.listTags())
		r.Get("/api/skill-categories", handlers.publicHandler.listSkillCategories())
		r.Get("/api/skills", handlers.publicHandler.listSkills())
		r.Get("/api/experiences", handlers.publicHandler.listExperiences())

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)
			r.Get("/api/me", handlers.authHandler.me())
		})

		r.Route("/api/admin", func(r chi.Router) {
			r.Use(authMiddleware.requireAdmin)

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", handlers.projectHandler.listProjects())
				r.Post("/", handlers.projectHandler.createProject())
				r.Get("/{projectID}", handlers.projectHandler.getProject())
				r.Patch("/{projectID}", handlers.projectHandler.updateProject())
				r.Delete("/{projectID}", handlers.projectHandler.deleteProject())
			})

			r.Route("/tags", func(r chi.Router) {
				r.Get("/", handlers.tagHandler.listTags())
				r.Post("/", handlers.tagHandler.createTag())
				r.Get("/{tagID}", handlers.tagHandler.getTag())
				r.Delete("/{tagID}", handlers.tagHandler.deleteTag())
			})

			r.Route("/skill-categories", func(r chi.Router) {
				r.Get("/", handlers.skillCategoryHandler.listSkillCategories())
				r.Post("/", handlers.skillCategoryHandler.createSkillCategory())
				r.Get("/{categoryID}", handlers.skillCategoryHandler.getSkillCategory())
				r.Patch("/{categoryID}", handlers.skillCategoryHandler.updateSkillCategory())
				r.Delete("/{categoryID}", handlers.skillCategoryHandler.deleteSkillCategory())
			})

			r.Route("/skills", func(r chi.Router) {
				r.Get("/", handlers.skillHandler.listSkills())
				r.Post("/", handlers.skillHandler.createSkill())
				r.Get("/{skillID}", handlers.skillHandler.getSkill())
				r.Patch("/{skillID}", handlers.skillHandler.updateSkill())
				r.Delete("/{skillID}", handlers.skillHandler.deleteSkill())
			})

			r.Route("/experiences", func(r chi.Router) {
				r.Get("/", handlers.experienceHandler.listExperiences())
				r.Post("/", handlers.experienceHandler.createExperience())
				r.Get("/{experienceID}", handlers.experienceHandler.getExperience())
				r.Patch("/{experienceID}", handlers.experienceHandler.updateExperience())
				r.Delete("/{experienceID}", handlers.experienceHandler.deleteExperience())
			})

			r.Route("/responsibilities", func(r chi.Router) {
				r.Get("/", handlers.responsibilityHandler.listResponsibilities())
				r.Post("/", handlers.responsibilityHandler.createResponsibility())
				r.Get("/{responsibilityID}", handlers.responsibilityHandler.getResponsibility())
				r.Patch("/{responsibilityID}", handlers.responsibilityHandler.updateResponsibility())
				r.Delete("/{responsibilityID}", handlers.responsibilityHandler.deleteResponsibility())
			})
		})
	})
}

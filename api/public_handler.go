package api

import (
	"net/http"

	"github.com/harshityadav/portfolio-backend/database"
	"github.com/harshityadav/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// publicHandler serves the unauthenticated read surface. It only ever returns
// visible records, so the zero ListFilter is used throughout.
type publicHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
}

func newPublicHandler(db database.Database) publicHandler {
	logger := log.With().Str("handlerName", "publicHandler").Logger()

	return publicHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
	}
}

// listProjects retrieves visible projects with their tags inlined
func (h publicHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.db.ProjectRepo().FindAll(database.ListFilter{})
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		response := make([]ProjectWithTags, 0, len(projects))
		for _, project := range projects {
			tags, err := h.db.ProjectTagRepo().TagsForProject(project.ID)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find", "project tags", err))
				return
			}
			if tags == nil {
				tags = []*models.Tag{}
			}
			response = append(response, ProjectWithTags{Project: *project, Tags: tags})
		}

		h.responder.WriteJSON(w, response)
	}
}

// listTags retrieves all tags
func (h publicHandler) listTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := h.db.TagRepo().FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "tags", err))
			return
		}
		if tags == nil {
			tags = []*models.Tag{}
		}

		h.responder.WriteJSON(w, tags)
	}
}

// listSkillCategories retrieves visible skill categories
func (h publicHandler) listSkillCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.db.SkillCategoryRepo().FindAll(database.ListFilter{})
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill categories", err))
			return
		}
		if categories == nil {
			categories = []*models.SkillCategory{}
		}

		h.responder.WriteJSON(w, categories)
	}
}

// listSkills retrieves visible skills, optionally restricted to one category
// via ?categoryId=
func (h publicHandler) listSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := database.ListFilter{CategoryID: uintQuery(r, "categoryId")}

		skills, err := h.db.SkillRepo().FindAll(filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skills", err))
			return
		}
		if skills == nil {
			skills = []*models.Skill{}
		}

		h.responder.WriteJSON(w, skills)
	}
}

// listExperiences retrieves visible experiences with their responsibility
// lines inlined
func (h publicHandler) listExperiences() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experiences, err := h.db.ExperienceRepo().FindAll(database.ListFilter{})
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "experiences", err))
			return
		}

		response := make([]ExperienceWithResponsibilities, 0, len(experiences))
		for _, experience := range experiences {
			responsibilities, err := h.db.ResponsibilityRepo().FindAll(database.ListFilter{ExperienceID: experience.ID})
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find", "responsibilities", err))
				return
			}
			if responsibilities == nil {
				responsibilities = []*models.Responsibility{}
			}
			response = append(response, ExperienceWithResponsibilities{
				Experience:       *experience,
				Responsibilities: responsibilities,
			})
		}

		h.responder.WriteJSON(w, response)
	}
}

package api

import (
	"encoding/json"
	"net/http"

	"github.com/harshityadav/portfolio-backend/database"
	"github.com/harshityadav/portfolio-backend/errs"
	"github.com/harshityadav/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type experienceHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
}

func newExperienceHandler(db database.Database) experienceHandler {
	logger := log.With().Str("handlerName", "experienceHandler").Logger()

	return experienceHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
	}
}

// ExperienceWithResponsibilities represents an experience entry with its
// responsibility lines inlined
type ExperienceWithResponsibilities struct {
	models.Experience
	Responsibilities []*models.Responsibility `json:"responsibilities"`
}

type responsibilityLine struct {
	Text         string `json:"text"`
	DisplayOrder *int   `json:"displayOrder"`
}

type createExperienceRequest struct {
	Title            string               `json:"title"`
	Period           string               `json:"period"`
	IsPlaceholder    *bool                `json:"isPlaceholder"`
	DisplayOrder     *int                 `json:"displayOrder"`
	IsVisible        *bool                `json:"isVisible"`
	Responsibilities []responsibilityLine `json:"responsibilities"`
}

type updateExperienceRequest struct {
	Title         *string `json:"title"`
	Period        *string `json:"period"`
	IsPlaceholder *bool   `json:"isPlaceholder"`
	DisplayOrder  *int    `json:"displayOrder"`
	IsVisible     *bool   `json:"isVisible"`
}

// withResponsibilities attaches the responsibility lines to an experience row.
func (h experienceHandler) withResponsibilities(db database.Database, experience models.Experience) (ExperienceWithResponsibilities, error) {
	responsibilities, err := db.ResponsibilityRepo().FindAll(database.ListFilter{ExperienceID: experience.ID})
	if err != nil {
		return ExperienceWithResponsibilities{}, err
	}
	if responsibilities == nil {
		responsibilities = []*models.Responsibility{}
	}
	return ExperienceWithResponsibilities{Experience: experience, Responsibilities: responsibilities}, nil
}

// listExperiences retrieves experiences ordered by display order
func (h experienceHandler) listExperiences() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := database.ListFilter{IncludeHidden: boolQuery(r, "includeHidden")}

		experiences, err := h.db.ExperienceRepo().FindAll(filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "experiences", err))
			return
		}

		response := make([]ExperienceWithResponsibilities, 0, len(experiences))
		for _, experience := range experiences {
			withResponsibilities, err := h.withResponsibilities(h.db, *experience)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find", "responsibilities", err))
				return
			}
			response = append(response, withResponsibilities)
		}

		h.responder.WriteJSON(w, response)
	}
}

// getExperience retrieves a specific experience by ID with its responsibilities
func (h experienceHandler) getExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := idParam(r, "experienceID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		experience, err := h.db.ExperienceRepo().FindByID(experienceID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "experience", err))
			return
		}
		if experience == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("experience not found"))
			return
		}

		response, err := h.withResponsibilities(h.db, *experience)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "responsibilities", err))
			return
		}

		h.responder.WriteJSON(w, response)
	}
}

// createExperience creates a new experience entry and its responsibility
// lines in the same transaction.
func (h experienceHandler) createExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createExperienceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Title == "" {
			h.responder.WriteError(w, errs.NewValidationError("title", "title is required"))
			return
		}
		if req.Period == "" {
			h.responder.WriteError(w, errs.NewValidationError("period", "period is required"))
			return
		}
		for _, line := range req.Responsibilities {
			if line.Text == "" {
				h.responder.WriteError(w, errs.NewValidationError("responsibilities", "responsibility text is required"))
				return
			}
		}

		experience := models.Experience{
			Title:     req.Title,
			Period:    req.Period,
			IsVisible: true,
		}
		if req.IsPlaceholder != nil {
			experience.IsPlaceholder = *req.IsPlaceholder
		}
		if req.DisplayOrder != nil {
			experience.DisplayOrder = *req.DisplayOrder
		}
		if req.IsVisible != nil {
			experience.IsVisible = *req.IsVisible
		}

		err := h.db.WithTx(func(tx database.Database) error {
			if err := tx.ExperienceRepo().Add(&experience); err != nil {
				return wrapDatabaseError("create", "experience", err)
			}
			for i, line := range req.Responsibilities {
				responsibility := models.Responsibility{
					Text:         line.Text,
					ExperienceID: experience.ID,
					DisplayOrder: i,
				}
				if line.DisplayOrder != nil {
					responsibility.DisplayOrder = *line.DisplayOrder
				}
				if err := tx.ResponsibilityRepo().Add(&responsibility); err != nil {
					return wrapDatabaseError("create", "responsibility", err)
				}
			}
			return nil
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		response, err := h.withResponsibilities(h.db, experience)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "responsibilities", err))
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, response)
	}
}

// updateExperience merges the provided fields into an existing experience
func (h experienceHandler) updateExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := idParam(r, "experienceID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req updateExperienceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		experience, err := h.db.ExperienceRepo().FindByID(experienceID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "experience", err))
			return
		}
		if experience == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("experience not found"))
			return
		}

		if req.Title != nil {
			experience.Title = *req.Title
		}
		if req.Period != nil {
			experience.Period = *req.Period
		}
		if req.IsPlaceholder != nil {
			experience.IsPlaceholder = *req.IsPlaceholder
		}
		if req.DisplayOrder != nil {
			experience.DisplayOrder = *req.DisplayOrder
		}
		if req.IsVisible != nil {
			experience.IsVisible = *req.IsVisible
		}

		if err := h.db.ExperienceRepo().Update(experience); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "experience", err))
			return
		}

		response, err := h.withResponsibilities(h.db, *experience)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "responsibilities", err))
			return
		}

		h.responder.WriteJSON(w, response)
	}
}

// deleteExperience deletes an experience by ID; its responsibilities cascade
// at the schema level
func (h experienceHandler) deleteExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := idParam(r, "experienceID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.db.ExperienceRepo().Delete(experienceID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "experience", err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

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

type responsibilityHandler struct {
	responder          Responder
	logger             zerolog.Logger
	responsibilityRepo *database.ResponsibilityRepo
	experienceRepo     *database.ExperienceRepo
}

func newResponsibilityHandler(responsibilityRepo *database.ResponsibilityRepo, experienceRepo *database.ExperienceRepo) responsibilityHandler {
	logger := log.With().Str("handlerName", "responsibilityHandler").Logger()

	return responsibilityHandler{
		responder:          NewResponder(logger),
		logger:             logger,
		responsibilityRepo: responsibilityRepo,
		experienceRepo:     experienceRepo,
	}
}

type createResponsibilityRequest struct {
	Text         string `json:"text"`
	ExperienceID uint   `json:"experienceId"`
	DisplayOrder *int   `json:"displayOrder"`
}

type updateResponsibilityRequest struct {
	Text         *string `json:"text"`
	DisplayOrder *int    `json:"displayOrder"`
}

// listResponsibilities retrieves responsibilities ordered by display order,
// optionally restricted to one experience via ?experienceId=
func (h responsibilityHandler) listResponsibilities() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := database.ListFilter{ExperienceID: uintQuery(r, "experienceId")}

		responsibilities, err := h.responsibilityRepo.FindAll(filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "responsibilities", err))
			return
		}
		if responsibilities == nil {
			responsibilities = []*models.Responsibility{}
		}

		h.responder.WriteJSON(w, responsibilities)
	}
}

// getResponsibility retrieves a specific responsibility by ID
func (h responsibilityHandler) getResponsibility() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responsibilityID, err := idParam(r, "responsibilityID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		responsibility, err := h.responsibilityRepo.FindByID(responsibilityID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "responsibility", err))
			return
		}
		if responsibility == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("responsibility not found"))
			return
		}

		h.responder.WriteJSON(w, responsibility)
	}
}

// createResponsibility creates a new responsibility under an existing experience
func (h responsibilityHandler) createResponsibility() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createResponsibilityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Text == "" {
			h.responder.WriteError(w, errs.NewValidationError("text", "text is required"))
			return
		}
		if req.ExperienceID == 0 {
			h.responder.WriteError(w, errs.NewValidationError("experienceId", "experienceId is required"))
			return
		}

		experience, err := h.experienceRepo.FindByID(req.ExperienceID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "experience", err))
			return
		}
		if experience == nil {
			h.responder.WriteError(w, errs.NewValidationError("experienceId", "experience does not exist"))
			return
		}

		responsibility := models.Responsibility{
			Text:         req.Text,
			ExperienceID: req.ExperienceID,
		}
		if req.DisplayOrder != nil {
			responsibility.DisplayOrder = *req.DisplayOrder
		}

		if err := h.responsibilityRepo.Add(&responsibility); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "responsibility", err))
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, responsibility)
	}
}

// updateResponsibility merges the provided fields into an existing responsibility
func (h responsibilityHandler) updateResponsibility() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responsibilityID, err := idParam(r, "responsibilityID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req updateResponsibilityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		responsibility, err := h.responsibilityRepo.FindByID(responsibilityID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "responsibility", err))
			return
		}
		if responsibility == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("responsibility not found"))
			return
		}

		if req.Text != nil {
			responsibility.Text = *req.Text
		}
		if req.DisplayOrder != nil {
			responsibility.DisplayOrder = *req.DisplayOrder
		}

		if err := h.responsibilityRepo.Update(responsibility); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "responsibility", err))
			return
		}

		h.responder.WriteJSON(w, responsibility)
	}
}

// deleteResponsibility deletes a responsibility by ID
func (h responsibilityHandler) deleteResponsibility() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responsibilityID, err := idParam(r, "responsibilityID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.responsibilityRepo.Delete(responsibilityID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "responsibility", err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

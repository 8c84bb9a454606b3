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

type skillHandler struct {
	responder    Responder
	logger       zerolog.Logger
	skillRepo    *database.SkillRepo
	categoryRepo *database.SkillCategoryRepo
}

func newSkillHandler(skillRepo *database.SkillRepo, categoryRepo *database.SkillCategoryRepo) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		skillRepo:    skillRepo,
		categoryRepo: categoryRepo,
	}
}

type createSkillRequest struct {
	Name            string `json:"name"`
	Percentage      *int   `json:"percentage"`
	IsCertification *bool  `json:"isCertification"`
	CategoryID      uint   `json:"categoryId"`
	DisplayOrder    *int   `json:"displayOrder"`
	IsVisible       *bool  `json:"isVisible"`
}

type updateSkillRequest struct {
	Name            *string `json:"name"`
	Percentage      *int    `json:"percentage"`
	IsCertification *bool   `json:"isCertification"`
	CategoryID      *uint   `json:"categoryId"`
	DisplayOrder    *int    `json:"displayOrder"`
	IsVisible       *bool   `json:"isVisible"`
}

// validatePercentage bounds the proficiency score to 0-100.
func validatePercentage(percentage int) error {
	if percentage < 0 || percentage > 100 {
		return errs.NewValidationError("percentage", "percentage must be between 0 and 100")
	}
	return nil
}

// listSkills retrieves skills ordered by display order, optionally restricted
// to one category via ?categoryId=
func (h skillHandler) listSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := database.ListFilter{
			IncludeHidden: boolQuery(r, "includeHidden"),
			CategoryID:    uintQuery(r, "categoryId"),
		}

		skills, err := h.skillRepo.FindAll(filter)
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

// getSkill retrieves a specific skill by ID
func (h skillHandler) getSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := idParam(r, "skillID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skill, err := h.skillRepo.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill", err))
			return
		}
		if skill == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("skill not found"))
			return
		}

		h.responder.WriteJSON(w, skill)
	}
}

// createSkill creates a new skill under an existing category
func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createSkillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Name == "" {
			h.responder.WriteError(w, errs.NewValidationError("name", "name is required"))
			return
		}
		if req.CategoryID == 0 {
			h.responder.WriteError(w, errs.NewValidationError("categoryId", "categoryId is required"))
			return
		}
		if req.Percentage != nil {
			if err := validatePercentage(*req.Percentage); err != nil {
				h.responder.WriteError(w, err)
				return
			}
		}

		category, err := h.categoryRepo.FindByID(req.CategoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill category", err))
			return
		}
		if category == nil {
			h.responder.WriteError(w, errs.NewValidationError("categoryId", "category does not exist"))
			return
		}

		skill := models.Skill{
			Name:       req.Name,
			CategoryID: req.CategoryID,
			IsVisible:  true,
		}
		if req.Percentage != nil {
			skill.Percentage = *req.Percentage
		}
		if req.IsCertification != nil {
			skill.IsCertification = *req.IsCertification
		}
		if req.DisplayOrder != nil {
			skill.DisplayOrder = *req.DisplayOrder
		}
		if req.IsVisible != nil {
			skill.IsVisible = *req.IsVisible
		}

		if err := h.skillRepo.Add(&skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "skill", err))
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, skill)
	}
}

// updateSkill merges the provided fields into an existing skill
func (h skillHandler) updateSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := idParam(r, "skillID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req updateSkillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Percentage != nil {
			if err := validatePercentage(*req.Percentage); err != nil {
				h.responder.WriteError(w, err)
				return
			}
		}

		skill, err := h.skillRepo.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill", err))
			return
		}
		if skill == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("skill not found"))
			return
		}

		if req.CategoryID != nil {
			category, err := h.categoryRepo.FindByID(*req.CategoryID)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find", "skill category", err))
				return
			}
			if category == nil {
				h.responder.WriteError(w, errs.NewValidationError("categoryId", "category does not exist"))
				return
			}
			skill.CategoryID = *req.CategoryID
		}

		if req.Name != nil {
			skill.Name = *req.Name
		}
		if req.Percentage != nil {
			skill.Percentage = *req.Percentage
		}
		if req.IsCertification != nil {
			skill.IsCertification = *req.IsCertification
		}
		if req.DisplayOrder != nil {
			skill.DisplayOrder = *req.DisplayOrder
		}
		if req.IsVisible != nil {
			skill.IsVisible = *req.IsVisible
		}

		if err := h.skillRepo.Update(skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "skill", err))
			return
		}

		h.responder.WriteJSON(w, skill)
	}
}

// deleteSkill deletes a skill by ID
func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := idParam(r, "skillID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.skillRepo.Delete(skillID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "skill", err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

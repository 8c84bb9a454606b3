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

type skillCategoryHandler struct {
	responder    Responder
	logger       zerolog.Logger
	categoryRepo *database.SkillCategoryRepo
}

func newSkillCategoryHandler(categoryRepo *database.SkillCategoryRepo) skillCategoryHandler {
	logger := log.With().Str("handlerName", "skillCategoryHandler").Logger()

	return skillCategoryHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		categoryRepo: categoryRepo,
	}
}

type createSkillCategoryRequest struct {
	Title        string `json:"title"`
	Icon         string `json:"icon"`
	DisplayOrder *int   `json:"displayOrder"`
	IsVisible    *bool  `json:"isVisible"`
}

type updateSkillCategoryRequest struct {
	Title        *string `json:"title"`
	Icon         *string `json:"icon"`
	DisplayOrder *int    `json:"displayOrder"`
	IsVisible    *bool   `json:"isVisible"`
}

// listSkillCategories retrieves skill categories ordered by display order
func (h skillCategoryHandler) listSkillCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := database.ListFilter{IncludeHidden: boolQuery(r, "includeHidden")}

		categories, err := h.categoryRepo.FindAll(filter)
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

// getSkillCategory retrieves a specific skill category by ID
func (h skillCategoryHandler) getSkillCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := idParam(r, "categoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		category, err := h.categoryRepo.FindByID(categoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill category", err))
			return
		}
		if category == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("skill category not found"))
			return
		}

		h.responder.WriteJSON(w, category)
	}
}

// createSkillCategory creates a new skill category
func (h skillCategoryHandler) createSkillCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createSkillCategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Title == "" {
			h.responder.WriteError(w, errs.NewValidationError("title", "title is required"))
			return
		}
		if req.Icon == "" {
			h.responder.WriteError(w, errs.NewValidationError("icon", "icon is required"))
			return
		}

		category := models.SkillCategory{
			Title:     req.Title,
			Icon:      req.Icon,
			IsVisible: true,
		}
		if req.DisplayOrder != nil {
			category.DisplayOrder = *req.DisplayOrder
		}
		if req.IsVisible != nil {
			category.IsVisible = *req.IsVisible
		}

		if err := h.categoryRepo.Add(&category); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "skill category", err))
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, category)
	}
}

// updateSkillCategory merges the provided fields into an existing skill category
func (h skillCategoryHandler) updateSkillCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := idParam(r, "categoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req updateSkillCategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		category, err := h.categoryRepo.FindByID(categoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill category", err))
			return
		}
		if category == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("skill category not found"))
			return
		}

		if req.Title != nil {
			category.Title = *req.Title
		}
		if req.Icon != nil {
			category.Icon = *req.Icon
		}
		if req.DisplayOrder != nil {
			category.DisplayOrder = *req.DisplayOrder
		}
		if req.IsVisible != nil {
			category.IsVisible = *req.IsVisible
		}

		if err := h.categoryRepo.Update(category); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "skill category", err))
			return
		}

		h.responder.WriteJSON(w, category)
	}
}

// deleteSkillCategory deletes a skill category by ID; its skills cascade at the schema level
func (h skillCategoryHandler) deleteSkillCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := idParam(r, "categoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.categoryRepo.Delete(categoryID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "skill category", err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

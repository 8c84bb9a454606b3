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

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
}

func newProjectHandler(db database.Database) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
	}
}

// ProjectWithTags represents a project with its tag set inlined
type ProjectWithTags struct {
	models.Project
	Tags []*models.Tag `json:"tags"`
}

type createProjectRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Image        string  `json:"image"`
	DemoURL      *string `json:"demoUrl"`
	GithubURL    *string `json:"githubUrl"`
	DisplayOrder *int    `json:"displayOrder"`
	IsVisible    *bool   `json:"isVisible"`
	Tags         []uint  `json:"tags"`
}

type updateProjectRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Image        *string `json:"image"`
	DemoURL      *string `json:"demoUrl"`
	GithubURL    *string `json:"githubUrl"`
	DisplayOrder *int    `json:"displayOrder"`
	IsVisible    *bool   `json:"isVisible"`
	Tags         *[]uint `json:"tags"`
}

// withTags attaches the tag set to a project row.
func (h projectHandler) withTags(db database.Database, project models.Project) (ProjectWithTags, error) {
	tags, err := db.ProjectTagRepo().TagsForProject(project.ID)
	if err != nil {
		return ProjectWithTags{}, err
	}
	if tags == nil {
		tags = []*models.Tag{}
	}
	return ProjectWithTags{Project: project, Tags: tags}, nil
}

// listProjects retrieves projects ordered by display order, hidden ones included on request
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := database.ListFilter{IncludeHidden: boolQuery(r, "includeHidden")}

		projects, err := h.db.ProjectRepo().FindAll(filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		response := make([]ProjectWithTags, 0, len(projects))
		for _, project := range projects {
			withTags, err := h.withTags(h.db, *project)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find", "project tags", err))
				return
			}
			response = append(response, withTags)
		}

		h.responder.WriteJSON(w, response)
	}
}

// getProject retrieves a specific project by ID with its tags
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := idParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.db.ProjectRepo().FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		response, err := h.withTags(h.db, *project)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project tags", err))
			return
		}

		h.responder.WriteJSON(w, response)
	}
}

// createProject creates a new project and attaches the requested tags in the
// same transaction, so a failed tag write rolls the project back too.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Title == "" {
			h.responder.WriteError(w, errs.NewValidationError("title", "title is required"))
			return
		}
		if req.Description == "" {
			h.responder.WriteError(w, errs.NewValidationError("description", "description is required"))
			return
		}
		if req.Image == "" {
			h.responder.WriteError(w, errs.NewValidationError("image", "image is required"))
			return
		}

		project := models.Project{
			Title:       req.Title,
			Description: req.Description,
			Image:       req.Image,
			DemoURL:     req.DemoURL,
			GithubURL:   req.GithubURL,
			IsVisible:   true,
		}
		if req.DisplayOrder != nil {
			project.DisplayOrder = *req.DisplayOrder
		}
		if req.IsVisible != nil {
			project.IsVisible = *req.IsVisible
		}

		// Diffing against an empty set collapses duplicate ids in the request,
		// which would otherwise trip the unique-pair constraint.
		tagIDs, _ := diffIDSets(nil, req.Tags)

		err := h.db.WithTx(func(tx database.Database) error {
			if err := tx.ProjectRepo().Add(&project); err != nil {
				return wrapDatabaseError("create", "project", err)
			}
			for _, tagID := range tagIDs {
				if err := tx.ProjectTagRepo().AddTagToProject(project.ID, tagID); err != nil {
					return wrapDatabaseError("link", "project tag", err)
				}
			}
			return nil
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		response, err := h.withTags(h.db, project)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project tags", err))
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, response)
	}
}

// updateProject merges the provided fields into an existing project. When the
// request carries a tag set, only the delta against the current set is written.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := idParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req updateProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		var response ProjectWithTags
		err = h.db.WithTx(func(tx database.Database) error {
			project, err := tx.ProjectRepo().FindByID(projectID)
			if err != nil {
				return wrapDatabaseError("find", "project", err)
			}
			if project == nil {
				return errs.NewNotFoundError("project not found")
			}

			if req.Title != nil {
				project.Title = *req.Title
			}
			if req.Description != nil {
				project.Description = *req.Description
			}
			if req.Image != nil {
				project.Image = *req.Image
			}
			if req.DemoURL != nil {
				project.DemoURL = req.DemoURL
			}
			if req.GithubURL != nil {
				project.GithubURL = req.GithubURL
			}
			if req.DisplayOrder != nil {
				project.DisplayOrder = *req.DisplayOrder
			}
			if req.IsVisible != nil {
				project.IsVisible = *req.IsVisible
			}

			if err := tx.ProjectRepo().Update(project); err != nil {
				return wrapDatabaseError("update", "project", err)
			}

			if req.Tags != nil {
				current, err := tx.ProjectTagRepo().TagsForProject(projectID)
				if err != nil {
					return wrapDatabaseError("find", "project tags", err)
				}
				currentIDs := make([]uint, 0, len(current))
				for _, tag := range current {
					currentIDs = append(currentIDs, tag.ID)
				}

				toAdd, toRemove := diffIDSets(currentIDs, *req.Tags)
				for _, tagID := range toAdd {
					if err := tx.ProjectTagRepo().AddTagToProject(projectID, tagID); err != nil {
						return wrapDatabaseError("link", "project tag", err)
					}
				}
				for _, tagID := range toRemove {
					if err := tx.ProjectTagRepo().RemoveTagFromProject(projectID, tagID); err != nil {
						return wrapDatabaseError("unlink", "project tag", err)
					}
				}
			}

			response, err = h.withTags(tx, *project)
			if err != nil {
				return wrapDatabaseError("find", "project tags", err)
			}
			return nil
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, response)
	}
}

// deleteProject deletes a project by ID. The response is 204 whether or not
// the row existed; project_tags rows cascade at the schema level.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := idParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.db.ProjectRepo().Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

package api

import (
	"net/http"

	"github.com/N1ghtHunter/portfolio-backend/database"
	"github.com/N1ghtHunter/portfolio-backend/errs"
	"github.com/N1ghtHunter/portfolio-backend/models"
	"github.com/N1ghtHunter/portfolio-backend/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	store       *storage.AssetStore
}

func newProjectHandler(projectRepo *database.ProjectRepo, store *storage.AssetStore) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		store:       store,
	}
}

// getAllProjects returns every project as an unordered snapshot.
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}

		h.responder.WriteJSON(w, projects)
	}
}

// getProject returns a single project by id.
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		if project == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject stores an optional image upload and inserts a new project
// built from the form fields.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		files, err := storeUploadedFiles(r, h.store)
		if err != nil {
			h.logger.Error().Err(err).Msg("upload failed")
			h.responder.WriteError(w, err)
			return
		}

		title := r.FormValue("title")
		if title == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("title is required"))
			return
		}

		project := models.Project{
			Title:       title,
			Description: r.FormValue("description"),
			SourceCode:  r.FormValue("source_code"),
			LiveDemo:    r.FormValue("live_demo"),
		}
		if files.ImagePath != "" {
			project.ImagePath = &files.ImagePath
		}

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create project", "project", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, project)
	}
}

// updateProject replaces every text field with the submitted values. The image
// path only changes when the request carried a new image file; otherwise the
// prior value stays, and the prior file is left on disk either way.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		files, err := storeUploadedFiles(r, h.store)
		if err != nil {
			h.logger.Error().Err(err).Msg("upload failed")
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		if project == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		project.Title = r.FormValue("title")
		project.Description = r.FormValue("description")
		project.SourceCode = r.FormValue("source_code")
		project.LiveDemo = r.FormValue("live_demo")
		if files.ImagePath != "" {
			project.ImagePath = &files.ImagePath
		}

		if err := h.projectRepo.Update(project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update project", "project", err))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// deleteProject removes the record and echoes it back. The project's image
// file stays on disk.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projectRepo.Delete(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete project", "project", err))
			return
		}

		if project == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

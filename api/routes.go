package api

import (
	"net/http"

	"github.com/N1ghtHunter/portfolio-backend/storage"
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires every endpoint. Mutating routes sit behind the auth
// middleware; reads and static assets are public.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, store *storage.AssetStore) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			w.Write([]byte("Server is running"))
		})

		// Public reads
		r.Get("/api/projects", handlers.projectHandler.getAllProjects())
		r.Get("/api/projects/{projectID}", handlers.projectHandler.getProject())
		r.Get("/api/cv", handlers.cvHandler.downloadCV())

		// Guarded mutations
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Post("/api/projects", handlers.projectHandler.createProject())
			r.Put("/api/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/api/projects/{projectID}", handlers.projectHandler.deleteProject())
			r.Post("/api/cv", handlers.cvHandler.uploadCV())
		})
	})

	// Uploaded assets are reachable directly under the same prefix their
	// stored paths use.
	fileServer := http.StripPrefix(storage.PublicPrefix+"/", http.FileServer(http.Dir(store.Root())))
	r.Get(storage.PublicPrefix+"/*", fileServer.ServeHTTP)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "404: Page not found", http.StatusNotFound)
	})
}

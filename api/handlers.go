package api

import (
	"github.com/N1ghtHunter/portfolio-backend/database"
	"github.com/N1ghtHunter/portfolio-backend/storage"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, store *storage.AssetStore) *routeHandlers {
	return &routeHandlers{
		projectHandler: newProjectHandler(database.ProjectRepo(), store),
		cvHandler:      newCVHandler(store),
	}
}

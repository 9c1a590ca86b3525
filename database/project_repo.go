package database

import (
	"errors"

	"github.com/N1ghtHunter/portfolio-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects from the database. The order is whatever the
// store hands back; callers get an empty slice when there are none.
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	projects := make([]*models.Project, 0)
	err := r.db.Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or nil when no such record exists.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database, assigning an id when the caller
// left it unset.
func (r *ProjectRepo) Add(project *models.Project) error {
	project.Prepare()
	return r.db.Create(project).Error
}

// Update updates an existing project in the database
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project by id and returns the deleted record, or nil when
// no such record exists.
func (r *ProjectRepo) Delete(id uuid.UUID) (*models.Project, error) {
	project, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, nil
	}

	if err := r.db.Delete(&models.Project{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return project, nil
}

package database

import (
	"testing"

	"github.com/N1ghtHunter/portfolio-backend/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRepo(t *testing.T) *ProjectRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return NewProjectRepo(db)
}

func TestAddAssignsID(t *testing.T) {
	repo := newTestRepo(t)

	project := &models.Project{Title: "First"}
	require.NoError(t, repo.Add(project))
	assert.NotEqual(t, uuid.Nil, project.ID)

	found, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "First", found.Title)
}

func TestFindAllEmpty(t *testing.T) {
	repo := newTestRepo(t)

	projects, err := repo.FindAll()
	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
}

func TestFindByIDMissing(t *testing.T) {
	repo := newTestRepo(t)

	found, err := repo.FindByID(uuid.New())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUpdatePersistsChanges(t *testing.T) {
	repo := newTestRepo(t)

	project := &models.Project{Title: "Before"}
	require.NoError(t, repo.Add(project))

	imagePath := "/public/uploads/images/abc.png"
	project.Title = "After"
	project.ImagePath = &imagePath
	require.NoError(t, repo.Update(project))

	found, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "After", found.Title)
	require.NotNil(t, found.ImagePath)
	assert.Equal(t, imagePath, *found.ImagePath)
}

func TestDeleteReturnsRecordThenNil(t *testing.T) {
	repo := newTestRepo(t)

	project := &models.Project{Title: "Doomed"}
	require.NoError(t, repo.Add(project))

	deleted, err := repo.Delete(project.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, project.ID, deleted.ID)

	projects, err := repo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, projects)

	deleted, err = repo.Delete(project.ID)
	require.NoError(t, err)
	assert.Nil(t, deleted)
}

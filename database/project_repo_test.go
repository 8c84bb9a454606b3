package database

import (
	"testing"

	"github.com/harshityadav/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProject(t *testing.T, database Database, title string, order int, visible bool) *models.Project {
	t.Helper()
	project := &models.Project{
		Title:        title,
		Description:  title + " description",
		Image:        "/img/" + title + ".png",
		DisplayOrder: order,
		IsVisible:    visible,
	}
	require.NoError(t, database.ProjectRepo().Add(project))
	return project
}

func TestProjectRepoFindAllVisibilityAndOrder(t *testing.T) {
	database := newTestDatabase(t)

	seedProject(t, database, "second", 2, true)
	seedProject(t, database, "hidden", 1, false)
	seedProject(t, database, "first", 0, true)

	visible, err := database.ProjectRepo().FindAll(ListFilter{})
	require.NoError(t, err)
	require.Len(t, visible, 2)
	assert.Equal(t, "first", visible[0].Title)
	assert.Equal(t, "second", visible[1].Title)

	all, err := database.ProjectRepo().FindAll(ListFilter{IncludeHidden: true})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "first", all[0].Title)
	assert.Equal(t, "hidden", all[1].Title)
	assert.Equal(t, "second", all[2].Title)
}

func TestProjectRepoFindByIDAbsent(t *testing.T) {
	database := newTestDatabase(t)

	project, err := database.ProjectRepo().FindByID(999)
	require.NoError(t, err)
	assert.Nil(t, project)
}

func TestProjectRepoUpdate(t *testing.T) {
	database := newTestDatabase(t)
	project := seedProject(t, database, "draft", 0, false)

	project.Title = "published"
	project.IsVisible = true
	require.NoError(t, database.ProjectRepo().Update(project))

	reloaded, err := database.ProjectRepo().FindByID(project.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.Equal(t, "published", reloaded.Title)
	assert.True(t, reloaded.IsVisible)
}

func TestProjectRepoDeleteCascadesTagLinks(t *testing.T) {
	database := newTestDatabase(t)

	project := seedProject(t, database, "tagged", 0, true)
	tag := &models.Tag{Name: "go"}
	require.NoError(t, database.TagRepo().Add(tag))
	require.NoError(t, database.ProjectTagRepo().AddTagToProject(project.ID, tag.ID))

	require.NoError(t, database.ProjectRepo().Delete(project.ID))

	tags, err := database.ProjectTagRepo().TagsForProject(project.ID)
	require.NoError(t, err)
	assert.Empty(t, tags)

	// The tag itself outlives the project.
	remaining, err := database.TagRepo().FindByID(tag.ID)
	require.NoError(t, err)
	assert.NotNil(t, remaining)
}

func TestProjectRepoDeleteAbsentIsNoError(t *testing.T) {
	database := newTestDatabase(t)
	require.NoError(t, database.ProjectRepo().Delete(42))
}

package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/harshityadav/portfolio-backend/database"
	"github.com/harshityadav/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestServer spins up the full router over an in-memory database and
// returns a client with a cookie jar, so session cookies flow like a browser.
func newTestServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Project{},
		&models.Tag{},
		&models.ProjectTag{},
		&models.SkillCategory{},
		&models.Skill{},
		&models.Experience{},
		&models.Responsibility{},
	))

	server := httptest.NewServer(newRouter(database.New(db)))
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return server, &http.Client{Jar: jar}
}

func doJSON(t *testing.T, client *http.Client, method, url string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, payload
}

// registerAdmin bootstraps the first account, which is auto-promoted to admin
// and logged in via the session cookie.
func registerAdmin(t *testing.T, client *http.Client, baseURL string) {
	t.Helper()

	resp, body := doJSON(t, client, http.MethodPost, baseURL+"/api/register", map[string]any{
		"username": "admin",
		"password": "correct horse",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
}

func TestRegisterBootstrapsFirstAdmin(t *testing.T) {
	server, client := newTestServer(t)

	resp, body := doJSON(t, client, http.MethodPost, server.URL+"/api/register", map[string]any{
		"username": "admin",
		"password": "correct horse",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var user models.PublicUser
	require.NoError(t, json.Unmarshal(body, &user))
	assert.Equal(t, "admin", user.Username)
	assert.True(t, user.IsAdmin)
	assert.NotContains(t, string(body), "correct horse")

	// The bootstrap response set a session cookie; /api/me works right away.
	resp, body = doJSON(t, client, http.MethodGet, server.URL+"/api/me", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var me models.PublicUser
	require.NoError(t, json.Unmarshal(body, &me))
	assert.Equal(t, "admin", me.Username)
}

func TestRegisterRequiresAdminAfterBootstrap(t *testing.T) {
	server, client := newTestServer(t)
	registerAdmin(t, client, server.URL)

	// An anonymous client cannot create further accounts.
	anonJar, err := cookiejar.New(nil)
	require.NoError(t, err)
	anon := &http.Client{Jar: anonJar}

	resp, body := doJSON(t, anon, http.MethodPost, server.URL+"/api/register", map[string]any{
		"username": "intruder",
		"password": "whatever",
	})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	var errResp map[string]string
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "Unauthorized", errResp["error"])

	// The logged-in admin can.
	resp, _ = doJSON(t, client, http.MethodPost, server.URL+"/api/register", map[string]any{
		"username": "editor",
		"password": "whatever",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	server, client := newTestServer(t)
	registerAdmin(t, client, server.URL)

	resp, body := doJSON(t, client, http.MethodPost, server.URL+"/api/register", map[string]any{
		"username": "admin",
		"password": "another",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	var errResp map[string]string
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "Username already exists", errResp["error"])
}

func TestLoginWrongPassword(t *testing.T) {
	server, client := newTestServer(t)
	registerAdmin(t, client, server.URL)

	freshJar, err := cookiejar.New(nil)
	require.NoError(t, err)
	fresh := &http.Client{Jar: freshJar}

	for _, creds := range []map[string]any{
		{"username": "admin", "password": "wrong"},
		{"username": "no-such-user", "password": "wrong"},
	} {
		resp, body := doJSON(t, fresh, http.MethodPost, server.URL+"/api/login", creds)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		// Unknown usernames and bad passwords are indistinguishable.
		var errResp map[string]string
		require.NoError(t, json.Unmarshal(body, &errResp))
		assert.Equal(t, map[string]string{"error": "Invalid username or password"}, errResp)
	}
}

func TestLoginAndLogoutLifecycle(t *testing.T) {
	server, client := newTestServer(t)
	registerAdmin(t, client, server.URL)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	fresh := &http.Client{Jar: jar}

	resp, body := doJSON(t, fresh, http.MethodPost, server.URL+"/api/login", map[string]any{
		"username": "admin",
		"password": "correct horse",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, _ = doJSON(t, fresh, http.MethodGet, server.URL+"/api/me", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, fresh, http.MethodPost, server.URL+"/api/logout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Logged out successfully")

	resp, _ = doJSON(t, fresh, http.MethodGet, server.URL+"/api/me", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Logging out again is harmless.
	resp, _ = doJSON(t, fresh, http.MethodPost, server.URL+"/api/logout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminRoutesRejectAnonymousAndNonAdmin(t *testing.T) {
	server, client := newTestServer(t)
	registerAdmin(t, client, server.URL)

	// Anonymous: 401.
	anonJar, err := cookiejar.New(nil)
	require.NoError(t, err)
	anon := &http.Client{Jar: anonJar}

	resp, _ := doJSON(t, anon, http.MethodGet, server.URL+"/api/admin/projects", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Authenticated non-admin: 403.
	resp, _ = doJSON(t, client, http.MethodPost, server.URL+"/api/register", map[string]any{
		"username": "viewer",
		"password": "view only",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	viewerJar, err := cookiejar.New(nil)
	require.NoError(t, err)
	viewer := &http.Client{Jar: viewerJar}

	resp, _ = doJSON(t, viewer, http.MethodPost, server.URL+"/api/login", map[string]any{
		"username": "viewer",
		"password": "view only",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, viewer, http.MethodGet, server.URL+"/api/admin/projects", nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestProjectCreateWithTags(t *testing.T) {
	server, client := newTestServer(t)
	registerAdmin(t, client, server.URL)

	resp, body := doJSON(t, client, http.MethodPost, server.URL+"/api/admin/tags", map[string]any{"name": "go"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var goTag models.Tag
	require.NoError(t, json.Unmarshal(body, &goTag))

	resp, body = doJSON(t, client, http.MethodPost, server.URL+"/api/admin/tags", map[string]any{"name": "chi"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var chiTag models.Tag
	require.NoError(t, json.Unmarshal(body, &chiTag))

	resp, body = doJSON(t, client, http.MethodPost, server.URL+"/api/admin/projects", map[string]any{
		"title":       "Portfolio backend",
		"description": "REST API for the portfolio site",
		"image":       "/img/portfolio.png",
		"tags":        []uint{goTag.ID, chiTag.ID},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var created ProjectWithTags
	require.NoError(t, json.Unmarshal(body, &created))
	require.NotZero(t, created.ID)
	require.Len(t, created.Tags, 2)
	assert.Equal(t, "chi", created.Tags[0].Name)
	assert.Equal(t, "go", created.Tags[1].Name)
	assert.True(t, created.IsVisible)

	// Fetching the project back returns the same tag set.
	url := fmt.Sprintf("%s/api/admin/projects/%d", server.URL, created.ID)
	resp, body = doJSON(t, client, http.MethodGet, url, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched ProjectWithTags
	require.NoError(t, json.Unmarshal(body, &fetched))
	require.Len(t, fetched.Tags, 2)
	assert.ElementsMatch(t, []uint{goTag.ID, chiTag.ID}, []uint{fetched.Tags[0].ID, fetched.Tags[1].ID})

	// The public surface shows the project with its tags.
	resp, body = doJSON(t, client, http.MethodGet, server.URL+"/api/projects", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var public []ProjectWithTags
	require.NoError(t, json.Unmarshal(body, &public))
	require.Len(t, public, 1)
	assert.Len(t, public[0].Tags, 2)
}

func TestProjectCreateCollapsesDuplicateTagIDs(t *testing.T) {
	server, client := newTestServer(t)
	registerAdmin(t, client, server.URL)

	resp, body := doJSON(t, client, http.MethodPost, server.URL+"/api/admin/tags", map[string]any{"name": "go"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var tag models.Tag
	require.NoError(t, json.Unmarshal(body, &tag))

	resp, body = doJSON(t, client, http.MethodPost, server.URL+"/api/admin/projects", map[string]any{
		"title":       "Repeated tags",
		"description": "same tag id sent twice",
		"image":       "/img/repeat.png",
		"tags":        []uint{tag.ID, tag.ID},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var created ProjectWithTags
	require.NoError(t, json.Unmarshal(body, &created))
	require.Len(t, created.Tags, 1)
	assert.Equal(t, "go", created.Tags[0].Name)
}

func TestProjectCreateWithUnknownTagRollsBack(t *testing.T) {
	server, client := newTestServer(t)
	registerAdmin(t, client, server.URL)

	resp, _ := doJSON(t, client, http.MethodPost, server.URL+"/api/admin/projects", map[string]any{
		"title":       "Doomed",
		"description": "references a tag that does not exist",
		"image":       "/img/doomed.png",
		"tags":        []uint{999},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// The project row was rolled back with the failed tag link.
	resp, body := doJSON(t, client, http.MethodGet, server.URL+"/api/admin/projects?includeHidden=true", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var projects []ProjectWithTags
	require.NoError(t, json.Unmarshal(body, &projects))
	assert.Empty(t, projects)
}

func TestProjectUpdateTagDiff(t *testing.T) {
	server, client := newTestServer(t)
	registerAdmin(t, client, server.URL)

	var tagIDs []uint
	for _, name := range []string{"go", "chi", "gorm"} {
		resp, body := doJSON(t, client, http.MethodPost, server.URL+"/api/admin/tags", map[string]any{"name": name})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var tag models.Tag
		require.NoError(t, json.Unmarshal(body, &tag))
		tagIDs = append(tagIDs, tag.ID)
	}

	resp, body := doJSON(t, client, http.MethodPost, server.URL+"/api/admin/projects", map[string]any{
		"title":       "Service",
		"description": "a service",
		"image":       "/img/service.png",
		"tags":        []uint{tagIDs[0], tagIDs[1]},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created ProjectWithTags
	require.NoError(t, json.Unmarshal(body, &created))

	// Swap chi for gorm; go stays linked.
	url := fmt.Sprintf("%s/api/admin/projects/%d", server.URL, created.ID)
	resp, body = doJSON(t, client, http.MethodPatch, url, map[string]any{
		"tags": []uint{tagIDs[0], tagIDs[2]},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var updated ProjectWithTags
	require.NoError(t, json.Unmarshal(body, &updated))
	require.Len(t, updated.Tags, 2)
	assert.Equal(t, "go", updated.Tags[0].Name)
	assert.Equal(t, "gorm", updated.Tags[1].Name)
}

func TestProjectPartialUpdateKeepsOtherFields(t *testing.T) {
	server, client := newTestServer(t)
	registerAdmin(t, client, server.URL)

	resp, body := doJSON(t, client, http.MethodPost, server.URL+"/api/admin/projects", map[string]any{
		"title":       "Original",
		"description": "original description",
		"image":       "/img/original.png",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created ProjectWithTags
	require.NoError(t, json.Unmarshal(body, &created))

	url := fmt.Sprintf("%s/api/admin/projects/%d", server.URL, created.ID)
	resp, body = doJSON(t, client, http.MethodPatch, url, map[string]any{"isVisible": false})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated ProjectWithTags
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.False(t, updated.IsVisible)
	assert.Equal(t, "Original", updated.Title)
	assert.Equal(t, "original description", updated.Description)

	// Hidden projects disappear from the public list.
	resp, body = doJSON(t, client, http.MethodGet, server.URL+"/api/projects", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var public []ProjectWithTags
	require.NoError(t, json.Unmarshal(body, &public))
	assert.Empty(t, public)
}

func TestProjectCreatedHiddenStaysHidden(t *testing.T) {
	server, client := newTestServer(t)
	registerAdmin(t, client, server.URL)

	resp, body := doJSON(t, client, http.MethodPost, server.URL+"/api/admin/projects", map[string]any{
		"title":       "Secret",
		"description": "not ready for the public site",
		"image":       "/img/secret.png",
		"isVisible":   false,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var created ProjectWithTags
	require.NoError(t, json.Unmarshal(body, &created))
	assert.False(t, created.IsVisible)

	// The row was stored hidden, not flipped by a column default.
	url := fmt.Sprintf("%s/api/admin/projects/%d", server.URL, created.ID)
	resp, body = doJSON(t, client, http.MethodGet, url, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched ProjectWithTags
	require.NoError(t, json.Unmarshal(body, &fetched))
	assert.False(t, fetched.IsVisible)

	// And it never reaches the public list.
	resp, body = doJSON(t, client, http.MethodGet, server.URL+"/api/projects", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var public []ProjectWithTags
	require.NoError(t, json.Unmarshal(body, &public))
	assert.Empty(t, public)
}

func TestProjectDeleteIsIdempotent(t *testing.T) {
	server, client := newTestServer(t)
	registerAdmin(t, client, server.URL)

	resp, body := doJSON(t, client, http.MethodPost, server.URL+"/api/admin/projects", map[string]any{
		"title":       "Transient",
		"description": "will be deleted",
		"image":       "/img/x.png",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created ProjectWithTags
	require.NoError(t, json.Unmarshal(body, &created))

	url := fmt.Sprintf("%s/api/admin/projects/%d", server.URL, created.ID)
	resp, _ = doJSON(t, client, http.MethodDelete, url, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, client, http.MethodDelete, url, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, client, http.MethodGet, url, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSkillPercentageValidation(t *testing.T) {
	server, client := newTestServer(t)
	registerAdmin(t, client, server.URL)

	resp, body := doJSON(t, client, http.MethodPost, server.URL+"/api/admin/skill-categories", map[string]any{
		"title": "Backend",
		"icon":  "server",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var category models.SkillCategory
	require.NoError(t, json.Unmarshal(body, &category))

	resp, body = doJSON(t, client, http.MethodPost, server.URL+"/api/admin/skills", map[string]any{
		"name":       "Go",
		"percentage": 90,
		"categoryId": category.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var skill models.Skill
	require.NoError(t, json.Unmarshal(body, &skill))

	// Out-of-range percentages are rejected on create and update alike.
	resp, _ = doJSON(t, client, http.MethodPost, server.URL+"/api/admin/skills", map[string]any{
		"name":       "Overconfident",
		"percentage": 150,
		"categoryId": category.ID,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	url := fmt.Sprintf("%s/api/admin/skills/%d", server.URL, skill.ID)
	resp, body = doJSON(t, client, http.MethodPatch, url, map[string]any{"percentage": 150})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "percentage must be between 0 and 100")

	resp, _ = doJSON(t, client, http.MethodPatch, url, map[string]any{"percentage": -1})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSkillRequiresExistingCategory(t *testing.T) {
	server, client := newTestServer(t)
	registerAdmin(t, client, server.URL)

	resp, body := doJSON(t, client, http.MethodPost, server.URL+"/api/admin/skills", map[string]any{
		"name":       "Orphan",
		"categoryId": 42,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "category does not exist")
}

func TestDuplicateTagNameConflicts(t *testing.T) {
	server, client := newTestServer(t)
	registerAdmin(t, client, server.URL)

	resp, _ := doJSON(t, client, http.MethodPost, server.URL+"/api/admin/tags", map[string]any{"name": "go"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, client, http.MethodPost, server.URL+"/api/admin/tags", map[string]any{"name": "go"})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestExperienceCreateWithResponsibilities(t *testing.T) {
	server, client := newTestServer(t)
	registerAdmin(t, client, server.URL)

	resp, body := doJSON(t, client, http.MethodPost, server.URL+"/api/admin/experiences", map[string]any{
		"title":  "Backend engineer",
		"period": "2023 - Present",
		"responsibilities": []map[string]any{
			{"text": "Built the admin API"},
			{"text": "Ran the database migrations"},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var created ExperienceWithResponsibilities
	require.NoError(t, json.Unmarshal(body, &created))
	require.Len(t, created.Responsibilities, 2)
	assert.Equal(t, "Built the admin API", created.Responsibilities[0].Text)
	assert.Equal(t, "Ran the database migrations", created.Responsibilities[1].Text)

	// The public timeline inlines the lines too.
	resp, body = doJSON(t, client, http.MethodGet, server.URL+"/api/experiences", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var public []ExperienceWithResponsibilities
	require.NoError(t, json.Unmarshal(body, &public))
	require.Len(t, public, 1)
	assert.Len(t, public[0].Responsibilities, 2)
}

func TestContactFormValidation(t *testing.T) {
	server, client := newTestServer(t)

	resp, body := doJSON(t, client, http.MethodPost, server.URL+"/api/contact", map[string]any{
		"name":    "Visitor Name",
		"email":   "visitor@example.com",
		"subject": "Opportunity",
		"message": "I would like to talk about a role.",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Contains(t, string(body), "Message received")

	bad := []map[string]any{
		{"name": "V", "email": "visitor@example.com", "subject": "Opportunity", "message": "Long enough message."},
		{"name": "Visitor", "email": "not-an-email", "subject": "Opportunity", "message": "Long enough message."},
		{"name": "Visitor", "email": "visitor@example.com", "subject": "Hi", "message": "Long enough message."},
		{"name": "Visitor", "email": "visitor@example.com", "subject": "Opportunity", "message": "short"},
	}
	for _, payload := range bad {
		resp, _ := doJSON(t, client, http.MethodPost, server.URL+"/api/contact", payload)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	}
}

func TestPublicListsAreEmptyArraysNotNull(t *testing.T) {
	server, client := newTestServer(t)

	for _, path := range []string{
		"/api/projects",
		"/api/tags",
		"/api/skill-categories",
		"/api/skills",
		"/api/experiences",
	} {
		resp, body := doJSON(t, client, http.MethodGet, server.URL+path, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Equal(t, "[]\n", string(body), path)
	}
}

func TestInvalidIDParam(t *testing.T) {
	server, client := newTestServer(t)
	registerAdmin(t, client, server.URL)

	for _, raw := range []string{"0", "abc", "-3"} {
		resp, _ := doJSON(t, client, http.MethodGet, server.URL+"/api/admin/tags/"+raw, nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, raw)
	}
}

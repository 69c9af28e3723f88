package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/content/handler"
	"folio/internal/content/models"
	"folio/internal/content/repo"
	"folio/internal/content/service"
	"folio/internal/content/store"
	"folio/internal/notify"
	"folio/internal/platform/middleware"
	"folio/internal/upload"
	dErrors "folio/pkg/domain-errors"
)

const adminToken = "valid-admin-token"

type staticValidator struct{}

func (staticValidator) ValidateToken(token string) (middleware.Identity, error) {
	if token == adminToken {
		return middleware.Identity{UserID: uuid.New(), Role: "admin"}, nil
	}
	return middleware.Identity{}, dErrors.New(dErrors.CodeUnauthorized, "token is not valid")
}

type fixture struct {
	router *chi.Mux
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	auth := middleware.RequireAuth(staticValidator{}, logger)

	saver, err := upload.NewSaver(t.TempDir())
	require.NoError(t, err)

	st := store.NewInMemory()
	opts := []service.Option{service.WithLogger(logger)}

	projects := service.NewCRUD("Project",
		repo.NewCollection(st, models.KindProject, func() *models.Project { return &models.Project{} }), opts...)
	skills := service.NewCRUD("Skill",
		repo.NewCollection(st, models.KindSkill, func() *models.Skill { return &models.Skill{} }), opts...)
	blog := service.NewBlog(
		repo.NewCollection(st, models.KindBlogPost, func() *models.BlogPost { return &models.BlogPost{} }), opts...)
	contact := service.NewContact(
		repo.NewCollection(st, models.KindMessage, func() *models.Message { return &models.Message{} }),
		notify.NewOutbox(notify.NewLogMailer(logger), notify.WithLogger(logger)), opts...)
	profile := service.NewProfile(
		repo.NewCollection(st, models.KindProfile, func() *models.Profile { return &models.Profile{} }), opts...)
	leetcode := service.NewLeetCode(
		repo.NewCollection(st, models.KindLeetCodeEntry, func() *models.LeetCodeEntry { return &models.LeetCodeEntry{} }), opts...)

	r := chi.NewRouter()
	handler.NewResource(handler.Config[*models.Project]{
		Path: "/api/projects", UploadField: "image",
		Service: projects, Bind: models.BindProject,
		Uploads: saver, Auth: auth, Logger: logger,
	}).Register(r)
	handler.NewSkills(skills, saver, auth, logger).Register(r)
	handler.NewBlog(blog, saver, auth, logger).Register(r)
	handler.NewContact(contact, auth, nil, logger).Register(r)
	handler.NewProfile(profile, saver, auth, logger).Register(r)
	handler.NewLeetCode(leetcode, saver, auth, logger).Register(r)

	return &fixture{router: r}
}

func (f *fixture) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func multipartBody(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func createProject(t *testing.T, f *fixture, fields map[string]string) models.Project {
	t.Helper()
	body, ct := multipartBody(t, fields)
	req := httptest.NewRequest(http.MethodPost, "/api/projects", body)
	req.Header.Set("Content-Type", ct)
	req.Header.Set(middleware.TokenHeader, adminToken)

	rr := f.do(t, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var created models.Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	return created
}

func TestProjects_CreateAndFetch(t *testing.T) {
	f := newFixture(t)

	created := createProject(t, f, map[string]string{
		"title":       "Folio",
		"description": "portfolio backend",
		"techStack":   "Go, Postgres",
		"featured":    "true",
	})
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, []string{"Go", "Postgres"}, created.TechStack)

	rr := f.do(t, httptest.NewRequest(http.MethodGet, "/api/projects/"+created.ID.String(), nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var got models.Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, got.Featured)
}

func TestProjects_MutationsRequireToken(t *testing.T) {
	f := newFixture(t)

	body, ct := multipartBody(t, map[string]string{"title": "x", "description": "y"})
	req := httptest.NewRequest(http.MethodPost, "/api/projects", body)
	req.Header.Set("Content-Type", ct)

	rr := f.do(t, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "no token, authorization denied")

	list := f.do(t, httptest.NewRequest(http.MethodGet, "/api/projects", nil))
	require.Equal(t, http.StatusOK, list.Code)
	assert.JSONEq(t, "[]", list.Body.String(), "the rejected create must not persist anything")
}

func TestProjects_BadTokenRejected(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/projects/"+uuid.NewString(), nil)
	req.Header.Set(middleware.TokenHeader, "forged")

	rr := f.do(t, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "token is not valid")
}

func TestProjects_DeleteConfirmation(t *testing.T) {
	f := newFixture(t)
	created := createProject(t, f, map[string]string{"title": "Folio", "description": "x"})

	req := httptest.NewRequest(http.MethodDelete, "/api/projects/"+created.ID.String(), nil)
	req.Header.Set(middleware.TokenHeader, adminToken)

	rr := f.do(t, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"msg":"Project removed"}`, rr.Body.String())

	gone := f.do(t, httptest.NewRequest(http.MethodGet, "/api/projects/"+created.ID.String(), nil))
	assert.Equal(t, http.StatusNotFound, gone.Code)
}

func TestProjects_MalformedIDIsNotFound(t *testing.T) {
	f := newFixture(t)
	rr := f.do(t, httptest.NewRequest(http.MethodGet, "/api/projects/not-a-uuid", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Project not found")
}

func TestProjects_ValidationErrorSurfaces(t *testing.T) {
	f := newFixture(t)

	body, ct := multipartBody(t, map[string]string{"description": "no title"})
	req := httptest.NewRequest(http.MethodPost, "/api/projects", body)
	req.Header.Set("Content-Type", ct)
	req.Header.Set(middleware.TokenHeader, adminToken)

	rr := f.do(t, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "validation_error")
}

func TestSkills_CategoryFilter(t *testing.T) {
	f := newFixture(t)

	for _, fields := range []map[string]string{
		{"name": "Go", "category": "Backend"},
		{"name": "Postgres", "category": "Backend"},
		{"name": "React", "category": "Frontend"},
	} {
		body, ct := multipartBody(t, fields)
		req := httptest.NewRequest(http.MethodPost, "/api/skills", body)
		req.Header.Set("Content-Type", ct)
		req.Header.Set(middleware.TokenHeader, adminToken)
		require.Equal(t, http.StatusOK, f.do(t, req).Code)
	}

	rr := f.do(t, httptest.NewRequest(http.MethodGet, "/api/skills/category/Backend", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var skills []models.Skill
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &skills))
	require.Len(t, skills, 2)
	for _, s := range skills {
		assert.Equal(t, "Backend", s.Category)
	}
}

func TestBlog_PublicAdminAndSlugRoutes(t *testing.T) {
	f := newFixture(t)

	for _, fields := range []map[string]string{
		{"title": "Published Post", "content": "body", "published": "true"},
		{"title": "Draft Post", "content": "body"},
	} {
		body, ct := multipartBody(t, fields)
		req := httptest.NewRequest(http.MethodPost, "/api/blog", body)
		req.Header.Set("Content-Type", ct)
		req.Header.Set(middleware.TokenHeader, adminToken)
		require.Equal(t, http.StatusOK, f.do(t, req).Code)
	}

	public := f.do(t, httptest.NewRequest(http.MethodGet, "/api/blog", nil))
	require.Equal(t, http.StatusOK, public.Code)
	var publicPosts []models.BlogPost
	require.NoError(t, json.Unmarshal(public.Body.Bytes(), &publicPosts))
	require.Len(t, publicPosts, 1)
	assert.Equal(t, "published-post", publicPosts[0].Slug)

	unauthAdmin := f.do(t, httptest.NewRequest(http.MethodGet, "/api/blog/admin", nil))
	assert.Equal(t, http.StatusUnauthorized, unauthAdmin.Code)

	adminReq := httptest.NewRequest(http.MethodGet, "/api/blog/admin", nil)
	adminReq.Header.Set(middleware.TokenHeader, adminToken)
	admin := f.do(t, adminReq)
	require.Equal(t, http.StatusOK, admin.Code)
	var allPosts []models.BlogPost
	require.NoError(t, json.Unmarshal(admin.Body.Bytes(), &allPosts))
	assert.Len(t, allPosts, 2)

	bySlug := f.do(t, httptest.NewRequest(http.MethodGet, "/api/blog/draft-post", nil))
	require.Equal(t, http.StatusOK, bySlug.Code)
	var draft models.BlogPost
	require.NoError(t, json.Unmarshal(bySlug.Body.Bytes(), &draft))
	assert.Equal(t, "Draft Post", draft.Title)

	missing := f.do(t, httptest.NewRequest(http.MethodGet, "/api/blog/nope", nil))
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestBlog_UpdateByID(t *testing.T) {
	f := newFixture(t)

	body, ct := multipartBody(t, map[string]string{"title": "First", "content": "body"})
	req := httptest.NewRequest(http.MethodPost, "/api/blog", body)
	req.Header.Set("Content-Type", ct)
	req.Header.Set(middleware.TokenHeader, adminToken)
	rr := f.do(t, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var created models.BlogPost
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	body, ct = multipartBody(t, map[string]string{"title": "First", "content": "edited", "published": "true"})
	update := httptest.NewRequest(http.MethodPut, "/api/blog/"+created.ID.String(), body)
	update.Header.Set("Content-Type", ct)
	update.Header.Set(middleware.TokenHeader, adminToken)
	rr = f.do(t, update)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var updated models.BlogPost
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "edited", updated.Content)
	assert.True(t, updated.Published)
}

func TestContact_SubmitAndInbox(t *testing.T) {
	f := newFixture(t)

	payload := `{"name":"Ada","email":"ada@example.com","subject":"Hi","message":"Hello there"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	rr := f.do(t, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"msg":"Message sent successfully"}`, rr.Body.String())

	unauth := f.do(t, httptest.NewRequest(http.MethodGet, "/api/contact", nil))
	assert.Equal(t, http.StatusUnauthorized, unauth.Code)

	listReq := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	listReq.Header.Set(middleware.TokenHeader, adminToken)
	list := f.do(t, listReq)
	require.Equal(t, http.StatusOK, list.Code)

	var messages []models.Message
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &messages))
	require.Len(t, messages, 1)
	assert.Equal(t, "Hello there", messages[0].Body)
	assert.False(t, messages[0].Read)

	markReq := httptest.NewRequest(http.MethodPut, "/api/contact/"+messages[0].ID.String(), nil)
	markReq.Header.Set(middleware.TokenHeader, adminToken)
	marked := f.do(t, markReq)
	require.Equal(t, http.StatusOK, marked.Code)

	var read models.Message
	require.NoError(t, json.Unmarshal(marked.Body.Bytes(), &read))
	assert.True(t, read.Read)
}

func TestContact_InvalidSubmission(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":"Ada","email":"not-an-email","subject":"Hi","message":"x"}`))
	req.Header.Set("Content-Type", "application/json")

	rr := f.do(t, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "please enter a valid email")
}

func TestProfile_GetAndUpdate(t *testing.T) {
	f := newFixture(t)

	rr := f.do(t, httptest.NewRequest(http.MethodGet, "/api/profile", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var profile models.Profile
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &profile))
	assert.NotEmpty(t, profile.Name, "first read materializes the default profile")

	body, ct := multipartBody(t, map[string]string{
		"name":        "Asad",
		"tagline":     "engineer",
		"bio":         "hello",
		"socialLinks": `{"github":"https://github.com/asad"}`,
	})
	update := httptest.NewRequest(http.MethodPut, "/api/profile", body)
	update.Header.Set("Content-Type", ct)
	update.Header.Set(middleware.TokenHeader, adminToken)
	rr = f.do(t, update)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var updated models.Profile
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, profile.ID, updated.ID)
	assert.Equal(t, "https://github.com/asad", updated.SocialLinks.GitHub)
}

func TestLeetCode_StatsEndpoint(t *testing.T) {
	f := newFixture(t)

	for _, fields := range []map[string]string{
		{"title": "Two Sum", "difficulty": "Easy", "status": "Solved"},
		{"title": "LRU Cache", "difficulty": "Medium", "status": "In Progress"},
	} {
		body, ct := multipartBody(t, fields)
		req := httptest.NewRequest(http.MethodPost, "/api/leetcode-progress", body)
		req.Header.Set("Content-Type", ct)
		req.Header.Set(middleware.TokenHeader, adminToken)
		require.Equal(t, http.StatusOK, f.do(t, req).Code)
	}

	rr := f.do(t, httptest.NewRequest(http.MethodGet, "/api/leetcode-progress/stats", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var stats service.LeetCodeStats
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Solved)
	assert.Equal(t, 1, stats.InProgress)
	assert.Equal(t, stats.Total, stats.ByDifficulty.Easy+stats.ByDifficulty.Medium+stats.ByDifficulty.Hard)
}

func TestProjects_JSONBodyAccepted(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/projects",
		strings.NewReader(`{"title":"Folio","description":"backend","techStack":"Go,chi","featured":true}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.TokenHeader, adminToken)

	rr := f.do(t, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var created models.Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.True(t, created.Featured, "JSON booleans coerce through the form layer")
	assert.Equal(t, []string{"Go", "chi"}, created.TechStack)
}

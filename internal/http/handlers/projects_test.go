package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"skyline/internal/domain"
)

func projectsRouter(app *App) http.Handler {
	r := chi.NewRouter()
	r.Get("/projects", app.ListProjects)
	r.Get("/projects/{slug}", app.GetProject)
	return r
}

func TestListProjectsResolvesCoverImage(t *testing.T) {
	app := newTestApp()
	app.Projects = &fakeProjectRepo{projects: []domain.Project{
		{ID: 1, Title: "Accra Mall Extension", Slug: "accra-mall-extension", CoverImage: "images/mall.jpg", Status: domain.ProjectCompleted},
	}}

	rec := httptest.NewRecorder()
	projectsRouter(app).ServeHTTP(rec, httptest.NewRequest("GET", "/projects", nil))

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Items []struct {
			Slug       string `json:"slug"`
			CoverImage string `json:"cover_image"`
			Status     string `json:"status"`
		} `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(body.Items))
	}
	if body.Items[0].CoverImage != "https://cdn.example.com/images/mall.jpg" {
		t.Fatalf("expected resolved cover image, got %q", body.Items[0].CoverImage)
	}
	if body.Items[0].Status != "completed" {
		t.Fatalf("unexpected status %q", body.Items[0].Status)
	}
}

func TestGetProjectNotFound(t *testing.T) {
	app := newTestApp()
	app.Projects = &fakeProjectRepo{}

	rec := httptest.NewRecorder()
	projectsRouter(app).ServeHTTP(rec, httptest.NewRequest("GET", "/projects/missing", nil))

	if rec.Code != 404 {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestListProjectsRepositoryError(t *testing.T) {
	app := newTestApp()
	app.Projects = &fakeProjectRepo{listErr: errFake}

	rec := httptest.NewRecorder()
	projectsRouter(app).ServeHTTP(rec, httptest.NewRequest("GET", "/projects", nil))

	if rec.Code != 500 {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

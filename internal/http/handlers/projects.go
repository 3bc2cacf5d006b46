package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"skyline/internal/domain"
)

func (a *App) ListProjects(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))
	featured := q.Get("featured") == "true"

	projects, err := a.Projects.List(r.Context(), q.Get("category"), featured, limit, offset)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load projects")
		return
	}

	items := make([]map[string]any, 0, len(projects))
	for _, p := range projects {
		items = append(items, a.projectJSON(&p))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) GetProject(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	p, err := a.Projects.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "project not found")
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to load project")
		return
	}
	a.json(w, http.StatusOK, a.projectJSON(p))
}

func (a *App) ListProjectCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := a.Projects.ListCategories(r.Context())
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load categories")
		return
	}
	items := make([]map[string]any, 0, len(categories))
	for _, c := range categories {
		items = append(items, map[string]any{"id": c.ID, "name": c.Name, "slug": c.Slug})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) projectJSON(p *domain.Project) map[string]any {
	return map[string]any{
		"id":           p.ID,
		"title":        p.Title,
		"slug":         p.Slug,
		"summary":      p.Summary,
		"description":  p.Description,
		"client":       p.Client,
		"location":     p.Location,
		"status":       p.Status,
		"featured":     p.Featured,
		"cover_image":  a.Store.URL(p.CoverImage),
		"started_at":   p.StartedAt,
		"completed_at": p.CompletedAt,
		"created_at":   p.CreatedAt,
	}
}

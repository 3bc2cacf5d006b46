package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"skyline/internal/domain"
)

func (a *App) ListServices(w http.ResponseWriter, r *http.Request) {
	featured := r.URL.Query().Get("featured") == "true"
	services, err := a.Services.List(r.Context(), featured)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load services")
		return
	}
	items := make([]map[string]any, 0, len(services))
	for _, s := range services {
		items = append(items, a.serviceJSON(&s))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) GetService(w http.ResponseWriter, r *http.Request) {
	s, err := a.Services.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "service not found")
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to load service")
		return
	}
	a.json(w, http.StatusOK, a.serviceJSON(s))
}

func (a *App) ListServiceCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := a.Services.ListCategories(r.Context())
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

func (a *App) serviceJSON(s *domain.Service) map[string]any {
	return map[string]any{
		"id":          s.ID,
		"name":        s.Name,
		"slug":        s.Slug,
		"summary":     s.Summary,
		"description": s.Description,
		"icon":        s.Icon,
		"image":       a.Store.URL(s.Image),
		"featured":    s.Featured,
		"sort_order":  s.SortOrder,
	}
}

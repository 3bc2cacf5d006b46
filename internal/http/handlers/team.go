package handlers

import "net/http"

func (a *App) ListTeam(w http.ResponseWriter, r *http.Request) {
	members, err := a.Team.ListMembers(r.Context())
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load team")
		return
	}
	items := make([]map[string]any, 0, len(members))
	for _, m := range members {
		items = append(items, map[string]any{
			"id":         m.ID,
			"name":       m.Name,
			"role":       m.Role,
			"bio":        m.Bio,
			"photo":      a.Store.URL(m.Photo),
			"sort_order": m.SortOrder,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := a.Team.ListTestimonials(r.Context())
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load testimonials")
		return
	}
	items := make([]map[string]any, 0, len(testimonials))
	for _, t := range testimonials {
		items = append(items, map[string]any{
			"id":      t.ID,
			"name":    t.Name,
			"company": t.Company,
			"quote":   t.Quote,
			"rating":  t.Rating,
			"photo":   a.Store.URL(t.Photo),
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

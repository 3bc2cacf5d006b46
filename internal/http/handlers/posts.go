package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"skyline/internal/domain"
)

func (a *App) ListPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	posts, err := a.Posts.ListPublished(r.Context(), limit, offset)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load posts")
		return
	}
	items := make([]map[string]any, 0, len(posts))
	for _, p := range posts {
		items = append(items, a.postJSON(&p, false))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

// GetPost returns a published post and bumps its view counter. The counter
// update is best effort; a failure never blocks the response.
func (a *App) GetPost(w http.ResponseWriter, r *http.Request) {
	p, err := a.Posts.GetPublishedBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "post not found")
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to load post")
		return
	}

	if err := a.Posts.IncrementViews(r.Context(), p.ID); err != nil {
		a.Log.Debug().Err(err).Int64("post_id", p.ID).Msg("view count update failed")
	} else {
		p.ViewCount++
	}

	a.json(w, http.StatusOK, a.postJSON(p, true))
}

func (a *App) ListPostCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := a.Posts.ListCategories(r.Context())
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

func (a *App) postJSON(p *domain.BlogPost, full bool) map[string]any {
	out := map[string]any{
		"id":           p.ID,
		"title":        p.Title,
		"slug":         p.Slug,
		"excerpt":      p.Excerpt,
		"cover_image":  a.Store.URL(p.CoverImage),
		"author":       p.Author,
		"view_count":   p.ViewCount,
		"published_at": p.PublishedAt,
	}
	if full {
		out["body"] = p.Body
	}
	return out
}

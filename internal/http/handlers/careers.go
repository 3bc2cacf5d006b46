package handlers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"skyline/internal/domain"
	"skyline/internal/middleware"
)

const maxResumeSize = 5 << 20

var resumeExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

func (a *App) ListPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := a.Careers.ListOpenPositions(r.Context(), a.today())
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load positions")
		return
	}
	items := make([]map[string]any, 0, len(positions))
	for _, p := range positions {
		items = append(items, positionJSON(&p))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := a.Careers.ListDepartments(r.Context())
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load departments")
		return
	}
	items := make([]map[string]any, 0, len(departments))
	for _, d := range departments {
		items = append(items, map[string]any{"id": d.ID, "name": d.Name, "slug": d.Slug})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) GetPosition(w http.ResponseWriter, r *http.Request) {
	p, err := a.Careers.GetPositionBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "position not found")
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to load position")
		return
	}
	a.json(w, http.StatusOK, positionJSON(p))
}

// ApplyToPosition accepts a multipart form with the applicant's details and
// an optional resume file. Applications against closed positions or past
// deadlines are rejected.
func (a *App) ApplyToPosition(w http.ResponseWriter, r *http.Request) {
	p, err := a.Careers.GetPositionBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "position not found")
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to load position")
		return
	}
	if p.Status != domain.PositionOpen {
		a.error(w, http.StatusConflict, "position_closed", "position is no longer accepting applications")
		return
	}
	if p.Deadline != nil && a.today().After(*p.Deadline) {
		a.error(w, http.StatusConflict, "position_closed", "application deadline has passed")
		return
	}

	if err := r.ParseMultipartForm(maxResumeSize); err != nil {
		a.error(w, http.StatusBadRequest, "invalid_input", "invalid multipart form")
		return
	}

	app := &domain.JobApplication{
		PositionID:  p.ID,
		FullName:    strings.TrimSpace(r.FormValue("full_name")),
		Email:       strings.TrimSpace(r.FormValue("email")),
		Phone:       strings.TrimSpace(r.FormValue("phone")),
		CoverLetter: strings.TrimSpace(r.FormValue("cover_letter")),
		Status:      domain.ApplicationNew,
		Country:     middleware.CountryFromContext(r.Context()),
	}
	if app.FullName == "" || app.Email == "" {
		a.error(w, http.StatusBadRequest, "invalid_input", "full_name and email are required")
		return
	}

	file, header, err := r.FormFile("resume")
	if err == nil {
		defer file.Close()
		ext := strings.ToLower(filepath.Ext(header.Filename))
		if !resumeExtensions[ext] {
			a.error(w, http.StatusBadRequest, "invalid_input", "resume must be a pdf, doc or docx file")
			return
		}
		name, err := a.Store.Save(r.Context(), header.Filename, file)
		if err != nil {
			a.error(w, http.StatusBadGateway, "storage_failure", "failed to store resume")
			return
		}
		app.ResumeName = name
	}

	if err := a.Careers.CreateApplication(r.Context(), app); err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to submit application")
		return
	}
	a.json(w, http.StatusCreated, map[string]any{"id": app.ID, "status": app.Status})
}

func positionJSON(p *domain.JobPosition) map[string]any {
	return map[string]any{
		"id":              p.ID,
		"title":           p.Title,
		"slug":            p.Slug,
		"summary":         p.Summary,
		"description":     p.Description,
		"location":        p.Location,
		"employment_type": p.EmploymentType,
		"status":          p.Status,
		"deadline":        p.Deadline,
	}
}

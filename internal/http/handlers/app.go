package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"skyline/internal/adapter/repo"
	"skyline/internal/domain"
	"skyline/internal/infra"
	"skyline/internal/storage"
)

// App holds the handler dependencies. Fields are exported so tests can swap
// in fakes per repository.
type App struct {
	Cfg   *infra.Config
	Log   infra.Logger
	Store storage.Storage

	Metrics   domain.MetricsRepository
	Projects  domain.ProjectRepository
	Services  domain.ServiceRepository
	Posts     domain.PostRepository
	Careers   domain.CareerRepository
	Team      domain.TeamRepository
	Inquiries domain.InquiryRepository
	Settings  domain.SettingsRepository

	now func() time.Time
}

// NewApp wires the repositories over the given SQL executor.
func NewApp(cfg *infra.Config, log infra.Logger, store storage.Storage, sql infra.SQLExecutor) *App {
	return &App{
		Cfg:       cfg,
		Log:       log,
		Store:     store,
		Metrics:   repo.NewMetricsRepository(sql),
		Projects:  repo.NewProjectRepository(sql),
		Services:  repo.NewServiceRepository(sql),
		Posts:     repo.NewPostRepository(sql),
		Careers:   repo.NewCareerRepository(sql),
		Team:      repo.NewTeamRepository(sql),
		Inquiries: repo.NewInquiryRepository(sql),
		Settings:  repo.NewSettingsRepository(sql),
		now:       time.Now,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, slug, message string) {
	a.json(w, code, map[string]any{
		"error":   slug,
		"message": message,
	})
}

func (a *App) today() time.Time {
	clock := a.now
	if clock == nil {
		clock = time.Now
	}
	t := clock().In(a.Cfg.Location())
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

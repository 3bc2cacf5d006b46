package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"skyline/internal/http/handlers"
	"skyline/internal/middleware"
	"skyline/internal/tracking"
)

// RouterDeps carries the pieces the router needs beyond the handler set.
type RouterDeps struct {
	Sessions *middleware.SessionManager
	Tracker  *tracking.Tracker
	Country  middleware.CountryLookup
}

func NewRouter(app *handlers.App, deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Log),
		middleware.CORS(app.Cfg.CORSOrigins),
		middleware.RateLimit(app.Cfg.RateLimitPerMin, time.Minute),
		middleware.Session(deps.Sessions),
		middleware.Geo(deps.Country),
		middleware.VisitorTracking(deps.Tracker),
	)

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", app.ListProjects)
			r.Get("/categories", app.ListProjectCategories)
			r.Get("/{slug}", app.GetProject)
		})
		r.Route("/services", func(r chi.Router) {
			r.Get("/", app.ListServices)
			r.Get("/categories", app.ListServiceCategories)
			r.Get("/{slug}", app.GetService)
		})
		r.Route("/posts", func(r chi.Router) {
			r.Get("/", app.ListPosts)
			r.Get("/categories", app.ListPostCategories)
			r.Get("/{slug}", app.GetPost)
		})
		r.Route("/careers", func(r chi.Router) {
			r.Get("/", app.ListPositions)
			r.Get("/departments", app.ListDepartments)
			r.Get("/{slug}", app.GetPosition)
			r.Post("/{slug}/apply", app.ApplyToPosition)
		})
		r.Get("/team", app.ListTeam)
		r.Get("/testimonials", app.ListTestimonials)
		r.Post("/contact", app.CreateInquiry)
		r.Get("/settings", app.GetSettings)
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.AuthJWT(app.Cfg.JWTSecret))

		r.Post("/media", app.UploadMedia)
		r.Delete("/media", app.DeleteMedia)
		r.Get("/stats/visitors", app.VisitorStats)
		r.Post("/stats/visitors/reset", app.ResetVisitors)
		r.Get("/inquiries", app.ListInquiries)
		r.Patch("/inquiries/status", app.UpdateInquiryStatus)
	})

	return r
}

package middleware

import (
	"net/http"

	"skyline/internal/tracking"
)

// VisitorTracking observes each request for the daily visitor counter. The
// tracker swallows every failure itself, so the request proceeds unaffected
// no matter what happens in there.
func VisitorTracking(tracker *tracking.Tracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tracker.Track(r, SessionFromContext(r.Context()))
			next.ServeHTTP(w, r)
		})
	}
}

package tracking

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"skyline/internal/domain"
)

// SessionStore is the per-request session capability the tracker needs: a
// small key/value surface scoped to the visitor's browsing session.
type SessionStore interface {
	Get(key string) bool
	Set(key string)
}

// defaultExcludedPrefixes lists request paths that never count as visits:
// admin surfaces, assets and machine endpoints.
var defaultExcludedPrefixes = []string{
	"/admin/",
	"/my-admin/",
	"/static/",
	"/media/",
	"/__debug__",
	"/favicon.ico",
	"/robots.txt",
	"/sitemap.xml",
	"/api/auth/",
}

// botMarkers are matched case-insensitively as substrings of the user agent.
var botMarkers = []string{"bot", "crawler", "spider", "scraper", "curl", "wget"}

const visitedKeyPrefix = "visited:"

// Tracker counts at most one visit per session per calendar day into the
// daily visitors metric. It is an auxiliary side channel: nothing it does may
// ever disturb the request it observes.
type Tracker struct {
	metrics  domain.MetricsRepository
	loc      *time.Location
	excluded []string
	devMode  bool
	log      zerolog.Logger
	now      func() time.Time
}

// NewTracker constructs a visitor tracker. loc determines where the day
// boundary falls; extraPrefixes extends the built-in exclusion list.
func NewTracker(metrics domain.MetricsRepository, loc *time.Location, devMode bool, log zerolog.Logger, extraPrefixes ...string) *Tracker {
	if loc == nil {
		loc = time.UTC
	}
	excluded := make([]string, 0, len(defaultExcludedPrefixes)+len(extraPrefixes))
	excluded = append(excluded, defaultExcludedPrefixes...)
	excluded = append(excluded, extraPrefixes...)
	return &Tracker{
		metrics:  metrics,
		loc:      loc,
		excluded: excluded,
		devMode:  devMode,
		log:      log,
		now:      time.Now,
	}
}

// Track evaluates one inbound request and increments the daily counter for
// genuine first visits of the day. Every failure is swallowed; in development
// it is logged at debug level.
func (t *Tracker) Track(r *http.Request, sess SessionStore) {
	defer func() {
		if rec := recover(); rec != nil && t.devMode {
			t.log.Debug().Interface("panic", rec).Msg("visitor tracking panicked")
		}
	}()

	if r == nil || !t.qualifies(r) {
		return
	}

	today := t.now().In(t.loc)
	key := visitedKeyPrefix + today.Format("2006-01-02")

	// When no session mechanism is available the request is counted anyway.
	// That can overcount, but there is no other dedup signal; failing open
	// is the accepted behavior.
	if sess != nil {
		if sess.Get(key) {
			return
		}
		sess.Set(key)
	}

	if err := t.metrics.Increment(r.Context(), domain.MetricVisitors, today); err != nil && t.devMode {
		t.log.Debug().Err(err).Msg("visitor count increment failed")
	}
}

func (t *Tracker) qualifies(r *http.Request) bool {
	path := r.URL.Path
	if path == "" {
		path = "/"
	}
	for _, prefix := range t.excluded {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	if r.Method != http.MethodGet {
		return false
	}
	if r.Header.Get("X-Requested-With") == "XMLHttpRequest" {
		return false
	}
	ua := strings.ToLower(r.UserAgent())
	for _, marker := range botMarkers {
		if strings.Contains(ua, marker) {
			return false
		}
	}
	return true
}

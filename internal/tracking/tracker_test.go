package tracking

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"skyline/internal/domain"
)

type fakeMetrics struct {
	mu     sync.Mutex
	counts map[string]float64
	err    error
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{counts: make(map[string]float64)}
}

func (f *fakeMetrics) Increment(ctx context.Context, name string, day time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.counts[name+"/"+day.Format("2006-01-02")]++
	return nil
}

func (f *fakeMetrics) SumRange(ctx context.Context, name string, from, to time.Time) (float64, error) {
	return 0, nil
}

func (f *fakeMetrics) SeriesRange(ctx context.Context, name string, from, to time.Time) ([]domain.MetricPoint, error) {
	return nil, nil
}

func (f *fakeMetrics) Reset(ctx context.Context, name string, day time.Time) error {
	return nil
}

func (f *fakeMetrics) total() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	var sum float64
	for _, v := range f.counts {
		sum += v
	}
	return sum
}

type fakeSession struct {
	mu    sync.Mutex
	flags map[string]bool
}

func newFakeSession() *fakeSession {
	return &fakeSession{flags: make(map[string]bool)}
}

func (s *fakeSession) Get(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flags[key]
}

func (s *fakeSession) Set(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags[key] = true
}

func newTestTracker(metrics domain.MetricsRepository) *Tracker {
	tr := NewTracker(metrics, time.UTC, false, zerolog.Nop())
	tr.now = func() time.Time {
		return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	}
	return tr
}

func pageRequest() *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/projects/42/", nil)
	r.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64)")
	return r
}

func TestTrackCountsFirstVisitOfDay(t *testing.T) {
	metrics := newFakeMetrics()
	tr := newTestTracker(metrics)
	sess := newFakeSession()

	tr.Track(pageRequest(), sess)

	if got := metrics.counts["visitors/2024-03-01"]; got != 1 {
		t.Fatalf("counter = %v, want 1", got)
	}
	if !sess.Get("visited:2024-03-01") {
		t.Fatal("expected session flag to be set")
	}
}

func TestTrackDedupsWithinSession(t *testing.T) {
	metrics := newFakeMetrics()
	tr := newTestTracker(metrics)
	sess := newFakeSession()

	for i := 0; i < 4; i++ {
		tr.Track(pageRequest(), sess)
	}

	if got := metrics.counts["visitors/2024-03-01"]; got != 1 {
		t.Fatalf("counter = %v, want 1 despite repeat requests", got)
	}
}

func TestTrackDistinctSessionsEachCount(t *testing.T) {
	metrics := newFakeMetrics()
	tr := newTestTracker(metrics)

	for i := 0; i < 3; i++ {
		tr.Track(pageRequest(), newFakeSession())
	}

	if got := metrics.counts["visitors/2024-03-01"]; got != 3 {
		t.Fatalf("counter = %v, want 3", got)
	}
}

func TestTrackExcludedPaths(t *testing.T) {
	paths := []string{
		"/admin/x",
		"/my-admin/",
		"/static/app.css",
		"/media/logo.png",
		"/__debug__/panel",
		"/favicon.ico",
		"/robots.txt",
		"/sitemap.xml",
		"/api/auth/login",
	}

	metrics := newFakeMetrics()
	tr := newTestTracker(metrics)
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, path, nil)
			r.Header.Set("User-Agent", "Mozilla/5.0")
			tr.Track(r, newFakeSession())
			if metrics.total() != 0 {
				t.Fatalf("path %q altered the counter", path)
			}
		})
	}
}

func TestTrackIgnoresNonGET(t *testing.T) {
	metrics := newFakeMetrics()
	tr := newTestTracker(metrics)

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodHead} {
		r := httptest.NewRequest(method, "/projects/", nil)
		r.Header.Set("User-Agent", "Mozilla/5.0")
		tr.Track(r, newFakeSession())
	}

	if metrics.total() != 0 {
		t.Fatalf("non-GET requests altered the counter: %v", metrics.total())
	}
}

func TestTrackIgnoresXHR(t *testing.T) {
	metrics := newFakeMetrics()
	tr := newTestTracker(metrics)

	r := pageRequest()
	r.Header.Set("X-Requested-With", "XMLHttpRequest")
	tr.Track(r, newFakeSession())

	if metrics.total() != 0 {
		t.Fatal("XHR request altered the counter")
	}
}

func TestTrackIgnoresBots(t *testing.T) {
	agents := []string{
		"Mozilla/5.0 (compatible; Bingbot/2.0)",
		"some-Crawler/1.0",
		"spider",
		"data scraper x",
		"curl/8.0.1",
		"Wget/1.21",
	}

	metrics := newFakeMetrics()
	tr := newTestTracker(metrics)
	for _, agent := range agents {
		t.Run(agent, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/projects/", nil)
			r.Header.Set("User-Agent", agent)
			tr.Track(r, newFakeSession())
			if metrics.total() != 0 {
				t.Fatalf("agent %q altered the counter", agent)
			}
		})
	}
}

func TestTrackWithoutSessionCountsEveryRequest(t *testing.T) {
	// Known, accepted limitation: with no session there is no dedup signal,
	// so every qualifying request counts.
	metrics := newFakeMetrics()
	tr := newTestTracker(metrics)

	tr.Track(pageRequest(), nil)
	tr.Track(pageRequest(), nil)

	if got := metrics.counts["visitors/2024-03-01"]; got != 2 {
		t.Fatalf("counter = %v, want 2 without a session", got)
	}
}

func TestTrackSwallowsRepositoryErrors(t *testing.T) {
	metrics := newFakeMetrics()
	metrics.err = errors.New("db down")
	tr := newTestTracker(metrics)

	tr.Track(pageRequest(), newFakeSession()) // must not panic
}

func TestTrackConcurrentFirstVisits(t *testing.T) {
	const sessions = 64

	metrics := newFakeMetrics()
	tr := newTestTracker(metrics)

	var wg sync.WaitGroup
	for i := 0; i < sessions; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/projects/%d/", i), nil)
			r.Header.Set("User-Agent", "Mozilla/5.0")
			tr.Track(r, newFakeSession())
		}(i)
	}
	wg.Wait()

	if got := metrics.counts["visitors/2024-03-01"]; got != sessions {
		t.Fatalf("counter = %v, want %d (lost updates)", got, sessions)
	}
}

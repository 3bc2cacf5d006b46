package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"skyline/internal/tracking"
)

func TestSessionMintsCookieAndReusesStore(t *testing.T) {
	m := NewSessionManager()

	var stores []tracking.SessionStore
	handler := Session(m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stores = append(stores, SessionFromContext(r.Context()))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "skyline_session" {
		t.Fatalf("expected session cookie, got %v", cookies)
	}
	if stores[0] == nil {
		t.Fatal("expected session store in context")
	}

	stores[0].Set("visited:2024-03-01")

	// Second request presents the cookie and must see the same flags.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !stores[1].Get("visited:2024-03-01") {
		t.Fatal("expected flag to survive across requests in the same session")
	}
}

func TestSessionFromContextWithoutMiddleware(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := SessionFromContext(r.Context()); got != nil {
		t.Fatalf("expected nil session, got %v", got)
	}
}

package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"skyline/internal/domain"
)

func TestGetSettingsResolvesImageURLs(t *testing.T) {
	app := newTestApp()
	app.Settings = &fakeSettingsRepo{settings: &domain.SiteSettings{
		SiteName:       "Skyline Construction",
		Logo:           "images/logo.png",
		HeroBackground: "images/hero.jpg",
	}}

	rec := httptest.NewRecorder()
	app.GetSettings(rec, httptest.NewRequest("GET", "/v1/settings", nil))

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		SiteName       string `json:"site_name"`
		Logo           string `json:"logo"`
		HeroBackground string `json:"hero_background"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.SiteName != "Skyline Construction" {
		t.Fatalf("unexpected site name %q", body.SiteName)
	}
	if body.Logo != "https://cdn.example.com/images/logo.png" {
		t.Fatalf("expected resolved logo URL, got %q", body.Logo)
	}
	if body.HeroBackground != "https://cdn.example.com/images/hero.jpg" {
		t.Fatalf("expected resolved hero URL, got %q", body.HeroBackground)
	}
}

func TestGetSettingsMissing(t *testing.T) {
	app := newTestApp()
	app.Settings = &fakeSettingsRepo{}

	rec := httptest.NewRecorder()
	app.GetSettings(rec, httptest.NewRequest("GET", "/v1/settings", nil))

	if rec.Code != 404 {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

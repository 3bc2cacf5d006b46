package handlers

import (
	"errors"
	"net/http"

	"skyline/internal/domain"
)

// GetSettings returns the site-wide content block. Image fields are resolved
// to full URLs through the media storage.
func (a *App) GetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := a.Settings.Get(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrSettingsMissing) {
			a.error(w, http.StatusNotFound, "not_found", "site settings have not been configured")
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to load settings")
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"site_name":       s.SiteName,
		"tagline":         s.Tagline,
		"description":     s.Description,
		"phone_primary":   s.PhonePrimary,
		"email_primary":   s.EmailPrimary,
		"address_line":    s.AddressLine,
		"city":            s.City,
		"region":          s.Region,
		"latitude":        s.Latitude,
		"longitude":       s.Longitude,
		"facebook_url":    s.FacebookURL,
		"instagram_url":   s.InstagramURL,
		"linkedin_url":    s.LinkedInURL,
		"twitter_url":     s.TwitterURL,
		"business_hours":  s.BusinessHours,
		"logo":            a.Store.URL(s.Logo),
		"hero_background": a.Store.URL(s.HeroBackground),
		"hero_title":      s.HeroTitle,
		"hero_subtitle":   s.HeroSubtitle,
		"analytics_id":    s.AnalyticsID,
	})
}

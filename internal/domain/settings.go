package domain

import "time"

// SiteSettings is the singleton record of site-wide content: contact details,
// social links and hero imagery. Image fields hold storage names resolvable
// through the media storage.
type SiteSettings struct {
	ID             int64
	SiteName       string
	Tagline        string
	Description    string
	PhonePrimary   string
	EmailPrimary   string
	AddressLine    string
	City           string
	Region         string
	Latitude       *float64
	Longitude      *float64
	FacebookURL    string
	InstagramURL   string
	LinkedInURL    string
	TwitterURL     string
	BusinessHours  string
	Logo           string
	HeroBackground string
	HeroTitle      string
	HeroSubtitle   string
	AnalyticsID    string
	UpdatedAt      time.Time
}

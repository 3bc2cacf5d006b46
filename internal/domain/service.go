package domain

import "time"

// ServiceCategory groups services for listing pages.
type ServiceCategory struct {
	ID        int64
	Name      string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Service represents one offered construction service.
type Service struct {
	ID          int64
	CategoryID  *int64
	Name        string
	Slug        string
	Summary     string
	Description string
	Icon        string
	Image       string
	Featured    bool
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

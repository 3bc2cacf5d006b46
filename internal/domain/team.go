package domain

import "time"

// TeamMember is shown on the about page.
type TeamMember struct {
	ID        int64
	Name      string
	Role      string
	Bio       string
	Photo     string
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Testimonial is a client quote shown on the public site.
type Testimonial struct {
	ID        int64
	Name      string
	Company   string
	Quote     string
	Rating    int
	Photo     string
	Approved  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

package domain

import "time"

// ProjectStatus enumerates the lifecycle states of a construction project.
type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "planning"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectOnHold     ProjectStatus = "on_hold"
)

// ProjectCategory groups projects for listing pages.
type ProjectCategory struct {
	ID        int64
	Name      string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Project represents a portfolio project shown on the public site.
type Project struct {
	ID          int64
	CategoryID  *int64
	Title       string
	Slug        string
	Summary     string
	Description string
	Client      string
	Location    string
	Status      ProjectStatus
	Featured    bool
	CoverImage  string
	StartedAt   *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

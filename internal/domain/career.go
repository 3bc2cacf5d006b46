package domain

import "time"

// PositionStatus enumerates whether a job posting accepts applications.
type PositionStatus string

const (
	PositionOpen   PositionStatus = "open"
	PositionClosed PositionStatus = "closed"
)

// ApplicationStatus tracks a job application through review.
type ApplicationStatus string

const (
	ApplicationNew         ApplicationStatus = "new"
	ApplicationReview      ApplicationStatus = "review"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationHired       ApplicationStatus = "hired"
)

// Department groups job positions.
type Department struct {
	ID        int64
	Name      string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// JobPosition is a published job opening.
type JobPosition struct {
	ID             int64
	DepartmentID   *int64
	Title          string
	Slug           string
	Summary        string
	Description    string
	Location       string
	EmploymentType string
	Status         PositionStatus
	Deadline       *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// JobApplication is a submitted application for a position. ResumeName holds
// the storage name returned by the media storage when the resume was saved.
type JobApplication struct {
	ID          int64
	PositionID  int64
	FullName    string
	Email       string
	Phone       string
	CoverLetter string
	ResumeName  string
	Status      ApplicationStatus
	Country     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

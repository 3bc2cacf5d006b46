package domain

import (
	"context"
	"time"
)

// MetricsRepository persists daily counters. Increment is the only write path
// for counter values during normal operation and must be atomic under
// concurrent callers; Reset exists for explicit administrative use.
type MetricsRepository interface {
	Increment(ctx context.Context, name string, day time.Time) error
	SumRange(ctx context.Context, name string, from, to time.Time) (float64, error)
	SeriesRange(ctx context.Context, name string, from, to time.Time) ([]MetricPoint, error)
	Reset(ctx context.Context, name string, day time.Time) error
}

// ProjectRepository defines persistence for projects and their categories.
type ProjectRepository interface {
	List(ctx context.Context, categorySlug string, featuredOnly bool, limit, offset int) ([]Project, error)
	GetBySlug(ctx context.Context, slug string) (*Project, error)
	Create(ctx context.Context, p *Project) error
	ListCategories(ctx context.Context) ([]ProjectCategory, error)
	CreateCategory(ctx context.Context, c *ProjectCategory) error
}

// ServiceRepository defines persistence for services and their categories.
type ServiceRepository interface {
	List(ctx context.Context, featuredOnly bool) ([]Service, error)
	GetBySlug(ctx context.Context, slug string) (*Service, error)
	Create(ctx context.Context, s *Service) error
	ListCategories(ctx context.Context) ([]ServiceCategory, error)
}

// PostRepository defines persistence for blog posts.
type PostRepository interface {
	ListPublished(ctx context.Context, limit, offset int) ([]BlogPost, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*BlogPost, error)
	IncrementViews(ctx context.Context, id int64) error
	Create(ctx context.Context, p *BlogPost) error
	ListCategories(ctx context.Context) ([]BlogCategory, error)
}

// CareerRepository defines persistence for departments, job positions and
// applications. ListOpenPositions filters deadlines against the caller's
// local day so the listing and the apply check agree on the cutoff.
type CareerRepository interface {
	ListOpenPositions(ctx context.Context, today time.Time) ([]JobPosition, error)
	GetPositionBySlug(ctx context.Context, slug string) (*JobPosition, error)
	CreateApplication(ctx context.Context, app *JobApplication) error
	ListDepartments(ctx context.Context) ([]Department, error)
}

// TeamRepository defines persistence for team members and testimonials.
type TeamRepository interface {
	ListMembers(ctx context.Context) ([]TeamMember, error)
	CreateMember(ctx context.Context, m *TeamMember) error
	ListTestimonials(ctx context.Context) ([]Testimonial, error)
	CreateTestimonial(ctx context.Context, tm *Testimonial) error
}

// InquiryRepository defines persistence for contact inquiries.
type InquiryRepository interface {
	Create(ctx context.Context, in *ContactInquiry) error
	List(ctx context.Context, status InquiryStatus, limit, offset int) ([]ContactInquiry, error)
	UpdateStatus(ctx context.Context, id int64, status InquiryStatus) error
}

// SettingsRepository loads and stores the singleton site settings row.
type SettingsRepository interface {
	Get(ctx context.Context) (*SiteSettings, error)
	Upsert(ctx context.Context, s *SiteSettings) error
}

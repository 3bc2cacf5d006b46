package repo

import (
	"context"

	"skyline/internal/domain"
	"skyline/internal/infra"
	"skyline/internal/sqlinline"
)

// TeamRepositoryPG implements domain.TeamRepository using PostgreSQL.
type TeamRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewTeamRepository constructs the repository.
func NewTeamRepository(sql infra.SQLExecutor) *TeamRepositoryPG {
	return &TeamRepositoryPG{sql: sql}
}

func (r *TeamRepositoryPG) ListMembers(ctx context.Context) ([]domain.TeamMember, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListTeamMembers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.TeamMember
	for rows.Next() {
		var m domain.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.Bio, &m.Photo, &m.SortOrder, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *TeamRepositoryPG) CreateMember(ctx context.Context, m *domain.TeamMember) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertTeamMember, m.Name, m.Role, m.Bio, m.Photo, m.SortOrder)
	return row.Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

func (r *TeamRepositoryPG) ListTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListTestimonials)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var testimonials []domain.Testimonial
	for rows.Next() {
		var tm domain.Testimonial
		if err := rows.Scan(&tm.ID, &tm.Name, &tm.Company, &tm.Quote, &tm.Rating, &tm.Photo, &tm.Approved, &tm.CreatedAt, &tm.UpdatedAt); err != nil {
			return nil, err
		}
		testimonials = append(testimonials, tm)
	}
	return testimonials, rows.Err()
}

func (r *TeamRepositoryPG) CreateTestimonial(ctx context.Context, tm *domain.Testimonial) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertTestimonial, tm.Name, tm.Company, tm.Quote, tm.Rating, tm.Photo, tm.Approved)
	return row.Scan(&tm.ID, &tm.CreatedAt, &tm.UpdatedAt)
}

var _ domain.TeamRepository = (*TeamRepositoryPG)(nil)

package repo

import (
	"context"
	"time"

	"skyline/internal/domain"
	"skyline/internal/infra"
	"skyline/internal/sqlinline"
)

// CareerRepositoryPG implements domain.CareerRepository using PostgreSQL.
type CareerRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewCareerRepository constructs the repository.
func NewCareerRepository(sql infra.SQLExecutor) *CareerRepositoryPG {
	return &CareerRepositoryPG{sql: sql}
}

func (r *CareerRepositoryPG) ListOpenPositions(ctx context.Context, today time.Time) ([]domain.JobPosition, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListOpenPositions, today.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var positions []domain.JobPosition
	for rows.Next() {
		var p domain.JobPosition
		if err := rows.Scan(
			&p.ID, &p.DepartmentID, &p.Title, &p.Slug, &p.Summary, &p.Description,
			&p.Location, &p.EmploymentType, &p.Status, &p.Deadline,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}
	return positions, rows.Err()
}

func (r *CareerRepositoryPG) GetPositionBySlug(ctx context.Context, slug string) (*domain.JobPosition, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectPositionBySlug, slug)
	var p domain.JobPosition
	if err := row.Scan(
		&p.ID, &p.DepartmentID, &p.Title, &p.Slug, &p.Summary, &p.Description,
		&p.Location, &p.EmploymentType, &p.Status, &p.Deadline,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *CareerRepositoryPG) CreateApplication(ctx context.Context, app *domain.JobApplication) error {
	if app.Status == "" {
		app.Status = domain.ApplicationNew
	}
	row := r.sql.QueryRow(ctx, sqlinline.QInsertApplication,
		app.PositionID, app.FullName, app.Email, app.Phone, app.CoverLetter,
		app.ResumeName, string(app.Status), app.Country,
	)
	return row.Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)
}

func (r *CareerRepositoryPG) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListDepartments)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []domain.Department
	for rows.Next() {
		var d domain.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Slug, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

var _ domain.CareerRepository = (*CareerRepositoryPG)(nil)

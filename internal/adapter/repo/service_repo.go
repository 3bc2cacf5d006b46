package repo

import (
	"context"

	"skyline/internal/domain"
	"skyline/internal/infra"
	"skyline/internal/sqlinline"
)

// ServiceRepositoryPG implements domain.ServiceRepository using PostgreSQL.
type ServiceRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewServiceRepository constructs the repository.
func NewServiceRepository(sql infra.SQLExecutor) *ServiceRepositoryPG {
	return &ServiceRepositoryPG{sql: sql}
}

func (r *ServiceRepositoryPG) List(ctx context.Context, featuredOnly bool) ([]domain.Service, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListServices, featuredOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []domain.Service
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(
			&s.ID, &s.CategoryID, &s.Name, &s.Slug, &s.Summary, &s.Description,
			&s.Icon, &s.Image, &s.Featured, &s.SortOrder, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

func (r *ServiceRepositoryPG) GetBySlug(ctx context.Context, slug string) (*domain.Service, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectServiceBySlug, slug)
	var s domain.Service
	if err := row.Scan(
		&s.ID, &s.CategoryID, &s.Name, &s.Slug, &s.Summary, &s.Description,
		&s.Icon, &s.Image, &s.Featured, &s.SortOrder, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *ServiceRepositoryPG) Create(ctx context.Context, s *domain.Service) error {
	if s.Slug == "" {
		s.Slug = domain.Slugify(s.Name)
	}
	row := r.sql.QueryRow(ctx, sqlinline.QInsertService,
		s.CategoryID, s.Name, s.Slug, s.Summary, s.Description, s.Icon, s.Image,
		s.Featured, s.SortOrder,
	)
	return row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *ServiceRepositoryPG) ListCategories(ctx context.Context) ([]domain.ServiceCategory, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListServiceCategories)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.ServiceCategory
	for rows.Next() {
		var c domain.ServiceCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

var _ domain.ServiceRepository = (*ServiceRepositoryPG)(nil)

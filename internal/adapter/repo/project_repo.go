package repo

import (
	"context"

	"skyline/internal/domain"
	"skyline/internal/infra"
	"skyline/internal/sqlinline"
)

// ProjectRepositoryPG implements domain.ProjectRepository using PostgreSQL.
type ProjectRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewProjectRepository constructs the repository.
func NewProjectRepository(sql infra.SQLExecutor) *ProjectRepositoryPG {
	return &ProjectRepositoryPG{sql: sql}
}

func (r *ProjectRepositoryPG) List(ctx context.Context, categorySlug string, featuredOnly bool, limit, offset int) ([]domain.Project, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.sql.Query(ctx, sqlinline.QListProjects, categorySlug, featuredOnly, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(
			&p.ID, &p.CategoryID, &p.Title, &p.Slug, &p.Summary, &p.Description,
			&p.Client, &p.Location, &p.Status, &p.Featured, &p.CoverImage,
			&p.StartedAt, &p.CompletedAt, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *ProjectRepositoryPG) GetBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectProjectBySlug, slug)
	var p domain.Project
	if err := row.Scan(
		&p.ID, &p.CategoryID, &p.Title, &p.Slug, &p.Summary, &p.Description,
		&p.Client, &p.Location, &p.Status, &p.Featured, &p.CoverImage,
		&p.StartedAt, &p.CompletedAt, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create inserts the project, generating a slug from the title when blank.
func (r *ProjectRepositoryPG) Create(ctx context.Context, p *domain.Project) error {
	if p.Slug == "" {
		p.Slug = domain.Slugify(p.Title)
	}
	row := r.sql.QueryRow(ctx, sqlinline.QInsertProject,
		p.CategoryID, p.Title, p.Slug, p.Summary, p.Description, p.Client, p.Location,
		string(p.Status), p.Featured, p.CoverImage, p.StartedAt, p.CompletedAt,
	)
	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProjectRepositoryPG) ListCategories(ctx context.Context) ([]domain.ProjectCategory, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListProjectCategories)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.ProjectCategory
	for rows.Next() {
		var c domain.ProjectCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *ProjectRepositoryPG) CreateCategory(ctx context.Context, c *domain.ProjectCategory) error {
	if c.Slug == "" {
		c.Slug = domain.Slugify(c.Name)
	}
	row := r.sql.QueryRow(ctx, sqlinline.QInsertProjectCategory, c.Name, c.Slug)
	return row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

var _ domain.ProjectRepository = (*ProjectRepositoryPG)(nil)

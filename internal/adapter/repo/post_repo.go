package repo

import (
	"context"

	"skyline/internal/domain"
	"skyline/internal/infra"
	"skyline/internal/sqlinline"
)

// PostRepositoryPG implements domain.PostRepository using PostgreSQL.
type PostRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewPostRepository constructs the repository.
func NewPostRepository(sql infra.SQLExecutor) *PostRepositoryPG {
	return &PostRepositoryPG{sql: sql}
}

func (r *PostRepositoryPG) ListPublished(ctx context.Context, limit, offset int) ([]domain.BlogPost, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.sql.Query(ctx, sqlinline.QListPublishedPosts, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.BlogPost
	for rows.Next() {
		var p domain.BlogPost
		if err := rows.Scan(
			&p.ID, &p.CategoryID, &p.Title, &p.Slug, &p.Excerpt, &p.Body,
			&p.CoverImage, &p.Author, &p.Status, &p.ViewCount, &p.PublishedAt,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *PostRepositoryPG) GetPublishedBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectPublishedPostBySlug, slug)
	var p domain.BlogPost
	if err := row.Scan(
		&p.ID, &p.CategoryID, &p.Title, &p.Slug, &p.Excerpt, &p.Body,
		&p.CoverImage, &p.Author, &p.Status, &p.ViewCount, &p.PublishedAt,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// IncrementViews bumps the read counter inside the database.
func (r *PostRepositoryPG) IncrementViews(ctx context.Context, id int64) error {
	_, err := r.sql.Exec(ctx, sqlinline.QIncrementPostViews, id)
	return err
}

func (r *PostRepositoryPG) Create(ctx context.Context, p *domain.BlogPost) error {
	if p.Slug == "" {
		p.Slug = domain.Slugify(p.Title)
	}
	row := r.sql.QueryRow(ctx, sqlinline.QInsertPost,
		p.CategoryID, p.Title, p.Slug, p.Excerpt, p.Body, p.CoverImage, p.Author,
		string(p.Status), p.PublishedAt,
	)
	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PostRepositoryPG) ListCategories(ctx context.Context) ([]domain.BlogCategory, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListBlogCategories)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.BlogCategory
	for rows.Next() {
		var c domain.BlogCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

var _ domain.PostRepository = (*PostRepositoryPG)(nil)

package domain

import "time"

// PostStatus enumerates publication states for blog posts.
type PostStatus string

const (
	PostDraft     PostStatus = "draft"
	PostPublished PostStatus = "published"
)

// BlogCategory groups posts for listing pages.
type BlogCategory struct {
	ID        int64
	Name      string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlogPost is a company news or insights article.
type BlogPost struct {
	ID          int64
	CategoryID  *int64
	Title       string
	Slug        string
	Excerpt     string
	Body        string
	CoverImage  string
	Author      string
	Status      PostStatus
	ViewCount   int64
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

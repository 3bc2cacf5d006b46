package sqlinline

const QListPublishedPosts = `--sql 4d7c2e91-83b0-46fa-9d15-a8e60b3f2c0d
select id, category_id, title, slug, excerpt, body, cover_image, author,
       status, view_count, published_at, created_at, updated_at
from blog_posts
where status = 'published'
order by published_at desc
limit $1::int offset $2::int;
`

const QSelectPublishedPostBySlug = `--sql f18a5d03-6c72-4eb9-b480-29d1c7e6530e
select id, category_id, title, slug, excerpt, body, cover_image, author,
       status, view_count, published_at, created_at, updated_at
from blog_posts
where slug = $1::text and status = 'published'
limit 1;
`

const QListBlogCategories = `--sql 1c86f2d9-5e04-4ab3-8f71-d29e60c5b41a
select id, name, slug, created_at, updated_at
from blog_categories
order by name asc;
`

const QIncrementPostViews = `--sql ab30f6c4-95e8-4217-8dfb-30c2a9d4e10f
update blog_posts
set view_count = view_count + 1
where id = $1::bigint;
`

const QInsertPost = `--sql 62e9b0d5-1f48-4a73-bc96-48d3e5f0a210
insert into blog_posts (
  category_id, title, slug, excerpt, body, cover_image, author,
  status, view_count, published_at, created_at, updated_at
) values (
  $1, $2::text, $3::text, $4::text, $5::text, $6::text, $7::text,
  $8::text, 0, $9, now(), now()
) returning id, created_at, updated_at;
`

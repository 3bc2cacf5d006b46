package sqlinline

const QListServices = `--sql 2b8d9e50-4c6f-41a7-b3d2-90e1f5c7a60a
select id, category_id, name, slug, summary, description,
       icon, image, featured, sort_order, created_at, updated_at
from services
where (not $1::bool or featured)
order by sort_order asc, name asc;
`

const QListServiceCategories = `--sql 6d0b4e83-92c5-47f1-a8e6-3b517c9d2f0e
select id, name, slug, created_at, updated_at
from service_categories
order by name asc;
`

const QSelectServiceBySlug = `--sql c573f1e8-0a94-4d26-85b7-6e2d09c84f0b
select id, category_id, name, slug, summary, description,
       icon, image, featured, sort_order, created_at, updated_at
from services
where slug = $1::text
limit 1;
`

const QInsertService = `--sql 90e42ab7-d561-4f83-a9c0-17f6b3d28e0c
insert into services (
  category_id, name, slug, summary, description, icon, image,
  featured, sort_order, created_at, updated_at
) values (
  $1, $2::text, $3::text, $4::text, $5::text, $6::text, $7::text,
  $8::bool, $9::int, now(), now()
) returning id, created_at, updated_at;
`

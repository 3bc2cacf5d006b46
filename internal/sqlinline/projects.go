package sqlinline

const QListProjects = `--sql 1a6e3f80-92d4-4c1b-ae57-08b6f2d91c05
select p.id, p.category_id, p.title, p.slug, p.summary, p.description,
       p.client, p.location, p.status, p.featured, p.cover_image,
       p.started_at, p.completed_at, p.created_at, p.updated_at
from projects p
left join project_categories c on c.id = p.category_id
where ($1::text = '' or c.slug = $1::text)
  and (not $2::bool or p.featured)
order by p.created_at desc
limit $3::int offset $4::int;
`

const QSelectProjectBySlug = `--sql 6c0d82f1-3ab9-47e5-91cd-f45a07e83b06
select id, category_id, title, slug, summary, description,
       client, location, status, featured, cover_image,
       started_at, completed_at, created_at, updated_at
from projects
where slug = $1::text
limit 1;
`

const QInsertProject = `--sql e92b7a14-58cf-4063-b2a1-c7d09f16e407
insert into projects (
  category_id, title, slug, summary, description, client, location,
  status, featured, cover_image, started_at, completed_at, created_at, updated_at
) values (
  $1, $2::text, $3::text, $4::text, $5::text, $6::text, $7::text,
  $8::text, $9::bool, $10::text, $11, $12, now(), now()
) returning id, created_at, updated_at;
`

const QListProjectCategories = `--sql 04f5c3d8-6e17-4a92-8b60-d13e58a9cf08
select id, name, slug, created_at, updated_at
from project_categories
order by name asc;
`

const QInsertProjectCategory = `--sql 79a0e5b6-21d3-4f48-9e7c-35b8d4f61a09
insert into project_categories (name, slug, created_at, updated_at)
values ($1::text, $2::text, now(), now())
on conflict (slug) do update set name = excluded.name, updated_at = now()
returning id, created_at, updated_at;
`

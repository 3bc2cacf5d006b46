package sqlinline

const QListTeamMembers = `--sql 5e27c9b4-06d1-4f38-82a5-94c0e6f3db14
select id, name, role, bio, photo, sort_order, created_at, updated_at
from team_members
order by sort_order asc, name asc;
`

const QInsertTeamMember = `--sql 81f6a2d0-73c5-4e91-b04d-26a8f5e9c715
insert into team_members (name, role, bio, photo, sort_order, created_at, updated_at)
values ($1::text, $2::text, $3::text, $4::text, $5::int, now(), now())
returning id, created_at, updated_at;
`

const QListTestimonials = `--sql 9a4e0c83-5f12-47d6-b8e9-03d7c1a6f416
select id, name, company, quote, rating, photo, approved, created_at, updated_at
from testimonials
where approved
order by created_at desc;
`

const QInsertTestimonial = `--sql 28c7f5e9-b0a4-4613-95d8-47e2b9c0d817
insert into testimonials (name, company, quote, rating, photo, approved, created_at, updated_at)
values ($1::text, $2::text, $3::text, $4::int, $5::text, $6::bool, now(), now())
returning id, created_at, updated_at;
`

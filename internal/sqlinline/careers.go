package sqlinline

// Deadline cutoffs compare against the caller-supplied day rather than the
// database server's current_date, so application timezone config decides
// where the day boundary falls.
const QListOpenPositions = `--sql 7f04d8a2-b365-49c1-8e90-52a7f1d6c311
select id, department_id, title, slug, summary, description, location,
       employment_type, status, deadline, created_at, updated_at
from job_positions
where status = 'open'
  and (deadline is null or deadline >= $1::date)
order by created_at desc;
`

const QListDepartments = `--sql e6a92f15-3b80-4dc7-9241-f58c07d3ab14
select id, name, slug, created_at, updated_at
from departments
order by name asc;
`

const QSelectPositionBySlug = `--sql 3c91e0f7-28d6-4b54-a1c8-69e4b0d72f12
select id, department_id, title, slug, summary, description, location,
       employment_type, status, deadline, created_at, updated_at
from job_positions
where slug = $1::text
limit 1;
`

const QInsertApplication = `--sql d85b3f60-41ae-4c29-97d0-7b6f28e4ca13
insert into job_applications (
  position_id, full_name, email, phone, cover_letter, resume_name,
  status, country, created_at, updated_at
) values (
  $1::bigint, $2::text, $3::text, $4::text, $5::text, $6::text,
  $7::text, $8::text, now(), now()
) returning id, created_at, updated_at;
`

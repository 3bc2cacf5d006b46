package sqlinline

const QInsertInquiry = `--sql 6b1d4f82-90ce-4a57-83b6-f5a2d7e0c918
insert into contact_inquiries (
  name, email, phone, subject, message, inquiry_type, status,
  ip_address, user_agent, country, created_at, updated_at
) values (
  $1::text, $2::text, $3::text, $4::text, $5::text, $6::text, $7::text,
  $8::text, $9::text, $10::text, now(), now()
) returning id, created_at, updated_at;
`

const QListInquiries = `--sql 0e8a6c35-d271-4b94-a5f0-18c4e9b3d619
select id, name, email, phone, subject, message, inquiry_type, status,
       ip_address, user_agent, country, created_at, updated_at
from contact_inquiries
where ($1::text = '' or status = $1::text)
order by created_at desc
limit $2::int offset $3::int;
`

const QUpdateInquiryStatus = `--sql 47d0b9e6-352f-4c18-96a7-c0e5d8f2ba1a
update contact_inquiries
set status = $2::text,
    updated_at = now()
where id = $1::bigint;
`

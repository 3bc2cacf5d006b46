package sqlinline

const QSelectSettings = `--sql bc52e7a0-4891-4d63-b0f7-3a6d9c1e5f1b
select id, site_name, tagline, description, phone_primary, email_primary,
       address_line, city, region, latitude, longitude,
       facebook_url, instagram_url, linkedin_url, twitter_url,
       business_hours, logo, hero_background, hero_title, hero_subtitle,
       analytics_id, updated_at
from site_settings
order by id asc
limit 1;
`

const QUpsertSettings = `--sql 14f8d6b3-a905-42e7-8c51-b72e0f4a9d1c
insert into site_settings (
  id, site_name, tagline, description, phone_primary, email_primary,
  address_line, city, region, latitude, longitude,
  facebook_url, instagram_url, linkedin_url, twitter_url,
  business_hours, logo, hero_background, hero_title, hero_subtitle,
  analytics_id, updated_at
) values (
  1, $1::text, $2::text, $3::text, $4::text, $5::text,
  $6::text, $7::text, $8::text, $9, $10,
  $11::text, $12::text, $13::text, $14::text,
  $15::text, $16::text, $17::text, $18::text, $19::text,
  $20::text, now()
) on conflict (id) do update set
  site_name = excluded.site_name,
  tagline = excluded.tagline,
  description = excluded.description,
  phone_primary = excluded.phone_primary,
  email_primary = excluded.email_primary,
  address_line = excluded.address_line,
  city = excluded.city,
  region = excluded.region,
  latitude = excluded.latitude,
  longitude = excluded.longitude,
  facebook_url = excluded.facebook_url,
  instagram_url = excluded.instagram_url,
  linkedin_url = excluded.linkedin_url,
  twitter_url = excluded.twitter_url,
  business_hours = excluded.business_hours,
  logo = excluded.logo,
  hero_background = excluded.hero_background,
  hero_title = excluded.hero_title,
  hero_subtitle = excluded.hero_subtitle,
  analytics_id = excluded.analytics_id,
  updated_at = now();
`

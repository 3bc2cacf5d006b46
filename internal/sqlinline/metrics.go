package sqlinline

// The visitor counter's only write path. The upsert's increment runs inside
// the database so concurrent first visits never lose updates.
const QIncrementMetric = `--sql 3f9a1c44-7b2e-4d18-9c6a-51e0b82f4a01
insert into system_metrics (metric_name, metric_date, metric_value, created_at, updated_at)
values ($1::text, $2::date, 1, now(), now())
on conflict (metric_name, metric_date)
do update set
  metric_value = system_metrics.metric_value + 1,
  updated_at = now();
`

const QSumMetricRange = `--sql 8d2be671-40c3-49fa-b7d5-9a3c1e28f602
select coalesce(sum(metric_value), 0)
from system_metrics
where metric_name = $1::text
  and metric_date between $2::date and $3::date;
`

const QSeriesMetricRange = `--sql b41f0d92-6a85-4e07-8c33-2f7d94a1be03
select metric_date, metric_value
from system_metrics
where metric_name = $1::text
  and metric_date between $2::date and $3::date
order by metric_date asc;
`

const QResetMetric = `--sql 57c8aa30-1d9f-4b62-a0e8-6cd431f97b04
update system_metrics
set metric_value = 0,
    updated_at = now()
where metric_name = $1::text
  and metric_date = $2::date;
`

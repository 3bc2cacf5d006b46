package repo

import (
	"context"
	"time"

	"skyline/internal/domain"
	"skyline/internal/infra"
	"skyline/internal/sqlinline"
)

// MetricsRepositoryPG implements domain.MetricsRepository using PostgreSQL.
// The increment is a single upsert so the counter row is race-safe under
// concurrent requests; application code never reads then writes the value.
type MetricsRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewMetricsRepository constructs the repository.
func NewMetricsRepository(sql infra.SQLExecutor) *MetricsRepositoryPG {
	return &MetricsRepositoryPG{sql: sql}
}

// Increment atomically creates-or-bumps the counter row for (name, day).
func (r *MetricsRepositoryPG) Increment(ctx context.Context, name string, day time.Time) error {
	_, err := r.sql.Exec(ctx, sqlinline.QIncrementMetric, name, day.Format("2006-01-02"))
	return err
}

// SumRange returns the total counter value across [from, to] inclusive.
func (r *MetricsRepositoryPG) SumRange(ctx context.Context, name string, from, to time.Time) (float64, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSumMetricRange,
		name, from.Format("2006-01-02"), to.Format("2006-01-02"))
	var total float64
	if err := row.Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// SeriesRange returns one point per day in [from, to], zero-filling days
// without a stored row.
func (r *MetricsRepositoryPG) SeriesRange(ctx context.Context, name string, from, to time.Time) ([]domain.MetricPoint, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QSeriesMetricRange,
		name, from.Format("2006-01-02"), to.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stored := make(map[string]float64)
	for rows.Next() {
		var day time.Time
		var value float64
		if err := rows.Scan(&day, &value); err != nil {
			return nil, err
		}
		stored[day.Format("2006-01-02")] = value
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	from = truncateDay(from)
	to = truncateDay(to)
	var series []domain.MetricPoint
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		series = append(series, domain.MetricPoint{Date: d, Value: stored[d.Format("2006-01-02")]})
	}
	return series, nil
}

// Reset sets a day's counter back to 0. Administrative use only.
func (r *MetricsRepositoryPG) Reset(ctx context.Context, name string, day time.Time) error {
	_, err := r.sql.Exec(ctx, sqlinline.QResetMetric, name, day.Format("2006-01-02"))
	return err
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

var _ domain.MetricsRepository = (*MetricsRepositoryPG)(nil)

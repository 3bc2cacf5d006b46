package domain

import "time"

// MetricVisitors is the metric name under which daily site visits are counted.
const MetricVisitors = "visitors"

// SystemMetric stores one named counter value for one calendar day.
// (name, date) is unique; the value only moves through atomic increments
// except for explicit administrative resets.
type SystemMetric struct {
	ID        int64
	Name      string
	Date      time.Time
	Value     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MetricPoint is one day of a metric series. Days without a stored row are
// reported with Value 0.
type MetricPoint struct {
	Date  time.Time
	Value float64
}

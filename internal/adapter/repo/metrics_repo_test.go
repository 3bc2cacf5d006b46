package repo

import (
	"context"
	"strings"
	"testing"
	"time"

	"skyline/internal/domain"
	"skyline/internal/sqlinline"
)

func TestMetricsIncrementUsesAtomicUpsert(t *testing.T) {
	exec := &fakeExec{}
	r := NewMetricsRepository(exec)

	day := time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC)
	if err := r.Increment(context.Background(), domain.MetricVisitors, day); err != nil {
		t.Fatalf("Increment error: %v", err)
	}

	if len(exec.execQueries) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(exec.execQueries))
	}
	query := exec.execQueries[0]
	if query != sqlinline.QIncrementMetric {
		t.Fatalf("unexpected query: %s", query)
	}
	if !strings.Contains(query, "metric_value = system_metrics.metric_value + 1") {
		t.Fatal("increment must happen inside the database, not in application code")
	}
	args := exec.execArgs[0]
	if args[0] != "visitors" || args[1] != "2024-03-01" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestMetricsSumRange(t *testing.T) {
	exec := &fakeExec{rowScan: scanInto(float64(42))}
	r := NewMetricsRepository(exec)

	from := time.Date(2024, 2, 24, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	total, err := r.SumRange(context.Background(), "visitors", from, to)
	if err != nil {
		t.Fatalf("SumRange error: %v", err)
	}
	if total != 42 {
		t.Fatalf("total = %v, want 42", total)
	}
	args := exec.execArgs[0]
	if args[1] != "2024-02-24" || args[2] != "2024-03-01" {
		t.Fatalf("unexpected range args: %v", args)
	}
}

func TestMetricsSeriesRangeZeroFillsMissingDays(t *testing.T) {
	day1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	day3 := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
	exec := &fakeExec{queryRows: []func(dest ...any) error{
		scanInto(day1, float64(3)),
		scanInto(day3, float64(7)),
	}}
	r := NewMetricsRepository(exec)

	from := day1
	to := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	series, err := r.SeriesRange(context.Background(), "visitors", from, to)
	if err != nil {
		t.Fatalf("SeriesRange error: %v", err)
	}

	want := []float64{3, 0, 7, 0, 0}
	if len(series) != len(want) {
		t.Fatalf("series length = %d, want %d", len(series), len(want))
	}
	for i, point := range series {
		if point.Value != want[i] {
			t.Fatalf("series[%d] = %v, want %v", i, point.Value, want[i])
		}
		wantDay := from.AddDate(0, 0, i)
		if !point.Date.Equal(wantDay) {
			t.Fatalf("series[%d] date = %v, want %v", i, point.Date, wantDay)
		}
	}
}

func TestMetricsReset(t *testing.T) {
	exec := &fakeExec{}
	r := NewMetricsRepository(exec)

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if err := r.Reset(context.Background(), "visitors", day); err != nil {
		t.Fatalf("Reset error: %v", err)
	}
	if !strings.Contains(exec.execQueries[0], "set metric_value = 0") {
		t.Fatalf("unexpected reset query: %s", exec.execQueries[0])
	}
}

package handlers

import (
	"net/http"
	"strconv"

	"skyline/internal/domain"
)

// VisitorStats reports the visitor counter for the admin dashboard: today's
// count, rolling 7 and 30 day totals, and a zero-filled daily series.
func (a *App) VisitorStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	today := a.today()

	days := 30
	if v, err := strconv.Atoi(r.URL.Query().Get("days")); err == nil && v > 0 && v <= 365 {
		days = v
	}

	todayCount, err := a.Metrics.SumRange(ctx, domain.MetricVisitors, today, today)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load visitor stats")
		return
	}
	week, err := a.Metrics.SumRange(ctx, domain.MetricVisitors, today.AddDate(0, 0, -6), today)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load visitor stats")
		return
	}
	month, err := a.Metrics.SumRange(ctx, domain.MetricVisitors, today.AddDate(0, 0, -29), today)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load visitor stats")
		return
	}
	series, err := a.Metrics.SeriesRange(ctx, domain.MetricVisitors, today.AddDate(0, 0, -(days-1)), today)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load visitor stats")
		return
	}

	points := make([]map[string]any, 0, len(series))
	for _, p := range series {
		points = append(points, map[string]any{
			"date":  p.Date.Format("2006-01-02"),
			"value": p.Value,
		})
	}
	a.json(w, http.StatusOK, map[string]any{
		"today":        todayCount,
		"last_7_days":  week,
		"last_30_days": month,
		"series":       points,
	})
}

// ResetVisitors zeroes today's visitor counter.
func (a *App) ResetVisitors(w http.ResponseWriter, r *http.Request) {
	today := a.today()
	if err := a.Metrics.Reset(r.Context(), domain.MetricVisitors, today); err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to reset visitor counter")
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"metric": domain.MetricVisitors,
		"date":   today.Format("2006-01-02"),
		"value":  0,
	})
}

package kpifolio

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// ForecastRow is the aggregated forecast-vs-actual for one project at
// one forecast date.
type ForecastRow struct {
	ProjectID       string  `json:"project_id"`
	ForecastDate    Date    `json:"forecast_date"`
	Forecast        Money   `json:"forecast_amount"`
	Actual          Money   `json:"actual_amount"`
	Variance        Money   `json:"variance"`         // actual - forecast
	VariancePercent Percent `json:"variance_percent"` // undefined when the forecast sum is zero
}

// ForecastReport is the forecast-variance analysis, grouped by
// (project, forecast date), sorted by project id then date.
type ForecastReport struct {
	Currency string        `json:"currency"`
	Rows     []ForecastRow `json:"rows"`
}

// NewForecastReport sums forecast and actual amounts per
// (project, forecast date) group. Absent amounts contribute nothing to
// their group's sums.
func (s *Store) NewForecastReport() *ForecastReport {
	type key struct {
		project string
		date    Date
	}
	type sums struct{ forecast, actual decimal.Decimal }

	groups := make(map[key]*sums)
	var order []key
	for f := range s.Forecasts() {
		k := key{f.ProjectID, f.ForecastDate}
		g, ok := groups[k]
		if !ok {
			g = &sums{}
			groups[k] = g
			order = append(order, k)
		}
		if f.ForecastAmount.Valid {
			g.forecast = g.forecast.Add(f.ForecastAmount.Decimal)
		}
		if f.ActualAmount.Valid {
			g.actual = g.actual.Add(f.ActualAmount.Decimal)
		}
	}

	slices.SortFunc(order, func(a, b key) int {
		if c := strings.Compare(a.project, b.project); c != 0 {
			return c
		}
		if a.date.Before(b.date) {
			return -1
		}
		if a.date.After(b.date) {
			return 1
		}
		return 0
	})

	report := &ForecastReport{Currency: s.currency}
	for _, k := range order {
		g := groups[k]
		variance := g.actual.Sub(g.forecast)
		report.Rows = append(report.Rows, ForecastRow{
			ProjectID:       k.project,
			ForecastDate:    k.date,
			Forecast:        s.money(g.forecast),
			Actual:          s.money(g.actual),
			Variance:        s.money(variance),
			VariancePercent: NewPercent(variance, g.forecast),
		})
	}
	return report
}

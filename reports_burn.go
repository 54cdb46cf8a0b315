package kpifolio

import (
	"github.com/shopspring/decimal"
)

// BurnRow is one calendar bucket of a project's spending pace.
type BurnRow struct {
	ProjectID  string `json:"project_id"`
	Label      string `json:"bucket"` // e.g. "2025-07" for a monthly bucket
	Bucket     Range  `json:"-"`
	Spend      Money  `json:"bucket_spend"`
	Cumulative Money  `json:"cumulative_spend"`
	// Days is the number of days from the project start to the bucket
	// end, inclusive. PerDay is meaningful only when Days is positive.
	Days   int   `json:"elapsed_days"`
	PerDay Money `json:"burn_rate_per_day"`
}

// BurnReport is the spending-pace analysis: per project, per calendar
// bucket, the bucket spend, the running total and the per-day pace.
type BurnReport struct {
	Currency string    `json:"currency"`
	Period   Period    `json:"-"`
	Rows     []BurnRow `json:"rows"`
}

// NewBurnReport groups each project's spend into calendar buckets
// (Monthly is the dashboard default) and computes a running total in
// ascending bucket order, so the cumulative column never decreases.
// Entries without a date or an amount, and entries of unknown projects,
// are left out.
func (s *Store) NewBurnReport(p Period) *BurnReport {
	report := &BurnReport{Currency: s.currency, Period: p}

	for _, project := range s.sortedProjects() {
		var entries []SpendEntry
		for e := range s.SpendEntries() {
			if e.ProjectID == project.ID && e.Amount.Valid && !e.Date.IsZero() {
				entries = append(entries, e)
			}
		}
		if len(entries) == 0 {
			continue
		}

		first, last := entries[0].Date, entries[0].Date
		for _, e := range entries[1:] {
			if e.Date.Before(first) {
				first = e.Date
			}
			if e.Date.After(last) {
				last = e.Date
			}
		}

		cumulative := decimal.Zero
		for bucket := range NewRange(first, last).Periods(p) {
			spend := decimal.Zero
			for _, e := range entries {
				if bucket.Contains(e.Date) {
					spend = spend.Add(e.Amount.Decimal)
				}
			}
			if spend.IsZero() {
				continue // only buckets with activity appear in the report
			}
			cumulative = cumulative.Add(spend)

			row := BurnRow{
				ProjectID:  project.ID,
				Label:      p.Label(bucket.From),
				Bucket:     bucket,
				Spend:      s.money(spend),
				Cumulative: s.money(cumulative),
				Days:       bucket.To.DaysSince(project.StartDate) + 1,
			}
			if row.Days > 0 {
				row.PerDay = s.money(cumulative.Div(decimal.NewFromInt(int64(row.Days))))
			} else {
				row.PerDay = s.money(decimal.Zero)
			}
			report.Rows = append(report.Rows, row)
		}
	}
	return report
}

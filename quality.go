package kpifolio

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Check names, in the order ScanQuality reports them.
const (
	CheckDuplicateSpendIDs     = "duplicate-spend-ids"
	CheckDuplicateMilestones   = "duplicate-milestone-names"
	CheckDuplicateForecasts    = "duplicate-forecast-dates"
	CheckMissingValues         = "missing-required-values"
	CheckMissingManager        = "project-without-manager"
	CheckBlankCategory         = "blank-spend-category"
	CheckSpendOutliers         = "spend-outliers"
	CheckForecastDeviation     = "forecast-deviation"
	CheckProjectsNoMilestones  = "projects-without-milestones"
	CheckProjectsNoSpend       = "projects-without-spend"
)

// FindingRow points at a single record caught by a quality check.
type FindingRow struct {
	Entity EntityKind `json:"entity"`
	Key    string     `json:"id"`
	Detail string     `json:"detail"`
}

// Finding is the result of one quality check. Empty Rows is the expected
// steady state, not an error.
type Finding struct {
	Check string       `json:"check"`
	Rows  []FindingRow `json:"rows"`
}

// Clean reports whether the check found nothing.
func (f Finding) Clean() bool { return len(f.Rows) == 0 }

// ScanQuality runs the ten data-quality checks over the snapshot and
// returns exactly one finding per check, in a fixed order. Checks are
// independent: none stops on the first problem and none feeds another.
func ScanQuality(s *Store, th Thresholds) []Finding {
	return []Finding{
		{Check: CheckDuplicateSpendIDs, Rows: duplicateSpendIDs(s)},
		{Check: CheckDuplicateMilestones, Rows: duplicateMilestoneNames(s)},
		{Check: CheckDuplicateForecasts, Rows: duplicateForecastDates(s)},
		{Check: CheckMissingValues, Rows: missingValues(s)},
		{Check: CheckMissingManager, Rows: missingManager(s)},
		{Check: CheckBlankCategory, Rows: blankCategory(s)},
		{Check: CheckSpendOutliers, Rows: spendOutliers(s, th)},
		{Check: CheckForecastDeviation, Rows: forecastDeviations(s, th)},
		{Check: CheckProjectsNoMilestones, Rows: projectsWithoutMilestones(s)},
		{Check: CheckProjectsNoSpend, Rows: projectsWithoutSpend(s)},
	}
}

func duplicateSpendIDs(s *Store) []FindingRow {
	counts := make(map[string]int)
	for e := range s.SpendEntries() {
		counts[e.ID]++
	}
	var rows []FindingRow
	seen := make(map[string]bool)
	for e := range s.SpendEntries() {
		if counts[e.ID] > 1 && !seen[e.ID] {
			seen[e.ID] = true
			rows = append(rows, FindingRow{
				Entity: KindSpendEntry,
				Key:    e.ID,
				Detail: fmt.Sprintf("id appears %d times", counts[e.ID]),
			})
		}
	}
	return rows
}

func duplicateMilestoneNames(s *Store) []FindingRow {
	type key struct{ project, name string }
	counts := make(map[key]int)
	for m := range s.Milestones() {
		counts[key{m.ProjectID, m.Name}]++
	}
	var rows []FindingRow
	seen := make(map[key]bool)
	for m := range s.Milestones() {
		k := key{m.ProjectID, m.Name}
		if counts[k] > 1 && !seen[k] {
			seen[k] = true
			rows = append(rows, FindingRow{
				Entity: KindMilestone,
				Key:    m.ID,
				Detail: fmt.Sprintf("name %q appears %d times in project %q", m.Name, counts[k], m.ProjectID),
			})
		}
	}
	return rows
}

func duplicateForecastDates(s *Store) []FindingRow {
	type key struct {
		project string
		date    Date
	}
	counts := make(map[key]int)
	for f := range s.Forecasts() {
		counts[key{f.ProjectID, f.ForecastDate}]++
	}
	var rows []FindingRow
	seen := make(map[key]bool)
	for f := range s.Forecasts() {
		k := key{f.ProjectID, f.ForecastDate}
		if counts[k] > 1 && !seen[k] {
			seen[k] = true
			rows = append(rows, FindingRow{
				Entity: KindForecast,
				Key:    f.ID,
				Detail: fmt.Sprintf("project %q has %d forecasts on %s", f.ProjectID, counts[k], f.ForecastDate),
			})
		}
	}
	return rows
}

func missingValues(s *Store) []FindingRow {
	var rows []FindingRow
	missing := func(kind EntityKind, key, field string) FindingRow {
		return FindingRow{Entity: kind, Key: key, Detail: field + " is missing"}
	}
	for p := range s.Projects() {
		if !p.Budget.Valid {
			rows = append(rows, missing(KindProject, p.ID, "budget"))
		}
	}
	for e := range s.SpendEntries() {
		if !e.Amount.Valid {
			rows = append(rows, missing(KindSpendEntry, e.ID, "amount"))
		}
		if e.Category == "" {
			rows = append(rows, missing(KindSpendEntry, e.ID, "category"))
		}
	}
	for f := range s.Forecasts() {
		if !f.ForecastAmount.Valid {
			rows = append(rows, missing(KindForecast, f.ID, "forecast_amount"))
		}
		if !f.ActualAmount.Valid {
			rows = append(rows, missing(KindForecast, f.ID, "actual_amount"))
		}
	}
	return rows
}

func missingManager(s *Store) []FindingRow {
	var rows []FindingRow
	for p := range s.Projects() {
		if p.ManagerID == "" {
			rows = append(rows, FindingRow{
				Entity: KindProject,
				Key:    p.ID,
				Detail: "manager_id is missing",
			})
		}
	}
	return rows
}

func blankCategory(s *Store) []FindingRow {
	var rows []FindingRow
	for e := range s.SpendEntries() {
		if strings.TrimSpace(e.Category) == "" {
			rows = append(rows, FindingRow{
				Entity: KindSpendEntry,
				Key:    e.ID,
				Detail: "category is blank",
			})
		}
	}
	return rows
}

func spendOutliers(s *Store, th Thresholds) []FindingRow {
	// Mean of present amounts, per project.
	sums := make(map[string]decimal.Decimal)
	counts := make(map[string]int)
	for e := range s.SpendEntries() {
		if !e.Amount.Valid {
			continue
		}
		sums[e.ProjectID] = sums[e.ProjectID].Add(e.Amount.Decimal)
		counts[e.ProjectID]++
	}

	multiplier := decimal.NewFromFloat(th.OutlierMultiplier)
	var rows []FindingRow
	for e := range s.SpendEntries() {
		if !e.Amount.Valid || counts[e.ProjectID] == 0 {
			continue
		}
		mean := sums[e.ProjectID].Div(decimal.NewFromInt(int64(counts[e.ProjectID])))
		if mean.IsZero() {
			continue // a zero mean would flag every positive amount
		}
		limit := mean.Mul(multiplier)
		if e.Amount.Decimal.GreaterThan(limit) {
			rows = append(rows, FindingRow{
				Entity: KindSpendEntry,
				Key:    e.ID,
				Detail: fmt.Sprintf("amount %s exceeds %s (%sx project mean %s)",
					e.Amount.Decimal, limit, multiplier, mean.Round(2)),
			})
		}
	}
	return rows
}

func forecastDeviations(s *Store, th Thresholds) []FindingRow {
	limit := decimal.NewFromFloat(th.ForecastDeviation)
	var rows []FindingRow
	for f := range s.Forecasts() {
		gap, ok := forecastGap(f)
		if !ok {
			continue
		}
		if gap.GreaterThan(limit) {
			rows = append(rows, FindingRow{
				Entity: KindForecast,
				Key:    f.ID,
				Detail: fmt.Sprintf("forecast %s vs actual %s deviate by %s%%",
					f.ForecastAmount.Decimal, f.ActualAmount.Decimal, gap.Mul(decimal.NewFromInt(100)).Round(2)),
			})
		}
	}
	return rows
}

func projectsWithoutMilestones(s *Store) []FindingRow {
	return projectsWithout(s, "milestone", func(projectID string) bool {
		for m := range s.Milestones() {
			if m.ProjectID == projectID {
				return true
			}
		}
		return false
	})
}

func projectsWithoutSpend(s *Store) []FindingRow {
	return projectsWithout(s, "spend entry", func(projectID string) bool {
		for e := range s.SpendEntries() {
			if e.ProjectID == projectID {
				return true
			}
		}
		return false
	})
}

func projectsWithout(s *Store, what string, has func(projectID string) bool) []FindingRow {
	var rows []FindingRow
	for p := range s.Projects() {
		if !has(p.ID) {
			rows = append(rows, FindingRow{
				Entity: KindProject,
				Key:    p.ID,
				Detail: fmt.Sprintf("project has no %s", what),
			})
		}
	}
	return rows
}

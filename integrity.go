package kpifolio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ViolationKind classifies an integrity violation.
type ViolationKind int

const (
	// OrphanReference is a foreign key with no matching record.
	OrphanReference ViolationKind = iota
	// InvalidStatus is a milestone status outside the closed set.
	InvalidStatus
	// NegativeAmount is a monetary value below zero.
	NegativeAmount
	// ForecastAccuracyGap is a forecast further from its actual than the
	// configured tolerance. Informational, not a referential error.
	ForecastAccuracyGap
)

func (k ViolationKind) String() string {
	switch k {
	case OrphanReference:
		return "orphan-reference"
	case InvalidStatus:
		return "invalid-status"
	case NegativeAmount:
		return "negative-amount"
	case ForecastAccuracyGap:
		return "forecast-accuracy-gap"
	default:
		return "unknown"
	}
}

// Violation is a single integrity rule breach. Violations are data, not
// errors: the caller decides remediation.
type Violation struct {
	Kind   ViolationKind `json:"kind"`
	Entity EntityKind    `json:"entity"`
	Key    string        `json:"id"`
	Detail string        `json:"detail"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s %s %q: %s", v.Kind, v.Entity, v.Key, v.Detail)
}

// CheckIntegrity evaluates every referential and value-range rule over
// the snapshot and returns the violations in a stable order. All checks
// run unconditionally; no violation stops the following ones.
func CheckIntegrity(s *Store, th Thresholds) []Violation {
	var vs []Violation

	vs = append(vs, checkOrphans(s)...)
	vs = append(vs, checkStatuses(s)...)
	vs = append(vs, checkNegatives(s)...)
	vs = append(vs, checkForecastAccuracy(s, th)...)

	return vs
}

func checkOrphans(s *Store) []Violation {
	var vs []Violation

	orphan := func(kind EntityKind, key, projectID string) Violation {
		return Violation{
			Kind:   OrphanReference,
			Entity: kind,
			Key:    key,
			Detail: fmt.Sprintf("references unknown project %q", projectID),
		}
	}

	for e := range s.SpendEntries() {
		if s.Project(e.ProjectID) == nil {
			vs = append(vs, orphan(KindSpendEntry, e.ID, e.ProjectID))
		}
	}
	for m := range s.Milestones() {
		if s.Project(m.ProjectID) == nil {
			vs = append(vs, orphan(KindMilestone, m.ID, m.ProjectID))
		}
	}
	for f := range s.Forecasts() {
		if s.Project(f.ProjectID) == nil {
			vs = append(vs, orphan(KindForecast, f.ID, f.ProjectID))
		}
	}
	for o := range s.PurchaseOrders() {
		if s.Project(o.ProjectID) == nil {
			vs = append(vs, orphan(KindPurchaseOrder, o.ID, o.ProjectID))
		}
	}
	for c := range s.Completions() {
		if s.Project(c.ProjectID) == nil {
			vs = append(vs, orphan(KindCompletion, c.ProjectID, c.ProjectID))
		}
	}

	// A project with an empty manager id is a quality finding, not an
	// orphan; only a dangling non-empty reference lands here.
	for p := range s.Projects() {
		if p.ManagerID != "" && s.Manager(p.ManagerID) == nil {
			vs = append(vs, Violation{
				Kind:   OrphanReference,
				Entity: KindProject,
				Key:    p.ID,
				Detail: fmt.Sprintf("references unknown manager %q", p.ManagerID),
			})
		}
	}
	return vs
}

func checkStatuses(s *Store) []Violation {
	var vs []Violation
	for m := range s.Milestones() {
		if m.Status == StatusUnknown {
			vs = append(vs, Violation{
				Kind:   InvalidStatus,
				Entity: KindMilestone,
				Key:    m.ID,
				Detail: "status is not one of Completed, Delayed, OnTrack",
			})
		}
	}
	return vs
}

func checkNegatives(s *Store) []Violation {
	var vs []Violation

	negative := func(kind EntityKind, key, field string, v decimal.Decimal) Violation {
		return Violation{
			Kind:   NegativeAmount,
			Entity: kind,
			Key:    key,
			Detail: fmt.Sprintf("%s is negative: %s", field, v),
		}
	}

	for p := range s.Projects() {
		if p.Budget.Valid && p.Budget.Decimal.IsNegative() {
			vs = append(vs, negative(KindProject, p.ID, "budget", p.Budget.Decimal))
		}
	}
	for e := range s.SpendEntries() {
		if e.Amount.Valid && e.Amount.Decimal.IsNegative() {
			vs = append(vs, negative(KindSpendEntry, e.ID, "amount", e.Amount.Decimal))
		}
	}
	for f := range s.Forecasts() {
		if f.ForecastAmount.Valid && f.ForecastAmount.Decimal.IsNegative() {
			vs = append(vs, negative(KindForecast, f.ID, "forecast_amount", f.ForecastAmount.Decimal))
		}
		if f.ActualAmount.Valid && f.ActualAmount.Decimal.IsNegative() {
			vs = append(vs, negative(KindForecast, f.ID, "actual_amount", f.ActualAmount.Decimal))
		}
	}
	return vs
}

func checkForecastAccuracy(s *Store, th Thresholds) []Violation {
	var vs []Violation
	limit := decimal.NewFromFloat(th.ForecastAccuracyGap)
	for f := range s.Forecasts() {
		gap, ok := forecastGap(f)
		if !ok {
			continue
		}
		if gap.GreaterThan(limit) {
			vs = append(vs, Violation{
				Kind:   ForecastAccuracyGap,
				Entity: KindForecast,
				Key:    f.ID,
				Detail: fmt.Sprintf("forecast %s vs actual %s differ by %s%%",
					f.ForecastAmount.Decimal, f.ActualAmount.Decimal, gap.Mul(decimal.NewFromInt(100)).Round(2)),
			})
		}
	}
	return vs
}

// forecastGap returns abs(forecast-actual)/forecast. It is undefined
// (ok=false) unless both amounts are present and the forecast is positive.
func forecastGap(f Forecast) (decimal.Decimal, bool) {
	if !f.ForecastAmount.Valid || !f.ActualAmount.Valid {
		return decimal.Decimal{}, false
	}
	forecast := f.ForecastAmount.Decimal
	if !forecast.IsPositive() {
		return decimal.Decimal{}, false
	}
	gap := forecast.Sub(f.ActualAmount.Decimal).Abs().Div(forecast)
	return gap, true
}

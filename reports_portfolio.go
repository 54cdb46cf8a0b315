package kpifolio

import (
	"github.com/shopspring/decimal"
)

// OnBudgetSummary is the single-row portfolio on-budget rollup.
type OnBudgetSummary struct {
	TotalProjects   int     `json:"total_projects"`
	OnBudget        int     `json:"on_budget"`  // actual spend <= budget
	OverBudget      int     `json:"over_budget"`
	OnBudgetPercent Percent `json:"on_budget_percent"` // undefined for an empty portfolio
}

// PortfolioOnBudgetView counts projects whose recorded spend stays
// within budget. A project without a budget is measured against zero,
// so any spend puts it in the over-budget bucket.
func (s *Store) PortfolioOnBudgetView() OnBudgetSummary {
	var summary OnBudgetSummary
	for p := range s.Projects() {
		summary.TotalProjects++
		budget := decimal.Zero
		if p.Budget.Valid {
			budget = p.Budget.Decimal
		}
		if s.TotalSpend(p.ID).Amount().LessThanOrEqual(budget) {
			summary.OnBudget++
		} else {
			summary.OverBudget++
		}
	}
	summary.OnBudgetPercent = NewPercent(
		decimal.NewFromInt(int64(summary.OnBudget)),
		decimal.NewFromInt(int64(summary.TotalProjects)),
	)
	return summary
}

// OnTimeSummary is the single-row portfolio on-time rollup.
type OnTimeSummary struct {
	TotalProjects int `json:"total_projects"`
	OnTime        int `json:"on_time"`
	// Late counts both projects that finished after their planned end
	// and projects with no completion record at all.
	Late          int     `json:"late"`
	OnTimePercent Percent `json:"on_time_percent"` // undefined for an empty portfolio
}

// PortfolioOnTimeView counts projects that finished on or before their
// planned end date. A project counts on time only when a completion
// record exists and its actual end is not after the planned end; a
// missing completion record counts as late, never as excluded.
func (s *Store) PortfolioOnTimeView() OnTimeSummary {
	var summary OnTimeSummary
	for p := range s.Projects() {
		summary.TotalProjects++
		c := s.Completion(p.ID)
		if c != nil && !c.ActualEndDate.After(p.EndDate) {
			summary.OnTime++
		} else {
			summary.Late++
		}
	}
	summary.OnTimePercent = NewPercent(
		decimal.NewFromInt(int64(summary.OnTime)),
		decimal.NewFromInt(int64(summary.TotalProjects)),
	)
	return summary
}

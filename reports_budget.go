package kpifolio

import (
	"github.com/shopspring/decimal"
)

// SpendByProject returns the total recorded spend per project id.
// Projects with no entries map to zero; entries whose project is unknown
// or whose amount is absent contribute nothing.
func (s *Store) SpendByProject() map[string]Money {
	totals := make(map[string]decimal.Decimal, len(s.projects))
	for p := range s.Projects() {
		totals[p.ID] = decimal.Zero
	}
	for e := range s.SpendEntries() {
		if !e.Amount.Valid {
			continue
		}
		sum, ok := totals[e.ProjectID]
		if !ok {
			continue // orphan entry, reported by the integrity checker
		}
		totals[e.ProjectID] = sum.Add(e.Amount.Decimal)
	}

	result := make(map[string]Money, len(totals))
	for id, sum := range totals {
		result[id] = s.money(sum)
	}
	return result
}

// TotalSpend returns the total recorded spend of a single project.
func (s *Store) TotalSpend(projectID string) Money {
	sum := decimal.Zero
	for e := range s.SpendEntries() {
		if e.ProjectID == projectID && e.Amount.Valid {
			sum = sum.Add(e.Amount.Decimal)
		}
	}
	return s.money(sum)
}

// BudgetRow compares one project's budget with its recorded spend.
type BudgetRow struct {
	ProjectID       string  `json:"project_id"`
	ProjectName     string  `json:"project_name,omitempty"`
	Budget          Money   `json:"budget"`
	ActualSpend     Money   `json:"actual_spend"`
	VarianceAmount  Money   `json:"variance_amount"`  // budget - spend
	VariancePercent Percent `json:"variance_percent"` // undefined when budget is zero or absent
}

// BudgetReport is the budget-vs-actual analysis, one row per project
// sorted by project id.
type BudgetReport struct {
	Currency string      `json:"currency"`
	Rows     []BudgetRow `json:"rows"`
}

// NewBudgetReport computes budget variance for every project. A project
// without a budget keeps its row: amounts are computed against a zero
// budget while the variance percent stays undefined.
func (s *Store) NewBudgetReport() *BudgetReport {
	report := &BudgetReport{Currency: s.currency}
	for _, p := range s.sortedProjects() {
		budget := decimal.Zero
		if p.Budget.Valid {
			budget = p.Budget.Decimal
		}
		spend := s.TotalSpend(p.ID)
		variance := budget.Sub(spend.Amount())

		percent := NoPercent()
		if p.Budget.Valid {
			percent = NewPercent(variance, budget)
		}

		report.Rows = append(report.Rows, BudgetRow{
			ProjectID:       p.ID,
			ProjectName:     p.Name,
			Budget:          s.money(budget),
			ActualSpend:     spend,
			VarianceAmount:  s.money(variance),
			VariancePercent: percent,
		})
	}
	return report
}

// UtilizationRow is one project's line in the budget-utilization view.
type UtilizationRow struct {
	ProjectID          string  `json:"project_id"`
	ProjectName        string  `json:"project_name,omitempty"`
	Budget             Money   `json:"budget"`
	ActualSpend        Money   `json:"actual_spend"`
	UtilizationPercent Percent `json:"utilization_percent"`  // spend / budget, undefined when budget is zero or absent
	CostVariance       Money   `json:"cost_variance_amount"` // spend - budget
}

// BudgetUtilizationView is the per-project utilization KPI view, one row
// per project sorted by id, recomputed fresh on every call.
func (s *Store) BudgetUtilizationView() []UtilizationRow {
	var rows []UtilizationRow
	for _, p := range s.sortedProjects() {
		budget := decimal.Zero
		if p.Budget.Valid {
			budget = p.Budget.Decimal
		}
		spend := s.TotalSpend(p.ID)

		percent := NoPercent()
		if p.Budget.Valid {
			percent = NewPercent(spend.Amount(), budget)
		}

		rows = append(rows, UtilizationRow{
			ProjectID:          p.ID,
			ProjectName:        p.Name,
			Budget:             s.money(budget),
			ActualSpend:        spend,
			UtilizationPercent: percent,
			CostVariance:       s.money(spend.Amount().Sub(budget)),
		})
	}
	return rows
}

package renderer

import (
	"fmt"
	"strings"

	"kpifolio"
)

// BudgetMarkdown renders the budget-vs-actual report.
func BudgetMarkdown(report *kpifolio.BudgetReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Budget vs Actual (%s)\n\n", report.Currency)

	tbl := newTable(&b, "Project", "Budget", "Actual", "Variance", "Variance %")
	for _, row := range report.Rows {
		tbl.row(
			projectLabel(row.ProjectID, row.ProjectName),
			row.Budget.String(),
			row.ActualSpend.String(),
			row.VarianceAmount.SignedString(),
			row.VariancePercent.SignedString(),
		)
	}
	return b.String()
}

// UtilizationMarkdown renders the budget-utilization KPI view.
func UtilizationMarkdown(rows []kpifolio.UtilizationRow, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Budget Utilization (%s)\n\n", currency)

	tbl := newTable(&b, "Project", "Budget", "Actual", "Utilization", "Cost Variance")
	for _, row := range rows {
		tbl.row(
			projectLabel(row.ProjectID, row.ProjectName),
			row.Budget.String(),
			row.ActualSpend.String(),
			row.UtilizationPercent.String(),
			row.CostVariance.SignedString(),
		)
	}
	return b.String()
}

func projectLabel(id, name string) string {
	if name == "" {
		return id
	}
	return fmt.Sprintf("%s (%s)", name, id)
}

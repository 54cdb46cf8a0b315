package renderer

import (
	"fmt"
	"strings"

	"kpifolio"
)

// PortfolioMarkdown renders the two portfolio rollup views side by side.
func PortfolioMarkdown(onBudget kpifolio.OnBudgetSummary, onTime kpifolio.OnTimeSummary) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Portfolio Rollup\n\n")

	fmt.Fprint(&b, "## Projects On Budget\n\n")
	tbl := newTable(&b, "Total", "On Budget", "Over Budget", "On Budget %")
	tbl.row(
		fmt.Sprint(onBudget.TotalProjects),
		fmt.Sprint(onBudget.OnBudget),
		fmt.Sprint(onBudget.OverBudget),
		onBudget.OnBudgetPercent.String(),
	)

	fmt.Fprint(&b, "\n## Projects On Time\n\n")
	tbl = newTable(&b, "Total", "On Time", "Late or Incomplete", "On Time %")
	tbl.row(
		fmt.Sprint(onTime.TotalProjects),
		fmt.Sprint(onTime.OnTime),
		fmt.Sprint(onTime.Late),
		onTime.OnTimePercent.String(),
	)
	return b.String()
}

// KpiDefinitionsMarkdown renders the KPI catalog.
func KpiDefinitionsMarkdown(kpis []kpifolio.KpiDefinition) string {
	var b strings.Builder
	fmt.Fprint(&b, "# KPI Definitions\n\n")
	if len(kpis) == 0 {
		fmt.Fprintln(&b, "No KPI defined.")
		return b.String()
	}
	tbl := newTable(&b, "KPI", "Description", "Target")
	for _, k := range kpis {
		tbl.row(k.Name, k.Description, k.TargetThreshold)
	}
	return b.String()
}

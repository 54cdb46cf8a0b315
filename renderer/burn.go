package renderer

import (
	"fmt"
	"strings"

	"kpifolio"
)

// BurnMarkdown renders the spending-pace report, one section per project.
func BurnMarkdown(report *kpifolio.BurnReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Burn Rate, %s (%s)\n", report.Period, report.Currency)

	var tbl *table
	current := ""
	for _, row := range report.Rows {
		if row.ProjectID != current {
			current = row.ProjectID
			fmt.Fprintf(&b, "\n## %s\n\n", current)
			tbl = newTable(&b, "Bucket", "Spend", "Cumulative", "Per Day")
		}
		perDay := "-"
		if row.Days > 0 {
			perDay = row.PerDay.String()
		}
		tbl.row(row.Label, row.Spend.String(), row.Cumulative.String(), perDay)
	}
	if current == "" {
		fmt.Fprintln(&b, "\nNo spend recorded.")
	}
	return b.String()
}

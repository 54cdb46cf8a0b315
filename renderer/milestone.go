package renderer

import (
	"fmt"
	"strings"

	"kpifolio"
)

// MilestoneMarkdown renders the milestone-health report.
func MilestoneMarkdown(report *kpifolio.MilestoneReport) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Milestone Health\n\n")

	tbl := newTable(&b, "Project", "Completed", "Delayed", "In Flight", "On Time")
	for _, row := range report.Rows {
		tbl.row(
			row.ProjectID,
			fmt.Sprint(row.Completed),
			fmt.Sprint(row.Delayed),
			fmt.Sprint(row.InFlight),
			row.OnTimePercent.String(),
		)
	}
	return b.String()
}

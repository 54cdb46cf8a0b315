package renderer

import (
	"fmt"
	"strings"

	"kpifolio"
)

// ForecastMarkdown renders the forecast-variance report.
func ForecastMarkdown(report *kpifolio.ForecastReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Forecast Variance (%s)\n\n", report.Currency)

	tbl := newTable(&b, "Project", "Date", "Forecast", "Actual", "Variance", "Variance %")
	for _, row := range report.Rows {
		tbl.row(
			row.ProjectID,
			row.ForecastDate.String(),
			row.Forecast.String(),
			row.Actual.String(),
			row.Variance.SignedString(),
			row.VariancePercent.SignedString(),
		)
	}
	return b.String()
}

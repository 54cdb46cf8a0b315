package renderer

import (
	"fmt"
	"strings"

	"kpifolio"
)

// PurchaseOrderMarkdown renders the PO-vs-actual report.
func PurchaseOrderMarkdown(report *kpifolio.PurchaseOrderReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Purchase Orders vs Actual (%s)\n\n", report.Currency)

	tbl := newTable(&b, "Project", "Total PO", "Spend", "Open", "Conversion", "PO Dates", "Spend Dates")
	for _, row := range report.Rows {
		tbl.row(
			row.ProjectID,
			row.TotalPO.String(),
			row.TotalSpend.String(),
			row.OpenCommitments.SignedString(),
			row.ConversionRatio.String(),
			dateSpan(row.FirstPODate, row.LastPODate),
			dateSpan(row.FirstSpendDate, row.LastSpendDate),
		)
	}
	return b.String()
}

func dateSpan(first, last kpifolio.Date) string {
	if first.IsZero() {
		return "-"
	}
	if first == last {
		return first.String()
	}
	return first.String() + ".." + last.String()
}

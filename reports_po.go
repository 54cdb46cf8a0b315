package kpifolio

import (
	"github.com/shopspring/decimal"
)

// PurchaseOrderRow compares one project's committed purchase-order value
// with its recorded spend.
type PurchaseOrderRow struct {
	ProjectID       string  `json:"project_id"`
	TotalPO         Money   `json:"total_po"`
	TotalSpend      Money   `json:"total_spend"`
	OpenCommitments Money   `json:"open_commitments"` // total_po - total_spend
	ConversionRatio Percent `json:"conversion_ratio"` // spend / po, undefined when no PO value
	FirstPODate     Date    `json:"first_po_date"`
	LastPODate      Date    `json:"last_po_date"`
	FirstSpendDate  Date    `json:"first_spend_date"`
	LastSpendDate   Date    `json:"last_spend_date"`
}

// PurchaseOrderReport is the PO-vs-actual analysis, one row per project
// sorted by project id.
type PurchaseOrderReport struct {
	Currency string             `json:"currency"`
	Rows     []PurchaseOrderRow `json:"rows"`
}

// NewPurchaseOrderReport computes open commitments and conversion for
// every project. Dates are zero when the project has no PO or no spend.
func (s *Store) NewPurchaseOrderReport() *PurchaseOrderReport {
	report := &PurchaseOrderReport{Currency: s.currency}
	for _, p := range s.sortedProjects() {
		row := PurchaseOrderRow{ProjectID: p.ID}

		totalPO := decimal.Zero
		for o := range s.PurchaseOrders() {
			if o.ProjectID != p.ID {
				continue
			}
			if o.Amount.Valid {
				totalPO = totalPO.Add(o.Amount.Decimal)
			}
			if !o.PODate.IsZero() {
				if row.FirstPODate.IsZero() || o.PODate.Before(row.FirstPODate) {
					row.FirstPODate = o.PODate
				}
				if row.LastPODate.IsZero() || o.PODate.After(row.LastPODate) {
					row.LastPODate = o.PODate
				}
			}
		}

		for e := range s.SpendEntries() {
			if e.ProjectID != p.ID || e.Date.IsZero() {
				continue
			}
			if row.FirstSpendDate.IsZero() || e.Date.Before(row.FirstSpendDate) {
				row.FirstSpendDate = e.Date
			}
			if row.LastSpendDate.IsZero() || e.Date.After(row.LastSpendDate) {
				row.LastSpendDate = e.Date
			}
		}

		spend := s.TotalSpend(p.ID)
		row.TotalPO = s.money(totalPO)
		row.TotalSpend = spend
		row.OpenCommitments = s.money(totalPO.Sub(spend.Amount()))
		row.ConversionRatio = NewPercent(spend.Amount(), totalPO)

		report.Rows = append(report.Rows, row)
	}
	return report
}

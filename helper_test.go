package kpifolio

import (
	"testing"

	"github.com/shopspring/decimal"
)

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// d is a helper for test to create a date from a const string
func d(s string) Date { return MustParseDate(s) }

// amt is a helper for test to create a present nullable amount
func amt(v float64) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.NewFromFloat(v), Valid: true}
}

// noAmt is a helper for test to create an absent nullable amount
func noAmt() decimal.NullDecimal { return decimal.NullDecimal{} }

// newTestStore builds an EUR store from records, failing the test on error.
func newTestStore(t *testing.T, recs ...Record) *Store {
	t.Helper()
	s := NewStore("EUR")
	if err := s.Append(recs...); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	return s
}

// project is a helper for test to create a minimal valid project.
func project(id string, budget float64, manager string) Project {
	return Project{
		ID:        id,
		Name:      "Project " + id,
		Budget:    amt(budget),
		StartDate: d("2025-01-01"),
		EndDate:   d("2025-12-31"),
		ManagerID: manager,
	}
}

// spend is a helper for test to create a spend entry.
func spend(id, projectID, date string, amount float64) SpendEntry {
	return SpendEntry{
		ID:        id,
		ProjectID: projectID,
		Date:      d(date),
		Category:  "Services",
		Amount:    amt(amount),
	}
}

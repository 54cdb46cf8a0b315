package kpifolio

import (
	"testing"
)

func TestBudgetReport_VarianceScenario(t *testing.T) {
	s := newTestStore(t,
		project("p1", 1000, "m1"),
		spend("s1", "p1", "2025-01-10", 300),
		spend("s2", "p1", "2025-02-10", 900),
	)

	report := s.NewBudgetReport()
	if len(report.Rows) != 1 {
		t.Fatalf("NewBudgetReport() rows = %d, want 1", len(report.Rows))
	}
	row := report.Rows[0]

	if got, want := row.ActualSpend, EUR(1200); !got.Equal(want) {
		t.Errorf("ActualSpend = %v, want %v", got, want)
	}
	if got, want := row.VarianceAmount, EUR(-200); !got.Equal(want) {
		t.Errorf("VarianceAmount = %v, want %v", got, want)
	}
	if got, want := row.VariancePercent, Percent(-20); !got.Equal(want) {
		t.Errorf("VariancePercent = %v, want %v", got, want)
	}
}

func TestBudgetReport_ZeroBudget(t *testing.T) {
	s := newTestStore(t,
		project("p1", 0, "m1"),
		spend("s1", "p1", "2025-01-10", 100),
	)
	row := s.NewBudgetReport().Rows[0]
	if !row.VariancePercent.IsNone() {
		t.Errorf("VariancePercent = %v, want undefined for a zero budget", row.VariancePercent)
	}
	if got, want := row.VarianceAmount, EUR(-100); !got.Equal(want) {
		t.Errorf("VarianceAmount = %v, want %v", got, want)
	}
}

func TestBudgetReport_AbsentBudget(t *testing.T) {
	s := newTestStore(t,
		Project{ID: "p1", StartDate: d("2025-01-01"), EndDate: d("2025-12-31"), Budget: noAmt()},
		spend("s1", "p1", "2025-01-10", 100),
	)
	row := s.NewBudgetReport().Rows[0]
	if !row.VariancePercent.IsNone() {
		t.Errorf("VariancePercent = %v, want undefined for an absent budget", row.VariancePercent)
	}
}

func TestBudgetUtilizationView(t *testing.T) {
	s := newTestStore(t,
		project("p1", 1000, "m1"),
		project("p2", 0, "m1"),
		spend("s1", "p1", "2025-01-10", 250),
	)

	rows := s.BudgetUtilizationView()
	if len(rows) != 2 {
		t.Fatalf("BudgetUtilizationView() rows = %d, want one per project", len(rows))
	}

	if got, want := rows[0].UtilizationPercent, Percent(25); !got.Equal(want) {
		t.Errorf("UtilizationPercent[p1] = %v, want %v", got, want)
	}
	if got, want := rows[0].CostVariance, EUR(-750); !got.Equal(want) {
		t.Errorf("CostVariance[p1] = %v, want %v", got, want)
	}
	if !rows[1].UtilizationPercent.IsNone() {
		t.Errorf("UtilizationPercent[p2] = %v, want undefined for a zero budget", rows[1].UtilizationPercent)
	}
}

func TestBudgetReport_RowsSortedByProjectID(t *testing.T) {
	s := newTestStore(t,
		project("p2", 10, "m1"),
		project("p1", 10, "m1"),
	)
	rows := s.NewBudgetReport().Rows
	if rows[0].ProjectID != "p1" || rows[1].ProjectID != "p2" {
		t.Errorf("NewBudgetReport() order = %s, %s, want p1, p2", rows[0].ProjectID, rows[1].ProjectID)
	}
}

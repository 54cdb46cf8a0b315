package renderer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"kpifolio"
)

func newStore(t *testing.T, recs ...kpifolio.Record) *kpifolio.Store {
	t.Helper()
	s := kpifolio.NewStore("EUR")
	if err := s.Append(recs...); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	return s
}

func amt(v string) decimal.NullDecimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

func countPipeRows(md string) int {
	n := 0
	for _, line := range strings.Split(md, "\n") {
		if strings.HasPrefix(line, "|") && !strings.HasPrefix(line, "|:") {
			n++
		}
	}
	return n
}

func TestBudgetMarkdown(t *testing.T) {
	s := newStore(t,
		kpifolio.Manager{ID: "m1", Name: "Ada"},
		kpifolio.Project{ID: "p1", Name: "Alpha", Budget: amt("1000"), ManagerID: "m1"},
		kpifolio.SpendEntry{ID: "s1", ProjectID: "p1", Date: kpifolio.MustParseDate("2025-02-01"), Category: "Services", Amount: amt("400")},
	)
	got := BudgetMarkdown(s.NewBudgetReport())

	for _, want := range []string{"# Budget vs Actual (EUR)", "Alpha (p1)", "€1,000.00", "€400.00", "+60.00%"} {
		if !strings.Contains(got, want) {
			t.Errorf("BudgetMarkdown() missing %q in:\n%s", want, got)
		}
	}
	// header + one project row
	if got, want := countPipeRows(got), 2; got != want {
		t.Errorf("BudgetMarkdown() rows = %d, want %d", got, want)
	}
}

func TestBudgetMarkdownAbsentBudget(t *testing.T) {
	s := newStore(t, kpifolio.Project{ID: "p1", Name: "Alpha"})
	got := BudgetMarkdown(s.NewBudgetReport())

	// undefined ratio renders as a dash, the row is still there
	if !strings.Contains(got, "Alpha (p1)") {
		t.Errorf("BudgetMarkdown() missing project row in:\n%s", got)
	}
	if !strings.Contains(got, "| - |") {
		t.Errorf("BudgetMarkdown() missing dash for undefined percent in:\n%s", got)
	}
}

func TestBurnMarkdownEmpty(t *testing.T) {
	s := newStore(t, kpifolio.Project{ID: "p1", Name: "Alpha"})
	got := BurnMarkdown(s.NewBurnReport(kpifolio.Monthly))
	if !strings.Contains(got, "No spend recorded.") {
		t.Errorf("BurnMarkdown() = %q, want empty-report fallback", got)
	}
}

func TestViolationsMarkdownClean(t *testing.T) {
	got := ViolationsMarkdown(nil)
	if !strings.Contains(got, "No violation found.") {
		t.Errorf("ViolationsMarkdown(nil) = %q, want all-clear line", got)
	}
}

func TestFindingsMarkdown(t *testing.T) {
	s := newStore(t,
		kpifolio.Manager{ID: "m1", Name: "Ada"},
		kpifolio.Project{ID: "p1", Name: "Alpha", Budget: amt("1000"), ManagerID: "m1"},
	)
	findings := kpifolio.ScanQuality(s, kpifolio.DefaultThresholds())
	got := FindingsMarkdown(findings)

	// p1 has neither milestones nor spend, both checks must show up
	for _, want := range []string{kpifolio.CheckProjectsNoMilestones, kpifolio.CheckProjectsNoSpend} {
		if !strings.Contains(got, want) {
			t.Errorf("FindingsMarkdown() missing section %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "All checks passed.") {
		t.Errorf("FindingsMarkdown() reported all clean in:\n%s", got)
	}
}

func TestFindingsMarkdownAllClean(t *testing.T) {
	var findings []kpifolio.Finding
	for _, name := range []string{kpifolio.CheckDuplicateSpendIDs, kpifolio.CheckMissingValues} {
		findings = append(findings, kpifolio.Finding{Check: name})
	}
	got := FindingsMarkdown(findings)
	if !strings.Contains(got, "All checks passed.") {
		t.Errorf("FindingsMarkdown() = %q, want all-clear line", got)
	}
}

func TestPortfolioMarkdown(t *testing.T) {
	s := newStore(t,
		kpifolio.Project{ID: "p1", Name: "Alpha", Budget: amt("1000"), EndDate: kpifolio.MustParseDate("2025-06-30")},
		kpifolio.SpendEntry{ID: "s1", ProjectID: "p1", Date: kpifolio.MustParseDate("2025-02-01"), Category: "Services", Amount: amt("400")},
		kpifolio.ProjectCompletion{ProjectID: "p1", ActualEndDate: kpifolio.MustParseDate("2025-06-15")},
	)
	got := PortfolioMarkdown(s.PortfolioOnBudgetView(), s.PortfolioOnTimeView())
	for _, want := range []string{"Projects On Budget", "Projects On Time", "100.00%"} {
		if !strings.Contains(got, want) {
			t.Errorf("PortfolioMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

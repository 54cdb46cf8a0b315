package kpifolio

import (
	"testing"
)

func TestStore_Lookups(t *testing.T) {
	s := newTestStore(t,
		Manager{ID: "m1", Name: "Ada", Email: "ada@example.com"},
		project("p1", 1000, "m1"),
		ProjectCompletion{ProjectID: "p1", ActualEndDate: d("2025-11-30")},
	)

	if got := s.Project("p1"); got == nil || got.Name != "Project p1" {
		t.Errorf("Project(p1) = %v, want the declared project", got)
	}
	if got := s.Project("nope"); got != nil {
		t.Errorf("Project(nope) = %v, want nil", got)
	}
	if got := s.Manager("m1"); got == nil || got.Email != "ada@example.com" {
		t.Errorf("Manager(m1) = %v, want the declared manager", got)
	}
	if got := s.Completion("p1"); got == nil || got.ActualEndDate != d("2025-11-30") {
		t.Errorf("Completion(p1) = %v, want the declared completion", got)
	}
	if got := s.Completion("p2"); got != nil {
		t.Errorf("Completion(p2) = %v, want nil", got)
	}
}

func TestStore_SpendByProject(t *testing.T) {
	s := newTestStore(t,
		project("p1", 1000, "m1"),
		project("p2", 500, "m1"),
		spend("s1", "p1", "2025-01-10", 300),
		spend("s2", "p1", "2025-02-10", 900),
		spend("s3", "ghost", "2025-02-10", 50), // orphan, not aggregated
	)

	totals := s.SpendByProject()
	if got, want := totals["p1"], EUR(1200); !got.Equal(want) {
		t.Errorf("SpendByProject()[p1] = %v, want %v", got, want)
	}
	// A project without entries still appears, at zero.
	if got, want := totals["p2"], EUR(0); !got.Equal(want) {
		t.Errorf("SpendByProject()[p2] = %v, want %v", got, want)
	}
	if _, ok := totals["ghost"]; ok {
		t.Error("SpendByProject() aggregated an orphan entry")
	}
}

func TestStore_TotalSpendSkipsAbsentAmounts(t *testing.T) {
	s := newTestStore(t,
		project("p1", 1000, "m1"),
		spend("s1", "p1", "2025-01-10", 300),
		SpendEntry{ID: "s2", ProjectID: "p1", Date: d("2025-01-11"), Amount: noAmt()},
	)
	if got, want := s.TotalSpend("p1"), EUR(300); !got.Equal(want) {
		t.Errorf("TotalSpend(p1) = %v, want %v", got, want)
	}
}

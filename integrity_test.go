package kpifolio

import (
	"testing"
)

func countKind(vs []Violation, kind ViolationKind) int {
	n := 0
	for _, v := range vs {
		if v.Kind == kind {
			n++
		}
	}
	return n
}

func TestCheckIntegrity_OrphanManager(t *testing.T) {
	t.Run("dangling reference", func(t *testing.T) {
		s := newTestStore(t, project("p1", 1000, "ghost"))
		vs := CheckIntegrity(s, DefaultThresholds())
		if got := countKind(vs, OrphanReference); got != 1 {
			t.Fatalf("CheckIntegrity() orphan count = %d, want 1 (%v)", got, vs)
		}
		if vs[0].Entity != KindProject || vs[0].Key != "p1" {
			t.Errorf("CheckIntegrity() flagged %s %q, want project p1", vs[0].Entity, vs[0].Key)
		}
	})

	t.Run("resolved reference", func(t *testing.T) {
		s := newTestStore(t, Manager{ID: "m1"}, project("p1", 1000, "m1"))
		vs := CheckIntegrity(s, DefaultThresholds())
		if got := countKind(vs, OrphanReference); got != 0 {
			t.Errorf("CheckIntegrity() orphan count = %d, want 0 (%v)", got, vs)
		}
	})

	t.Run("empty manager is not an orphan", func(t *testing.T) {
		// An empty manager id is a quality finding, not a referential error.
		s := newTestStore(t, project("p1", 1000, ""))
		vs := CheckIntegrity(s, DefaultThresholds())
		if got := countKind(vs, OrphanReference); got != 0 {
			t.Errorf("CheckIntegrity() orphan count = %d, want 0 (%v)", got, vs)
		}
	})
}

func TestCheckIntegrity_OrphanProjectReferences(t *testing.T) {
	s := newTestStore(t,
		Manager{ID: "m1"},
		project("p1", 1000, "m1"),
		spend("s1", "ghost", "2025-01-10", 10),
		Milestone{ID: "ms1", ProjectID: "ghost", Status: StatusOnTrack},
		Forecast{ID: "f1", ProjectID: "ghost", ForecastDate: d("2025-01-01"), ForecastAmount: amt(1), ActualAmount: amt(1)},
		PurchaseOrder{ID: "po1", ProjectID: "ghost", PODate: d("2025-01-01"), Amount: amt(1)},
		ProjectCompletion{ProjectID: "ghost", ActualEndDate: d("2025-01-01")},
	)
	vs := CheckIntegrity(s, DefaultThresholds())
	if got := countKind(vs, OrphanReference); got != 5 {
		t.Errorf("CheckIntegrity() orphan count = %d, want 5 (%v)", got, vs)
	}
}

func TestCheckIntegrity_InvalidStatus(t *testing.T) {
	s := newTestStore(t,
		project("p1", 1000, ""),
		Milestone{ID: "ms1", ProjectID: "p1", Name: "kickoff", Status: StatusUnknown},
		Milestone{ID: "ms2", ProjectID: "p1", Name: "delivery", Status: StatusCompleted},
	)
	vs := CheckIntegrity(s, DefaultThresholds())
	if got := countKind(vs, InvalidStatus); got != 1 {
		t.Fatalf("CheckIntegrity() invalid status count = %d, want 1 (%v)", got, vs)
	}
}

func TestCheckIntegrity_NegativeAmounts(t *testing.T) {
	s := newTestStore(t,
		Project{ID: "p1", Budget: amt(-5), StartDate: d("2025-01-01"), EndDate: d("2025-02-01")},
		SpendEntry{ID: "s1", ProjectID: "p1", Date: d("2025-01-10"), Category: "x", Amount: amt(-1)},
		Forecast{ID: "f1", ProjectID: "p1", ForecastDate: d("2025-01-01"), ForecastAmount: amt(-2), ActualAmount: amt(-3)},
	)
	vs := CheckIntegrity(s, DefaultThresholds())
	// budget, spend amount, forecast amount and actual amount: four breaches.
	if got := countKind(vs, NegativeAmount); got != 4 {
		t.Errorf("CheckIntegrity() negative count = %d, want 4 (%v)", got, vs)
	}
}

func TestCheckIntegrity_ForecastAccuracyGap(t *testing.T) {
	s := newTestStore(t,
		project("p1", 1000, ""),
		// 10% off exactly: not a breach, the rule is strictly greater.
		Forecast{ID: "f1", ProjectID: "p1", ForecastDate: d("2025-01-01"), ForecastAmount: amt(100), ActualAmount: amt(110)},
		// 60% off: a breach.
		Forecast{ID: "f2", ProjectID: "p1", ForecastDate: d("2025-02-01"), ForecastAmount: amt(100), ActualAmount: amt(160)},
		// zero forecast: excluded from the ratio, never a division error.
		Forecast{ID: "f3", ProjectID: "p1", ForecastDate: d("2025-03-01"), ForecastAmount: amt(0), ActualAmount: amt(50)},
		// absent actual: excluded.
		Forecast{ID: "f4", ProjectID: "p1", ForecastDate: d("2025-04-01"), ForecastAmount: amt(100), ActualAmount: noAmt()},
	)
	vs := CheckIntegrity(s, DefaultThresholds())
	if got := countKind(vs, ForecastAccuracyGap); got != 1 {
		t.Fatalf("CheckIntegrity() accuracy gap count = %d, want 1 (%v)", got, vs)
	}
	var gap Violation
	for _, v := range vs {
		if v.Kind == ForecastAccuracyGap {
			gap = v
		}
	}
	if gap.Key != "f2" {
		t.Errorf("CheckIntegrity() flagged %q, want f2", gap.Key)
	}
}

func TestCheckIntegrity_AllChecksRun(t *testing.T) {
	// One breach of every kind: no check short-circuits another.
	s := newTestStore(t,
		Project{ID: "p1", Budget: amt(-5), StartDate: d("2025-01-01"), EndDate: d("2025-02-01"), ManagerID: "ghost"},
		Milestone{ID: "ms1", ProjectID: "p1", Status: StatusUnknown},
		Forecast{ID: "f1", ProjectID: "p1", ForecastDate: d("2025-01-01"), ForecastAmount: amt(100), ActualAmount: amt(200)},
	)
	vs := CheckIntegrity(s, DefaultThresholds())
	for _, kind := range []ViolationKind{OrphanReference, InvalidStatus, NegativeAmount, ForecastAccuracyGap} {
		if countKind(vs, kind) == 0 {
			t.Errorf("CheckIntegrity() reported no %s violation (%v)", kind, vs)
		}
	}
}

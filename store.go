package kpifolio

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Store is an in-memory snapshot of the eight entity kinds.
//
// A Store is built once, by an external loader, and then only read: no
// report mutates it, so any number of reports can be computed from the
// same snapshot without locking. Records are kept in insertion order;
// reports sort their own output.
type Store struct {
	currency string // reporting currency for every derived monetary figure

	managers    []Manager
	projects    []Project
	spend       []SpendEntry
	milestones  []Milestone
	forecasts   []Forecast
	orders      []PurchaseOrder
	completions []ProjectCompletion
	kpis        []KpiDefinition

	// indexes point at the first record seen for a key; duplicates stay in
	// the slices and are surfaced by the quality scanner.
	managerIndex    map[string]int
	projectIndex    map[string]int
	completionIndex map[string]int
}

// NewStore creates an empty store whose derived figures are expressed in
// the given reporting currency (e.g. "EUR").
func NewStore(currency string) *Store {
	return &Store{
		currency:        currency,
		managerIndex:    make(map[string]int),
		projectIndex:    make(map[string]int),
		completionIndex: make(map[string]int),
	}
}

// Currency returns the snapshot's reporting currency.
func (s *Store) Currency() string { return s.currency }

// money wraps a raw decimal into the reporting currency.
func (s *Store) money(v decimal.Decimal) Money { return M(v, s.currency) }

// Append adds records to the store. It accepts records of any entity
// kind, in any order; a record of an unsupported type is an error.
func (s *Store) Append(recs ...Record) error {
	for _, rec := range recs {
		switch v := rec.(type) {
		case Manager:
			if _, ok := s.managerIndex[v.ID]; !ok {
				s.managerIndex[v.ID] = len(s.managers)
			}
			s.managers = append(s.managers, v)
		case Project:
			if _, ok := s.projectIndex[v.ID]; !ok {
				s.projectIndex[v.ID] = len(s.projects)
			}
			s.projects = append(s.projects, v)
		case SpendEntry:
			s.spend = append(s.spend, v)
		case Milestone:
			s.milestones = append(s.milestones, v)
		case Forecast:
			s.forecasts = append(s.forecasts, v)
		case PurchaseOrder:
			s.orders = append(s.orders, v)
		case ProjectCompletion:
			if _, ok := s.completionIndex[v.ProjectID]; !ok {
				s.completionIndex[v.ProjectID] = len(s.completions)
			}
			s.completions = append(s.completions, v)
		case KpiDefinition:
			s.kpis = append(s.kpis, v)
		default:
			return fmt.Errorf("unsupported record type %T", rec)
		}
	}
	return nil
}

// Project returns the project declared with this id, or nil if unknown.
func (s *Store) Project(id string) *Project {
	i, ok := s.projectIndex[id]
	if !ok {
		return nil
	}
	return &s.projects[i]
}

// Manager returns the manager declared with this id, or nil if unknown.
func (s *Store) Manager(id string) *Manager {
	i, ok := s.managerIndex[id]
	if !ok {
		return nil
	}
	return &s.managers[i]
}

// Completion returns the completion record of a project, or nil when the
// project has none.
func (s *Store) Completion(projectID string) *ProjectCompletion {
	i, ok := s.completionIndex[projectID]
	if !ok {
		return nil
	}
	return &s.completions[i]
}

// Managers yields all managers in insertion order.
func (s *Store) Managers() iter.Seq[Manager] { return slices.Values(s.managers) }

// Projects yields all projects in insertion order.
func (s *Store) Projects() iter.Seq[Project] { return slices.Values(s.projects) }

// SpendEntries yields all spend entries in insertion order.
func (s *Store) SpendEntries() iter.Seq[SpendEntry] { return slices.Values(s.spend) }

// Milestones yields all milestones in insertion order.
func (s *Store) Milestones() iter.Seq[Milestone] { return slices.Values(s.milestones) }

// Forecasts yields all forecasts in insertion order.
func (s *Store) Forecasts() iter.Seq[Forecast] { return slices.Values(s.forecasts) }

// PurchaseOrders yields all purchase orders in insertion order.
func (s *Store) PurchaseOrders() iter.Seq[PurchaseOrder] { return slices.Values(s.orders) }

// Completions yields all completion records in insertion order.
func (s *Store) Completions() iter.Seq[ProjectCompletion] { return slices.Values(s.completions) }

// KpiDefinitions yields all KPI definitions in insertion order.
func (s *Store) KpiDefinitions() iter.Seq[KpiDefinition] { return slices.Values(s.kpis) }

// sortedProjects returns a copy of the projects sorted by id, the order
// every per-project report emits its rows in.
func (s *Store) sortedProjects() []Project {
	projects := slices.Clone(s.projects)
	slices.SortFunc(projects, func(a, b Project) int { return strings.Compare(a.ID, b.ID) })
	return projects
}

package kpifolio

import (
	"github.com/shopspring/decimal"
)

// EntityKind is a typed string identifying an entity record in a snapshot stream.
type EntityKind string

// Entity kinds used in the JSONL snapshot format.
const (
	KindManager       EntityKind = "manager"
	KindProject       EntityKind = "project"
	KindSpendEntry    EntityKind = "spend"
	KindMilestone     EntityKind = "milestone"
	KindForecast      EntityKind = "forecast"
	KindPurchaseOrder EntityKind = "purchase-order"
	KindCompletion    EntityKind = "completion"
	KindKpiDefinition EntityKind = "kpi"
)

// Record is the common interface of every entity held by a Store.
type Record interface {
	// Kind returns the entity kind as used in the snapshot stream.
	Kind() EntityKind
	// Key returns the record's identifier within its kind.
	Key() string
}

// Manager is a person accountable for one or more projects.
type Manager struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

func (m Manager) Kind() EntityKind { return KindManager }
func (m Manager) Key() string      { return m.ID }

// Project is the unit every other entity hangs off.
// An absent budget decodes as a null decimal; the quality scanner reports
// it and aggregates treat it as zero while ratios over it are undefined.
type Project struct {
	ID        string              `json:"id"`
	Name      string              `json:"name,omitempty"`
	Budget    decimal.NullDecimal `json:"budget"`
	StartDate Date                `json:"start_date"`
	EndDate   Date                `json:"end_date"`
	ManagerID string              `json:"manager_id,omitempty"`
}

func (p Project) Kind() EntityKind { return KindProject }
func (p Project) Key() string      { return p.ID }

// SpendEntry is a single recorded expense against a project.
type SpendEntry struct {
	ID        string              `json:"id"`
	ProjectID string              `json:"project_id"`
	Date      Date                `json:"date"`
	Category  string              `json:"category,omitempty"`
	Amount    decimal.NullDecimal `json:"amount"`
}

func (e SpendEntry) Kind() EntityKind { return KindSpendEntry }
func (e SpendEntry) Key() string      { return e.ID }

// Milestone is a dated deliverable of a project.
type Milestone struct {
	ID        string          `json:"id"`
	ProjectID string          `json:"project_id"`
	Name      string          `json:"name,omitempty"`
	DueDate   Date            `json:"due_date"`
	Status    MilestoneStatus `json:"status"`
}

func (m Milestone) Kind() EntityKind { return KindMilestone }
func (m Milestone) Key() string      { return m.ID }

// Forecast pairs a predicted amount with the amount actually observed
// for a project at a given date.
type Forecast struct {
	ID             string              `json:"id"`
	ProjectID      string              `json:"project_id"`
	ForecastDate   Date                `json:"forecast_date"`
	ForecastAmount decimal.NullDecimal `json:"forecast_amount"`
	ActualAmount   decimal.NullDecimal `json:"actual_amount"`
}

func (f Forecast) Kind() EntityKind { return KindForecast }
func (f Forecast) Key() string      { return f.ID }

// PurchaseOrder is committed-but-not-necessarily-spent value on a project.
type PurchaseOrder struct {
	ID     string              `json:"id"`
	ProjectID string           `json:"project_id"`
	PODate Date                `json:"po_date"`
	Amount decimal.NullDecimal `json:"po_amount"`
}

func (o PurchaseOrder) Kind() EntityKind { return KindPurchaseOrder }
func (o PurchaseOrder) Key() string      { return o.ID }

// ProjectCompletion records the actual end date of a finished project.
// At most one per project; its absence means the project is late or
// still running as far as the on-time rollup is concerned.
type ProjectCompletion struct {
	ProjectID     string `json:"project_id"`
	ActualEndDate Date   `json:"actual_end_date"`
}

func (c ProjectCompletion) Kind() EntityKind { return KindCompletion }
func (c ProjectCompletion) Key() string      { return c.ProjectID }

// KpiDefinition names and describes a KPI independently of any report.
type KpiDefinition struct {
	Name            string `json:"kpi_name"`
	Description     string `json:"description,omitempty"`
	TargetThreshold string `json:"target_threshold,omitempty"`
}

func (k KpiDefinition) Kind() EntityKind { return KindKpiDefinition }
func (k KpiDefinition) Key() string      { return k.Name }

package kpifolio

import (
	"github.com/shopspring/decimal"
)

// MilestoneRow is one project's milestone health.
type MilestoneRow struct {
	ProjectID string `json:"project_id"`
	Completed int    `json:"completed_count"`
	Delayed   int    `json:"delayed_count"`
	InFlight  int    `json:"inflight_count"` // status OnTrack
	// OnTimePercent is completed / (completed + delayed). In-flight
	// milestones appear in the counts but not in the ratio; it is
	// undefined when nothing has completed or been delayed yet.
	OnTimePercent Percent `json:"on_time_completion_percent"`
}

// MilestoneReport is the milestone-health analysis, one row per project
// sorted by project id.
type MilestoneReport struct {
	Rows []MilestoneRow `json:"rows"`
}

// NewMilestoneReport counts milestones per status for every project.
// Milestones with an unknown status are excluded from every count; the
// integrity checker reports them.
func (s *Store) NewMilestoneReport() *MilestoneReport {
	report := &MilestoneReport{}
	for _, p := range s.sortedProjects() {
		row := MilestoneRow{ProjectID: p.ID}
		for m := range s.Milestones() {
			if m.ProjectID != p.ID {
				continue
			}
			switch m.Status {
			case StatusCompleted:
				row.Completed++
			case StatusDelayed:
				row.Delayed++
			case StatusOnTrack:
				row.InFlight++
			}
		}
		row.OnTimePercent = NewPercent(
			decimal.NewFromInt(int64(row.Completed)),
			decimal.NewFromInt(int64(row.Completed+row.Delayed)),
		)
		report.Rows = append(report.Rows, row)
	}
	return report
}

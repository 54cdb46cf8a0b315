package kpifolio

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MilestoneStatus is the closed set of milestone lifecycle states.
type MilestoneStatus int

const (
	// StatusUnknown is assigned to any status outside the closed set (or absent).
	// It is reported by the integrity checker, not rejected at decode time.
	StatusUnknown MilestoneStatus = iota
	// StatusCompleted marks a milestone that was delivered.
	StatusCompleted
	// StatusDelayed marks a milestone that was delivered late or is overdue.
	StatusDelayed
	// StatusOnTrack marks an in-flight milestone.
	StatusOnTrack
)

func (s MilestoneStatus) String() string {
	switch s {
	case StatusCompleted:
		return "Completed"
	case StatusDelayed:
		return "Delayed"
	case StatusOnTrack:
		return "OnTrack"
	default:
		return "Unknown"
	}
}

// ParseMilestoneStatus parses a string into a MilestoneStatus.
func ParseMilestoneStatus(s string) (MilestoneStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "completed":
		return StatusCompleted, nil
	case "delayed":
		return StatusDelayed, nil
	case "ontrack", "on-track":
		return StatusOnTrack, nil
	default:
		return StatusUnknown, fmt.Errorf("unknown milestone status: %q", s)
	}
}

func (s MilestoneStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON is lenient: an unparseable status decodes to StatusUnknown
// so that the integrity checker, not the decoder, reports it.
func (s *MilestoneStatus) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := ParseMilestoneStatus(str)
	if err != nil {
		*s = StatusUnknown
		return nil
	}
	*s = parsed
	return nil
}

package kpifolio

import (
	"fmt"
	"strings"
)

// Period is a calendar bucketing unit used by the burn-rate report.
type Period int

const (
	Monthly Period = iota
	Quarterly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		return "periodic"
	}
}

// Label returns the short bucket label for a date within the period
// (e.g. "2025-07" for a monthly bucket).
func (p Period) Label(d Date) string {
	switch p {
	case Monthly:
		return d.Format("2006-01")
	case Quarterly:
		quarter := (d.Month()-1)/3 + 1
		return fmt.Sprintf("%d-Q%d", d.Year(), quarter)
	case Yearly:
		return d.Format("2006")
	default:
		return d.String()
	}
}

// Range returns a Range for the given period containing the date d.
func (p Period) Range(d Date) Range {
	return Range{From: d.StartOf(p), To: d.EndOf(p)}
}

func ParsePeriod(p string) (Period, error) {
	p = strings.ToLower(strings.TrimSpace(p))
	switch p {
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Monthly, fmt.Errorf("unknown period %s", p)
	}
}

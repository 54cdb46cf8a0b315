package kpifolio

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Percent is a ratio expressed in percentage points (e.g. 5 for 5%).
// An undefined ratio (division by zero) is NaN, formatted as "-" and
// marshaled as JSON null; it never raises an arithmetic error.
type Percent float64

// NoPercent is the undefined ratio, used when a denominator is zero.
func NoPercent() Percent { return Percent(math.NaN()) }

// NewPercent returns 100*num/den, or the undefined percent when den is zero.
func NewPercent(num, den decimal.Decimal) Percent {
	if den.IsZero() {
		return NoPercent()
	}
	return Percent(100 * num.Div(den).InexactFloat64())
}

// IsNone reports whether the percent is undefined.
func (p Percent) IsNone() bool { return math.IsNaN(float64(p)) }

func (p Percent) Equal(q Percent) bool {
	if p.IsNone() || q.IsNone() {
		return p.IsNone() && q.IsNone()
	}
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	if p.IsNone() {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	if p.IsNone() {
		return "-"
	}
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}

func (p Percent) MarshalJSON() ([]byte, error) {
	if p.IsNone() {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%.4f", float64(p))), nil
}

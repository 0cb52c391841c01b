package date

import (
	"fmt"
	"strings"
)

// Period is a calendar cadence. It drives portfolio rebalancing boundaries
// and periodic report ranges.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// Range returns the standard range of this period containing d.
func (p Period) Range(d Date) Range { return NewRange(d, p) }

// StartsOn reports whether d is the first day of a period boundary.
// Used to detect rebalancing dates in a return series.
func (p Period) StartsOn(d Date) bool { return d.StartOf(p) == d }

func ParsePeriod(p string) (Period, error) {
	p = strings.ToLower(p)
	switch p {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Daily, fmt.Errorf("unknown period %s", p)
	}
}

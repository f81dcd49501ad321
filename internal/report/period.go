package report

import (
	"fmt"
	"time"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

type PeriodKind string

const (
	PeriodDaily   PeriodKind = "daily"
	PeriodWeekly  PeriodKind = "weekly"
	PeriodMonthly PeriodKind = "monthly"
	PeriodYearly  PeriodKind = "yearly"
)

func ParsePeriodKind(s string) (PeriodKind, error) {
	switch PeriodKind(s) {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly:
		return PeriodKind(s), nil
	}
	return "", fmt.Errorf("unknown period kind %q", s)
}

type PredicateKind int

const (
	PredicateDateEquals PredicateKind = iota
	PredicateDateRange
	PredicateYearMonth
	PredicateYear
)

// DatePredicate is a tagged variant describing a boolean condition over a
// date column. It is storage-agnostic: the repository translates each variant
// into its native query construct.
type DatePredicate struct {
	Kind  PredicateKind
	Date  string // DateEquals
	Start string // DateRange, inclusive
	End   string // DateRange, inclusive
	Year  int    // YearMonth, Year
	Month time.Month
}

// WeekStart returns the Monday of t's week. Callers normalize weekly anchors
// with this before resolving.
func WeekStart(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 { // time.Sunday
		weekday = 7
	}
	return t.AddDate(0, 0, -(weekday - 1))
}

// ResolvePeriod maps a period kind and anchor date to a predicate over
// report_date. Pure: identical inputs always yield identical predicates, and
// "today" only enters through the anchor, which the caller defaults.
func ResolvePeriod(kind PeriodKind, anchor time.Time) DatePredicate {
	switch kind {
	case PeriodWeekly:
		// anchor is the Monday of the week; the range is closed on both ends
		return DatePredicate{
			Kind:  PredicateDateRange,
			Start: anchor.Format(DateLayout),
			End:   anchor.AddDate(0, 0, 6).Format(DateLayout),
		}
	case PeriodMonthly:
		// day component of the anchor is irrelevant
		return DatePredicate{
			Kind:  PredicateYearMonth,
			Year:  anchor.Year(),
			Month: anchor.Month(),
		}
	case PeriodYearly:
		return DatePredicate{
			Kind: PredicateYear,
			Year: anchor.Year(),
		}
	default: // PeriodDaily
		return DatePredicate{
			Kind: PredicateDateEquals,
			Date: anchor.Format(DateLayout),
		}
	}
}

// Bounds collapses any predicate to an inclusive [start, end] date range.
// Year and year-month predicates over a date column are equivalent to the
// closed range spanning them, which keeps the translation portable across
// storage engines.
func (p DatePredicate) Bounds() (start, end string) {
	switch p.Kind {
	case PredicateDateEquals:
		return p.Date, p.Date
	case PredicateDateRange:
		return p.Start, p.End
	case PredicateYearMonth:
		first := time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
		last := first.AddDate(0, 1, -1)
		return first.Format(DateLayout), last.Format(DateLayout)
	default: // PredicateYear
		return fmt.Sprintf("%04d-01-01", p.Year), fmt.Sprintf("%04d-12-31", p.Year)
	}
}

// Matches reports whether a date satisfies the predicate. Dates are ISO
// formatted, so lexical comparison is date comparison.
func (p DatePredicate) Matches(date string) bool {
	start, end := p.Bounds()
	return date >= start && date <= end
}

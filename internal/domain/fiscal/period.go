// Package fiscal implements the fiscal computation engine: the quarter
// arithmetic and the Modelo 303 / Modelo 130 settlement calculators. The
// calculators are pure functions over ledger records; querying and
// persistence live behind the repository interfaces.
package fiscal

import (
	"fmt"
	"time"

	"github.com/conta/backend/internal/domain/shared"
)

const (
	minYear = 1900
	maxYear = 2100
)

// Period identifies a quarterly declaration period
type Period struct {
	Year    int `json:"year"`
	Quarter int `json:"quarter"`
}

// NewPeriod creates a Period, validating the year and quarter bounds
func NewPeriod(year, quarter int) (Period, error) {
	if year < minYear || year > maxYear {
		return Period{}, shared.ErrInvalidPeriod
	}
	if quarter < 1 || quarter > 4 {
		return Period{}, shared.ErrInvalidPeriod
	}
	return Period{Year: year, Quarter: quarter}, nil
}

// ParsePeriod parses the textual period form "YYYYQ#", e.g. "2025Q3"
func ParsePeriod(s string) (Period, error) {
	if len(s) != 6 || s[4] != 'Q' {
		return Period{}, shared.ErrInvalidPeriod
	}
	year := 0
	for _, c := range s[:4] {
		if c < '0' || c > '9' {
			return Period{}, shared.ErrInvalidPeriod
		}
		year = year*10 + int(c-'0')
	}
	q := s[5]
	if q < '1' || q > '4' {
		return Period{}, shared.ErrInvalidPeriod
	}
	return NewPeriod(year, int(q-'0'))
}

// String returns the canonical textual form, e.g. "2025Q3"
func (p Period) String() string {
	return fmt.Sprintf("%dQ%d", p.Year, p.Quarter)
}

// QuarterRange returns the calendar interval the period denotes, both ends
// inclusive. The end date is the last calendar day of the quarter's final
// month.
func (p Period) QuarterRange() (start, end time.Time) {
	startMonth := time.Month((p.Quarter-1)*3 + 1)
	start = time.Date(p.Year, startMonth, 1, 0, 0, 0, 0, time.UTC)
	// day 0 of the following month normalizes to the last day of this one
	end = time.Date(p.Year, startMonth+3, 0, 0, 0, 0, 0, time.UTC)
	return start, end
}

// YearToDateRange returns the cumulative interval from January 1 of the
// period's year through the end of its quarter, both ends inclusive
func (p Period) YearToDateRange() (start, end time.Time) {
	_, end = p.QuarterRange()
	return time.Date(p.Year, time.January, 1, 0, 0, 0, 0, time.UTC), end
}

// Previous returns the periods of the same year strictly before this one,
// in quarter order
func (p Period) Previous() []Period {
	prev := make([]Period, 0, 3)
	for q := 1; q < p.Quarter; q++ {
		prev = append(prev, Period{Year: p.Year, Quarter: q})
	}
	return prev
}

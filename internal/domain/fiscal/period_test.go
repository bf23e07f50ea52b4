package fiscal

import (
	"testing"
	"time"

	"github.com/conta/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPeriod(t *testing.T) {
	t.Run("accepts quarters 1 through 4", func(t *testing.T) {
		for q := 1; q <= 4; q++ {
			p, err := NewPeriod(2025, q)
			require.NoError(t, err)
			assert.Equal(t, 2025, p.Year)
			assert.Equal(t, q, p.Quarter)
		}
	})

	t.Run("rejects quarter outside 1-4", func(t *testing.T) {
		for _, q := range []int{0, 5, -1, 12} {
			_, err := NewPeriod(2025, q)
			assert.ErrorIs(t, err, shared.ErrInvalidPeriod)
		}
	})

	t.Run("rejects year outside sane bounds", func(t *testing.T) {
		_, err := NewPeriod(1899, 1)
		assert.ErrorIs(t, err, shared.ErrInvalidPeriod)

		_, err = NewPeriod(2101, 1)
		assert.ErrorIs(t, err, shared.ErrInvalidPeriod)
	})
}

func TestParsePeriod(t *testing.T) {
	t.Run("parses canonical form", func(t *testing.T) {
		p, err := ParsePeriod("2025Q3")
		require.NoError(t, err)
		assert.Equal(t, Period{Year: 2025, Quarter: 3}, p)
	})

	t.Run("round trips through String", func(t *testing.T) {
		for q := 1; q <= 4; q++ {
			p := Period{Year: 2024, Quarter: q}
			parsed, err := ParsePeriod(p.String())
			require.NoError(t, err)
			assert.Equal(t, p, parsed)
		}
	})

	t.Run("rejects malformed strings", func(t *testing.T) {
		for _, s := range []string{
			"", "2025", "2025Q", "2025Q5", "2025Q0", "25Q3",
			"2025q3", "2025X3", "2025Q33", "abcdQ1", "20a5Q1",
		} {
			_, err := ParsePeriod(s)
			assert.ErrorIs(t, err, shared.ErrInvalidPeriod, "expected %q to be rejected", s)
		}
	})

	t.Run("rejects out-of-bound years", func(t *testing.T) {
		_, err := ParsePeriod("1899Q1")
		assert.ErrorIs(t, err, shared.ErrInvalidPeriod)
	})
}

func TestQuarterRange(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("covers the right months with proper end days", func(t *testing.T) {
		cases := []struct {
			quarter    int
			start, end time.Time
		}{
			{1, day(2025, time.January, 1), day(2025, time.March, 31)},
			{2, day(2025, time.April, 1), day(2025, time.June, 30)},
			{3, day(2025, time.July, 1), day(2025, time.September, 30)},
			{4, day(2025, time.October, 1), day(2025, time.December, 31)},
		}
		for _, tc := range cases {
			p := Period{Year: 2025, Quarter: tc.quarter}
			start, end := p.QuarterRange()
			assert.Equal(t, tc.start, start, "Q%d start", tc.quarter)
			assert.Equal(t, tc.end, end, "Q%d end", tc.quarter)
		}
	})

	t.Run("Q1 of a leap year still ends March 31", func(t *testing.T) {
		start, end := Period{Year: 2024, Quarter: 1}.QuarterRange()
		assert.Equal(t, day(2024, time.January, 1), start)
		assert.Equal(t, day(2024, time.March, 31), end)
	})
}

func TestYearToDateRange(t *testing.T) {
	t.Run("starts January 1 and ends with the quarter", func(t *testing.T) {
		start, end := Period{Year: 2025, Quarter: 3}.YearToDateRange()
		assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2025, time.September, 30, 0, 0, 0, 0, time.UTC), end)
	})
}

func TestPrevious(t *testing.T) {
	t.Run("Q1 has no previous periods", func(t *testing.T) {
		assert.Empty(t, Period{Year: 2025, Quarter: 1}.Previous())
	})

	t.Run("Q4 has three previous periods in order", func(t *testing.T) {
		prev := Period{Year: 2025, Quarter: 4}.Previous()
		require.Len(t, prev, 3)
		assert.Equal(t, Period{Year: 2025, Quarter: 1}, prev[0])
		assert.Equal(t, Period{Year: 2025, Quarter: 2}, prev[1])
		assert.Equal(t, Period{Year: 2025, Quarter: 3}, prev[2])
	})
}

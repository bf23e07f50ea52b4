// Package ledger holds the append-only records the fiscal engine reads:
// issued invoices, deductible expenses and self-employment contribution
// payments. Records are validated once at creation and never mutated.
package ledger

import (
	"fmt"
	"time"
)

// quarterLabel formats the period a date falls in, e.g. "2025Q3"
func quarterLabel(d time.Time) string {
	q := (int(d.Month())-1)/3 + 1
	return fmt.Sprintf("%dQ%d", d.Year(), q)
}

package fiscal

import (
	"context"
)

// AdvancePaymentRepository defines the interface for advance payment
// persistence. Quarter q's snapshot must see exactly the payments registered
// for quarters < q of the same year, so Insert has to be atomic with the
// duplicate check.
type AdvancePaymentRepository interface {
	// Insert persists a new advance payment. Registering a second payment
	// for the same (year, quarter) fails with ErrDuplicatePeriod, whatever
	// its amount; the check-and-insert is a single atomic unit.
	Insert(ctx context.Context, payment *AdvancePayment) error

	// FindByPeriod finds the payment registered for a period, if any
	FindByPeriod(ctx context.Context, period Period) (*AdvancePayment, error)

	// FindBefore finds the payments of a year for quarters strictly less
	// than quarterExclusive, ordered by quarter
	FindBefore(ctx context.Context, year, quarterExclusive int) ([]AdvancePayment, error)
}

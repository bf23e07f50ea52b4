package ledger

import (
	"context"
	"time"
)

// ListOptions defines ordering and limiting options for list queries
type ListOptions struct {
	Limit      int  // 0 means no limit
	Descending bool // newest first when true
}

// InvoiceRepository defines the interface for issued invoice persistence
type InvoiceRepository interface {
	// Save persists a new invoice; a duplicate invoice number fails with
	// ErrDuplicateInvoiceNumber and leaves the existing record untouched
	Save(ctx context.Context, invoice *IssuedInvoice) error

	// FindByNumber finds an invoice by its ledger-unique number
	FindByNumber(ctx context.Context, number string) (*IssuedInvoice, error)

	// FindInRange finds invoices issued within [start, end], both inclusive,
	// ordered by issue date then number. A non-nil activity restricts the
	// result to that activity.
	FindInRange(ctx context.Context, start, end time.Time, activity *Activity) ([]IssuedInvoice, error)

	// FindAll finds all invoices ordered by issue date then number
	FindAll(ctx context.Context, opts ListOptions) ([]IssuedInvoice, error)
}

// ExpenseRepository defines the interface for deductible expense persistence
type ExpenseRepository interface {
	// Save persists a new expense
	Save(ctx context.Context, expense *DeductibleExpense) error

	// FindInRange finds expenses dated within [start, end], both inclusive,
	// ordered by date then supplier
	FindInRange(ctx context.Context, start, end time.Time) ([]DeductibleExpense, error)

	// FindAll finds all expenses ordered by date then supplier
	FindAll(ctx context.Context, opts ListOptions) ([]DeductibleExpense, error)
}

// ContributionRepository defines the interface for contribution payment
// persistence
type ContributionRepository interface {
	// Save persists a new contribution payment
	Save(ctx context.Context, payment *ContributionPayment) error

	// FindInRange finds contribution payments dated within [start, end],
	// both inclusive, ordered by date
	FindInRange(ctx context.Context, start, end time.Time) ([]ContributionPayment, error)
}

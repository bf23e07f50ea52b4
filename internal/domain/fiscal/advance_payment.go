package fiscal

import (
	"time"

	"github.com/conta/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// AdvancePayment represents a previously filed and paid Modelo 130
// declaration. At most one payment is representable per (year, quarter);
// the storage layer enforces this atomically.
type AdvancePayment struct {
	shared.BaseEntity
	Year    int             `json:"year"`
	Quarter int             `json:"quarter"`
	Amount  decimal.Decimal `json:"amount"`
	PaidAt  time.Time       `json:"paid_at"`
}

// NewAdvancePayment creates a new advance payment record for a period
func NewAdvancePayment(period Period, amount decimal.Decimal, paidAt time.Time) (*AdvancePayment, error) {
	if !amount.IsPositive() {
		return nil, shared.ErrInvalidAmount
	}
	if paidAt.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Payment date cannot be empty")
	}

	return &AdvancePayment{
		BaseEntity: shared.NewBaseEntity(),
		Year:       period.Year,
		Quarter:    period.Quarter,
		Amount:     amount,
		PaidAt:     paidAt,
	}, nil
}

// Period returns the declaration period the payment covers
func (p *AdvancePayment) Period() Period {
	return Period{Year: p.Year, Quarter: p.Quarter}
}

package ledger

import (
	"time"

	"github.com/conta/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ContributionPayment represents a mandatory self-employment social
// contribution payment. Contributions are always fully deductible and are
// never weighted or filtered by activity.
type ContributionPayment struct {
	shared.BaseEntity
	Date    time.Time       `json:"date"`
	Amount  decimal.Decimal `json:"amount"`
	Concept string          `json:"concept,omitempty"`
}

// NewContributionPayment creates a new contribution payment
func NewContributionPayment(date time.Time, amount decimal.Decimal, concept string) (*ContributionPayment, error) {
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Payment date cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.ErrInvalidAmount
	}

	return &ContributionPayment{
		BaseEntity: shared.NewBaseEntity(),
		Date:       date,
		Amount:     amount,
		Concept:    concept,
	}, nil
}

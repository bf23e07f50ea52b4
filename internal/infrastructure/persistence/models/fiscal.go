package models

import (
	"time"

	"github.com/conta/backend/internal/domain/fiscal"
	"github.com/conta/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// AdvancePaymentModel is the persistence model for the AdvancePayment
// entity. The composite unique index makes the duplicate-period check
// atomic with the insert.
type AdvancePaymentModel struct {
	BaseModel
	Year    int             `gorm:"not null;uniqueIndex:idx_advance_period,priority:1"`
	Quarter int             `gorm:"not null;uniqueIndex:idx_advance_period,priority:2"`
	Amount  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	PaidAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (AdvancePaymentModel) TableName() string {
	return "advance_payments"
}

// ToDomain converts the persistence model to a domain AdvancePayment entity
func (m *AdvancePaymentModel) ToDomain() *fiscal.AdvancePayment {
	return &fiscal.AdvancePayment{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
		},
		Year:    m.Year,
		Quarter: m.Quarter,
		Amount:  m.Amount,
		PaidAt:  m.PaidAt,
	}
}

// AdvancePaymentModelFromDomain converts a domain AdvancePayment to its
// persistence model
func AdvancePaymentModelFromDomain(p *fiscal.AdvancePayment) *AdvancePaymentModel {
	return &AdvancePaymentModel{
		BaseModel: BaseModel{
			ID:        p.ID,
			CreatedAt: p.CreatedAt,
		},
		Year:    p.Year,
		Quarter: p.Quarter,
		Amount:  p.Amount,
		PaidAt:  p.PaidAt,
	}
}

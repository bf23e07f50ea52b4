package ledger

import (
	"time"

	"github.com/conta/backend/internal/domain/shared"
	"github.com/conta/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// DeductibleExpense represents a purchase whose VAT quota is (partially)
// deductible. BusinessUsePct expresses how much of the expense is affected
// to the professional activity; both the base and the VAT quota are weighted
// by it when settling.
type DeductibleExpense struct {
	shared.BaseEntity
	Supplier      string          `json:"supplier"`
	SupplierTaxID string          `json:"supplier_tax_id,omitempty"`
	Date          time.Time       `json:"date"`
	Base          decimal.Decimal `json:"base"`
	VATRate       decimal.Decimal `json:"vat_rate"`
	VATAmount     decimal.Decimal `json:"vat_amount"`
	Category      string          `json:"category,omitempty"`
	BusinessUsePct decimal.Decimal `json:"business_use_pct"`
	SourcePath    string          `json:"source_path,omitempty"`
}

// NewDeductibleExpense creates a new deductible expense, deriving the VAT
// quota from the base and rate. A zero businessUsePct is allowed (fully
// private expense kept for the record); values outside [0, 100] are not.
func NewDeductibleExpense(
	supplier string,
	date time.Time,
	base decimal.Decimal,
	vatRate decimal.Decimal,
	businessUsePct decimal.Decimal,
) (*DeductibleExpense, error) {
	if supplier == "" {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier name cannot be empty")
	}
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Expense date cannot be empty")
	}
	if base.IsNegative() {
		return nil, shared.ErrInvalidAmount
	}
	if !validPercent(vatRate) || !validPercent(businessUsePct) {
		return nil, shared.ErrInvalidAmount
	}

	return &DeductibleExpense{
		BaseEntity:     shared.NewBaseEntity(),
		Supplier:       supplier,
		Date:           date,
		Base:           base,
		VATRate:        vatRate,
		VATAmount:      valueobject.RoundCents(valueobject.ApplyPercent(base, vatRate)),
		BusinessUsePct: businessUsePct,
	}, nil
}

// DeductibleBase returns the base weighted by the business-use percentage,
// unrounded
func (e *DeductibleExpense) DeductibleBase() decimal.Decimal {
	return valueobject.ApplyPercent(e.Base, e.BusinessUsePct)
}

// DeductibleQuota returns the VAT quota weighted by the business-use
// percentage, unrounded
func (e *DeductibleExpense) DeductibleQuota() decimal.Decimal {
	return valueobject.ApplyPercent(e.VATAmount, e.BusinessUsePct)
}

// Quarter returns the period label ("2025Q3") the expense falls in
func (e *DeductibleExpense) Quarter() string {
	return quarterLabel(e.Date)
}

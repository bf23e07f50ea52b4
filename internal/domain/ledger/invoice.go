package ledger

import (
	"time"

	"github.com/conta/backend/internal/domain/shared"
	"github.com/conta/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// IssuedInvoice represents an invoice issued to a client. The VAT quota and
// the income-tax withholding amount are derived from the taxable base at
// creation time and stored, so later settlements reproduce exactly what was
// printed on the invoice.
type IssuedInvoice struct {
	shared.BaseEntity
	Number         string          `json:"number"`
	IssueDate      time.Time       `json:"issue_date"`
	ClientName     string          `json:"client_name"`
	ClientTaxID    string          `json:"client_tax_id,omitempty"`
	Country        string          `json:"country,omitempty"`
	Base           decimal.Decimal `json:"base"`
	VATRate        decimal.Decimal `json:"vat_rate"`
	VATAmount      decimal.Decimal `json:"vat_amount"`
	WithholdingPct decimal.Decimal `json:"withholding_pct"`
	Withholding    decimal.Decimal `json:"withholding"`
	Activity       Activity        `json:"activity"`
	Note           string          `json:"note,omitempty"`
	SourcePath     string          `json:"source_path,omitempty"`
}

// NewIssuedInvoice creates a new issued invoice, deriving the VAT quota and
// the withholding amount from the base and the given percentages
func NewIssuedInvoice(
	number string,
	issueDate time.Time,
	clientName string,
	base decimal.Decimal,
	vatRate decimal.Decimal,
	withholdingPct decimal.Decimal,
	activity Activity,
) (*IssuedInvoice, error) {
	if number == "" {
		return nil, shared.NewDomainError("INVALID_INVOICE_NUMBER", "Invoice number cannot be empty")
	}
	if clientName == "" {
		return nil, shared.NewDomainError("INVALID_CLIENT", "Client name cannot be empty")
	}
	if issueDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Issue date cannot be empty")
	}
	if base.IsNegative() {
		return nil, shared.ErrInvalidAmount
	}
	if !validPercent(vatRate) || !validPercent(withholdingPct) {
		return nil, shared.ErrInvalidAmount
	}
	if !activity.IsValid() {
		return nil, shared.NewDomainError("INVALID_ACTIVITY", "Activity is not valid")
	}

	return &IssuedInvoice{
		BaseEntity:     shared.NewBaseEntity(),
		Number:         number,
		IssueDate:      issueDate,
		ClientName:     clientName,
		Base:           base,
		VATRate:        vatRate,
		VATAmount:      valueobject.RoundCents(valueobject.ApplyPercent(base, vatRate)),
		WithholdingPct: withholdingPct,
		Withholding:    valueobject.RoundCents(valueobject.ApplyPercent(base, withholdingPct)),
		Activity:       activity,
	}, nil
}

// Quarter returns the period label ("2025Q3") the invoice falls in
func (i *IssuedInvoice) Quarter() string {
	return quarterLabel(i.IssueDate)
}

// validPercent reports whether pct is a valid percent value in [0, 100]
func validPercent(pct decimal.Decimal) bool {
	return !pct.IsNegative() && pct.LessThanOrEqual(decimal.NewFromInt(100))
}

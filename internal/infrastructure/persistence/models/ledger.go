// Package models holds the persistence models mapping the domain entities
// onto the SQLite schema. Dates are stored at day resolution, midnight UTC.
package models

import (
	"time"

	"github.com/conta/backend/internal/domain/ledger"
	"github.com/conta/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BaseModel provides common persistence fields
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
}

// IssuedInvoiceModel is the persistence model for the IssuedInvoice entity
type IssuedInvoiceModel struct {
	BaseModel
	Number         string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	IssueDate      time.Time       `gorm:"not null;index"`
	ClientName     string          `gorm:"type:varchar(200);not null"`
	ClientTaxID    string          `gorm:"type:varchar(20)"`
	Country        string          `gorm:"type:varchar(60)"`
	Base           decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	VATRate        decimal.Decimal `gorm:"type:decimal(7,4);not null"`
	VATAmount      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	WithholdingPct decimal.Decimal `gorm:"type:decimal(7,4);not null"`
	Withholding    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Activity       ledger.Activity `gorm:"type:varchar(20);not null;index"`
	Note           string          `gorm:"type:text"`
	SourcePath     string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (IssuedInvoiceModel) TableName() string {
	return "issued_invoices"
}

// ToDomain converts the persistence model to a domain IssuedInvoice entity
func (m *IssuedInvoiceModel) ToDomain() *ledger.IssuedInvoice {
	return &ledger.IssuedInvoice{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
		},
		Number:         m.Number,
		IssueDate:      m.IssueDate,
		ClientName:     m.ClientName,
		ClientTaxID:    m.ClientTaxID,
		Country:        m.Country,
		Base:           m.Base,
		VATRate:        m.VATRate,
		VATAmount:      m.VATAmount,
		WithholdingPct: m.WithholdingPct,
		Withholding:    m.Withholding,
		Activity:       m.Activity,
		Note:           m.Note,
		SourcePath:     m.SourcePath,
	}
}

// InvoiceModelFromDomain converts a domain IssuedInvoice to its persistence
// model
func InvoiceModelFromDomain(inv *ledger.IssuedInvoice) *IssuedInvoiceModel {
	return &IssuedInvoiceModel{
		BaseModel: BaseModel{
			ID:        inv.ID,
			CreatedAt: inv.CreatedAt,
		},
		Number:         inv.Number,
		IssueDate:      inv.IssueDate,
		ClientName:     inv.ClientName,
		ClientTaxID:    inv.ClientTaxID,
		Country:        inv.Country,
		Base:           inv.Base,
		VATRate:        inv.VATRate,
		VATAmount:      inv.VATAmount,
		WithholdingPct: inv.WithholdingPct,
		Withholding:    inv.Withholding,
		Activity:       inv.Activity,
		Note:           inv.Note,
		SourcePath:     inv.SourcePath,
	}
}

// DeductibleExpenseModel is the persistence model for the DeductibleExpense
// entity
type DeductibleExpenseModel struct {
	BaseModel
	Supplier       string          `gorm:"type:varchar(200);not null"`
	SupplierTaxID  string          `gorm:"type:varchar(20)"`
	Date           time.Time       `gorm:"not null;index"`
	Base           decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	VATRate        decimal.Decimal `gorm:"type:decimal(7,4);not null"`
	VATAmount      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Category       string          `gorm:"type:varchar(100)"`
	BusinessUsePct decimal.Decimal `gorm:"type:decimal(7,4);not null;default:100"`
	SourcePath     string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (DeductibleExpenseModel) TableName() string {
	return "deductible_expenses"
}

// ToDomain converts the persistence model to a domain DeductibleExpense
// entity
func (m *DeductibleExpenseModel) ToDomain() *ledger.DeductibleExpense {
	return &ledger.DeductibleExpense{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
		},
		Supplier:       m.Supplier,
		SupplierTaxID:  m.SupplierTaxID,
		Date:           m.Date,
		Base:           m.Base,
		VATRate:        m.VATRate,
		VATAmount:      m.VATAmount,
		Category:       m.Category,
		BusinessUsePct: m.BusinessUsePct,
		SourcePath:     m.SourcePath,
	}
}

// ExpenseModelFromDomain converts a domain DeductibleExpense to its
// persistence model
func ExpenseModelFromDomain(exp *ledger.DeductibleExpense) *DeductibleExpenseModel {
	return &DeductibleExpenseModel{
		BaseModel: BaseModel{
			ID:        exp.ID,
			CreatedAt: exp.CreatedAt,
		},
		Supplier:       exp.Supplier,
		SupplierTaxID:  exp.SupplierTaxID,
		Date:           exp.Date,
		Base:           exp.Base,
		VATRate:        exp.VATRate,
		VATAmount:      exp.VATAmount,
		Category:       exp.Category,
		BusinessUsePct: exp.BusinessUsePct,
		SourcePath:     exp.SourcePath,
	}
}

// ContributionPaymentModel is the persistence model for the
// ContributionPayment entity
type ContributionPaymentModel struct {
	BaseModel
	Date    time.Time       `gorm:"not null;index"`
	Amount  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Concept string          `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (ContributionPaymentModel) TableName() string {
	return "contribution_payments"
}

// ToDomain converts the persistence model to a domain ContributionPayment
// entity
func (m *ContributionPaymentModel) ToDomain() *ledger.ContributionPayment {
	return &ledger.ContributionPayment{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
		},
		Date:    m.Date,
		Amount:  m.Amount,
		Concept: m.Concept,
	}
}

// ContributionModelFromDomain converts a domain ContributionPayment to its
// persistence model
func ContributionModelFromDomain(c *ledger.ContributionPayment) *ContributionPaymentModel {
	return &ContributionPaymentModel{
		BaseModel: BaseModel{
			ID:        c.ID,
			CreatedAt: c.CreatedAt,
		},
		Date:    c.Date,
		Amount:  c.Amount,
		Concept: c.Concept,
	}
}

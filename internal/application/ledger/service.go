// Package ledger provides the application-level entry operations of the
// invoice, expense and contribution books.
package ledger

import (
	"context"
	"time"

	domain "github.com/conta/backend/internal/domain/ledger"
	"github.com/conta/backend/internal/domain/shared"
	"github.com/conta/backend/internal/infrastructure/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Service provides application-level ledger entry operations
type Service struct {
	invoices      domain.InvoiceRepository
	expenses      domain.ExpenseRepository
	contributions domain.ContributionRepository
}

// NewService creates a new ledger Service
func NewService(
	invoices domain.InvoiceRepository,
	expenses domain.ExpenseRepository,
	contributions domain.ContributionRepository,
) *Service {
	return &Service{
		invoices:      invoices,
		expenses:      expenses,
		contributions: contributions,
	}
}

// CreateInvoiceRequest represents a request to record an issued invoice
type CreateInvoiceRequest struct {
	Number         string          `json:"number" binding:"required"`
	IssueDate      time.Time       `json:"issue_date" binding:"required"`
	ClientName     string          `json:"client_name" binding:"required"`
	ClientTaxID    string          `json:"client_tax_id"`
	Country        string          `json:"country"`
	Base           decimal.Decimal `json:"base" binding:"required"`
	VATRate        decimal.Decimal `json:"vat_rate"`
	WithholdingPct decimal.Decimal `json:"withholding_pct"`
	Activity       string          `json:"activity" binding:"required,activity"`
	Note           string          `json:"note"`
	SourcePath     string          `json:"source_path"`
}

// CreateInvoice records a new issued invoice, deriving the VAT quota and the
// withholding amount from the base. A duplicate invoice number is rejected
// and the stored record is left untouched.
func (s *Service) CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*domain.IssuedInvoice, error) {
	invoice, err := domain.NewIssuedInvoice(
		req.Number,
		req.IssueDate,
		req.ClientName,
		req.Base,
		req.VATRate,
		req.WithholdingPct,
		domain.Activity(req.Activity),
	)
	if err != nil {
		return nil, err
	}
	invoice.ClientTaxID = req.ClientTaxID
	invoice.Country = req.Country
	invoice.Note = req.Note
	invoice.SourcePath = req.SourcePath

	if err := s.invoices.Save(ctx, invoice); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("invoice recorded",
		zap.String("number", invoice.Number),
		zap.String("quarter", invoice.Quarter()),
		zap.String("base", invoice.Base.StringFixed(2)),
	)
	return invoice, nil
}

// CreateExpenseRequest represents a request to record a deductible expense
type CreateExpenseRequest struct {
	Supplier       string          `json:"supplier" binding:"required"`
	SupplierTaxID  string          `json:"supplier_tax_id"`
	Date           time.Time       `json:"date" binding:"required"`
	Base           decimal.Decimal `json:"base" binding:"required"`
	VATRate        decimal.Decimal `json:"vat_rate"`
	BusinessUsePct decimal.Decimal `json:"business_use_pct"`
	Category       string          `json:"category"`
	SourcePath     string          `json:"source_path"`
}

// CreateExpense records a new deductible expense. An omitted business-use
// percentage defaults to 100 (fully deductible).
func (s *Service) CreateExpense(ctx context.Context, req CreateExpenseRequest) (*domain.DeductibleExpense, error) {
	businessUse := req.BusinessUsePct
	if businessUse.IsZero() {
		businessUse = decimal.NewFromInt(100)
	}

	expense, err := domain.NewDeductibleExpense(
		req.Supplier,
		req.Date,
		req.Base,
		req.VATRate,
		businessUse,
	)
	if err != nil {
		return nil, err
	}
	expense.SupplierTaxID = req.SupplierTaxID
	expense.Category = req.Category
	expense.SourcePath = req.SourcePath

	if err := s.expenses.Save(ctx, expense); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("expense recorded",
		zap.String("supplier", expense.Supplier),
		zap.String("quarter", expense.Quarter()),
		zap.String("base", expense.Base.StringFixed(2)),
	)
	return expense, nil
}

// CreateContributionRequest represents a request to record a contribution
// payment
type CreateContributionRequest struct {
	Date    time.Time       `json:"date" binding:"required"`
	Amount  decimal.Decimal `json:"amount" binding:"required"`
	Concept string          `json:"concept"`
}

// CreateContribution records a new self-employment contribution payment
func (s *Service) CreateContribution(ctx context.Context, req CreateContributionRequest) (*domain.ContributionPayment, error) {
	payment, err := domain.NewContributionPayment(req.Date, req.Amount, req.Concept)
	if err != nil {
		return nil, err
	}

	if err := s.contributions.Save(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// ListInvoices returns invoices ordered by issue date then number
func (s *Service) ListInvoices(ctx context.Context, opts domain.ListOptions) ([]domain.IssuedInvoice, error) {
	return s.invoices.FindAll(ctx, opts)
}

// ListExpenses returns expenses ordered by date then supplier
func (s *Service) ListExpenses(ctx context.Context, opts domain.ListOptions) ([]domain.DeductibleExpense, error) {
	return s.expenses.FindAll(ctx, opts)
}

// GetInvoice finds an invoice by its ledger-unique number, or ErrNotFound
func (s *Service) GetInvoice(ctx context.Context, number string) (*domain.IssuedInvoice, error) {
	if number == "" {
		return nil, shared.ErrInvalidInput
	}
	return s.invoices.FindByNumber(ctx, number)
}

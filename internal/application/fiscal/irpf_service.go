package fiscal

import (
	"context"
	"time"

	domain "github.com/conta/backend/internal/domain/fiscal"
	"github.com/conta/backend/internal/domain/ledger"
	"github.com/conta/backend/internal/infrastructure/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// IRPFService computes accumulated Modelo 130 snapshots and registers filed
// advance payments
type IRPFService struct {
	invoices        ledger.InvoiceRepository
	expenses        ledger.ExpenseRepository
	contributions   ledger.ContributionRepository
	advancePayments domain.AdvancePaymentRepository
}

// NewIRPFService creates a new IRPFService
func NewIRPFService(
	invoices ledger.InvoiceRepository,
	expenses ledger.ExpenseRepository,
	contributions ledger.ContributionRepository,
	advancePayments domain.AdvancePaymentRepository,
) *IRPFService {
	return &IRPFService{
		invoices:        invoices,
		expenses:        expenses,
		contributions:   contributions,
		advancePayments: advancePayments,
	}
}

// Snapshot computes the accumulated Modelo 130 snapshot: every figure covers
// January 1 through the end of the period's quarter. Restricted mode limits
// income to the software-development activity and zeroes withholdings; it is
// an analysis aid, not the official declaration.
func (s *IRPFService) Snapshot(ctx context.Context, period domain.Period, restricted bool) (*domain.IRPFSnapshot, error) {
	start, end := period.YearToDateRange()

	var activity *ledger.Activity
	if restricted {
		software := ledger.ActivitySoftware
		activity = &software
	}

	invoices, err := s.invoices.FindInRange(ctx, start, end, activity)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.FindInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	contributions, err := s.contributions.FindInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	prior, err := s.advancePayments.FindBefore(ctx, period.Year, period.Quarter)
	if err != nil {
		return nil, err
	}

	snapshot := domain.SnapshotIRPF(period, restricted, invoices, expenses, contributions, prior)
	return &snapshot, nil
}

// SnapshotFromString computes the snapshot for the period named by its
// "YYYYQ#" label
func (s *IRPFService) SnapshotFromString(ctx context.Context, period string, restricted bool) (*domain.IRPFSnapshot, error) {
	p, err := domain.ParsePeriod(period)
	if err != nil {
		return nil, err
	}
	return s.Snapshot(ctx, p, restricted)
}

// RegisterAdvancePaymentRequest represents a request to record a filed
// Modelo 130 payment
type RegisterAdvancePaymentRequest struct {
	Period string          `json:"period" binding:"required,period"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
	PaidAt time.Time       `json:"paid_at" binding:"required"`
}

// RegisterAdvancePayment records a filed advance payment for a period. At
// most one payment per period is representable; a second registration fails
// with ErrDuplicatePeriod and leaves the stored payment untouched.
func (s *IRPFService) RegisterAdvancePayment(ctx context.Context, req RegisterAdvancePaymentRequest) (*domain.AdvancePayment, error) {
	period, err := domain.ParsePeriod(req.Period)
	if err != nil {
		return nil, err
	}

	payment, err := domain.NewAdvancePayment(period, req.Amount, req.PaidAt)
	if err != nil {
		return nil, err
	}

	if err := s.advancePayments.Insert(ctx, payment); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("advance payment registered",
		zap.String("period", period.String()),
		zap.String("amount", payment.Amount.StringFixed(2)),
	)
	return payment, nil
}

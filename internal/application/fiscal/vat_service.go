// Package fiscal provides the application-level settlement operations:
// quarterly and annual Modelo 303 and the accumulated Modelo 130 snapshot.
package fiscal

import (
	"context"

	domain "github.com/conta/backend/internal/domain/fiscal"
	"github.com/conta/backend/internal/domain/ledger"
	"github.com/conta/backend/internal/domain/shared"
)

// VATService computes Modelo 303 settlements over the ledger
type VATService struct {
	invoices ledger.InvoiceRepository
	expenses ledger.ExpenseRepository
}

// NewVATService creates a new VATService
func NewVATService(invoices ledger.InvoiceRepository, expenses ledger.ExpenseRepository) *VATService {
	return &VATService{invoices: invoices, expenses: expenses}
}

// Quarter settles one quarter: it queries the invoices and expenses dated
// within the period's range and runs the Modelo 303 arithmetic over them
func (s *VATService) Quarter(ctx context.Context, period domain.Period) (*domain.VATSettlement, error) {
	start, end := period.QuarterRange()

	invoices, err := s.invoices.FindInRange(ctx, start, end, nil)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.FindInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	settlement := domain.SettleVAT(period, invoices, expenses)
	return &settlement, nil
}

// QuarterFromString settles the quarter named by its "YYYYQ#" label
func (s *VATService) QuarterFromString(ctx context.Context, period string) (*domain.VATSettlement, error) {
	p, err := domain.ParsePeriod(period)
	if err != nil {
		return nil, err
	}
	return s.Quarter(ctx, p)
}

// Year settles the four quarters of a year independently and sums them.
// Each quarter is queried, computed and rounded on its own, exactly as the
// four quarterly forms were filed.
func (s *VATService) Year(ctx context.Context, year int) (*domain.AnnualVAT, error) {
	if year < 1900 || year > 2100 {
		return nil, shared.ErrInvalidPeriod
	}

	quarters := make([]domain.VATSettlement, 0, 4)
	for q := 1; q <= 4; q++ {
		settlement, err := s.Quarter(ctx, domain.Period{Year: year, Quarter: q})
		if err != nil {
			return nil, err
		}
		quarters = append(quarters, *settlement)
	}

	annual := domain.SumVATYear(year, quarters)
	return &annual, nil
}

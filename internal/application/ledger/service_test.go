package ledger

import (
	"context"
	"testing"
	"time"

	domain "github.com/conta/backend/internal/domain/ledger"
	"github.com/conta/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) Save(ctx context.Context, invoice *domain.IssuedInvoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindByNumber(ctx context.Context, number string) (*domain.IssuedInvoice, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IssuedInvoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindInRange(ctx context.Context, start, end time.Time, activity *domain.Activity) ([]domain.IssuedInvoice, error) {
	args := m.Called(ctx, start, end, activity)
	return args.Get(0).([]domain.IssuedInvoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindAll(ctx context.Context, opts domain.ListOptions) ([]domain.IssuedInvoice, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).([]domain.IssuedInvoice), args.Error(1)
}

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) Save(ctx context.Context, expense *domain.DeductibleExpense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) FindInRange(ctx context.Context, start, end time.Time) ([]domain.DeductibleExpense, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]domain.DeductibleExpense), args.Error(1)
}

func (m *MockExpenseRepository) FindAll(ctx context.Context, opts domain.ListOptions) ([]domain.DeductibleExpense, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).([]domain.DeductibleExpense), args.Error(1)
}

type MockContributionRepository struct {
	mock.Mock
}

func (m *MockContributionRepository) Save(ctx context.Context, payment *domain.ContributionPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockContributionRepository) FindInRange(ctx context.Context, start, end time.Time) ([]domain.ContributionPayment, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]domain.ContributionPayment), args.Error(1)
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

var testDate = time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)

func newService() (*Service, *MockInvoiceRepository, *MockExpenseRepository, *MockContributionRepository) {
	invoiceRepo := new(MockInvoiceRepository)
	expenseRepo := new(MockExpenseRepository)
	contribRepo := new(MockContributionRepository)
	return NewService(invoiceRepo, expenseRepo, contribRepo), invoiceRepo, expenseRepo, contribRepo
}

func TestCreateInvoice(t *testing.T) {
	ctx := context.Background()

	t.Run("persists an invoice with derived quotas", func(t *testing.T) {
		svc, invoiceRepo, _, _ := newService()
		invoiceRepo.On("Save", ctx, mock.MatchedBy(func(inv *domain.IssuedInvoice) bool {
			return inv.VATAmount.Equal(dec(t, "210.00")) && inv.Withholding.Equal(dec(t, "150.00"))
		})).Return(nil)

		inv, err := svc.CreateInvoice(ctx, CreateInvoiceRequest{
			Number:         "2025-001",
			IssueDate:      testDate,
			ClientName:     "ACME S.L.",
			Base:           dec(t, "1000.00"),
			VATRate:        dec(t, "21.00"),
			WithholdingPct: dec(t, "15.00"),
			Activity:       "SOFTWARE",
		})
		require.NoError(t, err)
		assert.Equal(t, "2025-001", inv.Number)
		invoiceRepo.AssertExpectations(t)
	})

	t.Run("surfaces duplicate invoice numbers", func(t *testing.T) {
		svc, invoiceRepo, _, _ := newService()
		invoiceRepo.On("Save", ctx, mock.Anything).Return(shared.ErrDuplicateInvoiceNumber)

		_, err := svc.CreateInvoice(ctx, CreateInvoiceRequest{
			Number:     "2025-001",
			IssueDate:  testDate,
			ClientName: "ACME S.L.",
			Base:       dec(t, "1000.00"),
			VATRate:    dec(t, "21.00"),
			Activity:   "SOFTWARE",
		})
		assert.ErrorIs(t, err, shared.ErrDuplicateInvoiceNumber)
	})

	t.Run("rejects an unknown activity before touching storage", func(t *testing.T) {
		svc, invoiceRepo, _, _ := newService()

		_, err := svc.CreateInvoice(ctx, CreateInvoiceRequest{
			Number:     "2025-002",
			IssueDate:  testDate,
			ClientName: "ACME S.L.",
			Base:       dec(t, "1000.00"),
			VATRate:    dec(t, "21.00"),
			Activity:   "PLUMBING",
		})
		assert.Error(t, err)
		invoiceRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestCreateExpense(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults business use to 100 when omitted", func(t *testing.T) {
		svc, _, expenseRepo, _ := newService()
		expenseRepo.On("Save", ctx, mock.MatchedBy(func(exp *domain.DeductibleExpense) bool {
			return exp.BusinessUsePct.Equal(dec(t, "100"))
		})).Return(nil)

		exp, err := svc.CreateExpense(ctx, CreateExpenseRequest{
			Supplier: "Proveedor SA",
			Date:     testDate,
			Base:     dec(t, "200.00"),
			VATRate:  dec(t, "21.00"),
		})
		require.NoError(t, err)
		assert.Equal(t, "42.00", exp.VATAmount.StringFixed(2))
		expenseRepo.AssertExpectations(t)
	})

	t.Run("keeps an explicit business-use percentage", func(t *testing.T) {
		svc, _, expenseRepo, _ := newService()
		expenseRepo.On("Save", ctx, mock.Anything).Return(nil)

		exp, err := svc.CreateExpense(ctx, CreateExpenseRequest{
			Supplier:       "Proveedor SA",
			Date:           testDate,
			Base:           dec(t, "200.00"),
			VATRate:        dec(t, "21.00"),
			BusinessUsePct: dec(t, "50.00"),
		})
		require.NoError(t, err)
		assert.True(t, exp.DeductibleQuota().Equal(dec(t, "21")))
	})

	t.Run("rejects business use above 100", func(t *testing.T) {
		svc, _, expenseRepo, _ := newService()

		_, err := svc.CreateExpense(ctx, CreateExpenseRequest{
			Supplier:       "Proveedor SA",
			Date:           testDate,
			Base:           dec(t, "200.00"),
			VATRate:        dec(t, "21.00"),
			BusinessUsePct: dec(t, "120.00"),
		})
		assert.ErrorIs(t, err, shared.ErrInvalidAmount)
		expenseRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestCreateContribution(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a positive contribution", func(t *testing.T) {
		svc, _, _, contribRepo := newService()
		contribRepo.On("Save", ctx, mock.Anything).Return(nil)

		payment, err := svc.CreateContribution(ctx, CreateContributionRequest{
			Date:    testDate,
			Amount:  dec(t, "300.00"),
			Concept: "cuota autonomos",
		})
		require.NoError(t, err)
		assert.Equal(t, "300.00", payment.Amount.StringFixed(2))
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		svc, _, _, contribRepo := newService()

		_, err := svc.CreateContribution(ctx, CreateContributionRequest{
			Date:   testDate,
			Amount: dec(t, "0.00"),
		})
		assert.ErrorIs(t, err, shared.ErrInvalidAmount)
		contribRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestListInvoices(t *testing.T) {
	ctx := context.Background()

	t.Run("passes list options through", func(t *testing.T) {
		svc, invoiceRepo, _, _ := newService()
		opts := domain.ListOptions{Limit: 10, Descending: true}
		invoiceRepo.On("FindAll", ctx, opts).Return([]domain.IssuedInvoice{}, nil)

		_, err := svc.ListInvoices(ctx, opts)
		require.NoError(t, err)
		invoiceRepo.AssertExpectations(t)
	})
}

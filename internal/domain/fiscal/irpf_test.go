package fiscal

import (
	"testing"
	"time"

	"github.com/conta/backend/internal/domain/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContribution(t *testing.T, date, amount string) ledger.ContributionPayment {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	c, err := ledger.NewContributionPayment(d, dec(t, amount), "cuota autonomos")
	require.NoError(t, err)
	return *c
}

func testAdvancePayment(t *testing.T, year, quarter int, amount string) AdvancePayment {
	t.Helper()
	p, err := NewPeriod(year, quarter)
	require.NoError(t, err)
	payment, err := NewAdvancePayment(p, dec(t, amount), time.Date(year, time.Month(quarter*3+1), 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return *payment
}

func TestSnapshotIRPF(t *testing.T) {
	p := Period{Year: 2025, Quarter: 2}

	t.Run("accumulated snapshot without prior payments", func(t *testing.T) {
		invoices := []ledger.IssuedInvoice{
			testInvoice(t, "2025-001", "2025-01-15", "2000.00", "21.00", "0.00"),
			testInvoice(t, "2025-002", "2025-05-20", "3000.00", "21.00", "0.00"),
		}
		expenses := []ledger.DeductibleExpense{
			testExpense(t, "2025-03-01", "1000.00", "21.00", "100.00"),
		}
		contributions := []ledger.ContributionPayment{
			testContribution(t, "2025-01-31", "300.00"),
			testContribution(t, "2025-04-30", "300.00"),
		}

		snap := SnapshotIRPF(p, false, invoices, expenses, contributions, nil)
		assert.Equal(t, "5000.00", snap.Income.StringFixed(2))
		assert.Equal(t, "1600.00", snap.Expenses.StringFixed(2))
		assert.Equal(t, "3400.00", snap.NetIncome.StringFixed(2))
		assert.Equal(t, "680.00", snap.ProvisionalBase.StringFixed(2))
		assert.Equal(t, "0.00", snap.Withholdings.StringFixed(2))
		assert.Equal(t, "0.00", snap.PriorPayments.StringFixed(2))
		assert.Equal(t, "680.00", snap.Result.StringFixed(2))
		assert.Equal(t, "1000.00", snap.ExpensesExContributions.StringFixed(2))
		assert.Equal(t, "600.00", snap.Contributions.StringFixed(2))
	})

	t.Run("prior quarter payment reduces the result", func(t *testing.T) {
		invoices := []ledger.IssuedInvoice{
			testInvoice(t, "2025-003", "2025-02-01", "5000.00", "21.00", "0.00"),
		}
		expenses := []ledger.DeductibleExpense{
			testExpense(t, "2025-03-01", "1000.00", "0.00", "100.00"),
		}
		contributions := []ledger.ContributionPayment{
			testContribution(t, "2025-01-31", "600.00"),
		}
		prior := []AdvancePayment{
			testAdvancePayment(t, 2025, 1, "300.00"),
		}

		snap := SnapshotIRPF(p, false, invoices, expenses, contributions, prior)
		assert.Equal(t, "680.00", snap.ProvisionalBase.StringFixed(2))
		assert.Equal(t, "300.00", snap.PriorPayments.StringFixed(2))
		assert.Equal(t, "380.00", snap.Result.StringFixed(2))
	})

	t.Run("withholdings reduce the result in official mode", func(t *testing.T) {
		invoices := []ledger.IssuedInvoice{
			testInvoice(t, "2025-004", "2025-01-10", "1000.00", "21.00", "15.00"),
		}

		snap := SnapshotIRPF(p, false, invoices, nil, nil, nil)
		assert.Equal(t, "150.00", snap.Withholdings.StringFixed(2))
		assert.Equal(t, "200.00", snap.ProvisionalBase.StringFixed(2))
		assert.Equal(t, "50.00", snap.Result.StringFixed(2))
	})

	t.Run("restricted mode zeroes withholdings", func(t *testing.T) {
		invoices := []ledger.IssuedInvoice{
			testInvoice(t, "2025-005", "2025-01-10", "1000.00", "21.00", "15.00"),
		}

		snap := SnapshotIRPF(p, true, invoices, nil, nil, nil)
		assert.True(t, snap.Restricted)
		assert.Equal(t, "0.00", snap.Withholdings.StringFixed(2))
		assert.Equal(t, "200.00", snap.Result.StringFixed(2))
	})

	t.Run("provisional base floors at zero on losses", func(t *testing.T) {
		invoices := []ledger.IssuedInvoice{
			testInvoice(t, "2025-006", "2025-01-10", "100.00", "21.00", "0.00"),
		}
		expenses := []ledger.DeductibleExpense{
			testExpense(t, "2025-02-01", "300.00", "0.00", "100.00"),
		}

		snap := SnapshotIRPF(p, false, invoices, expenses, nil, nil)
		assert.Equal(t, "-200.00", snap.NetIncome.StringFixed(2))
		assert.Equal(t, "0.00", snap.ProvisionalBase.StringFixed(2))
		assert.Equal(t, "0.00", snap.Result.StringFixed(2))
	})

	t.Run("provisional base floors at zero on break-even", func(t *testing.T) {
		invoices := []ledger.IssuedInvoice{
			testInvoice(t, "2025-007", "2025-01-10", "500.00", "0.00", "0.00"),
		}
		expenses := []ledger.DeductibleExpense{
			testExpense(t, "2025-02-01", "500.00", "0.00", "100.00"),
		}

		snap := SnapshotIRPF(p, false, invoices, expenses, nil, nil)
		assert.Equal(t, "0.00", snap.NetIncome.StringFixed(2))
		assert.Equal(t, "0.00", snap.ProvisionalBase.StringFixed(2))
	})

	t.Run("result can go negative and is not clamped", func(t *testing.T) {
		invoices := []ledger.IssuedInvoice{
			testInvoice(t, "2025-008", "2025-01-10", "100.00", "21.00", "15.00"),
		}
		expenses := []ledger.DeductibleExpense{
			testExpense(t, "2025-02-01", "300.00", "0.00", "100.00"),
		}
		prior := []AdvancePayment{
			testAdvancePayment(t, 2025, 1, "40.00"),
		}

		snap := SnapshotIRPF(p, false, invoices, expenses, nil, prior)
		assert.Equal(t, "0.00", snap.ProvisionalBase.StringFixed(2))
		// 0.00 − 15.00 − 40.00
		assert.Equal(t, "-55.00", snap.Result.StringFixed(2))
	})

	t.Run("twenty percent is taken from the unrounded net income", func(t *testing.T) {
		// net income 100.115 × 0.20 = 20.023 → 20.02; rounding net income
		// first (100.12 → 20.024 → 20.02) happens to agree here, but base
		// 100.125 × 0.20 = 20.025 → 20.03 separates the two orders
		invoices := []ledger.IssuedInvoice{
			testInvoice(t, "2025-009", "2025-01-10", "100.125", "0.00", "0.00"),
		}

		snap := SnapshotIRPF(p, false, invoices, nil, nil, nil)
		assert.Equal(t, "20.03", snap.ProvisionalBase.StringFixed(2))
	})
}

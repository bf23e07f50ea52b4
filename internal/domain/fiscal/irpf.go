package fiscal

import (
	"github.com/conta/backend/internal/domain/ledger"
	"github.com/conta/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// advanceRate is the provisional payment rate of Modelo 130 (box 04)
var advanceRate = decimal.NewFromFloat(0.20)

// IRPFSnapshot is the accumulated Modelo 130 result for a period: every
// figure covers January 1 through the end of the period's quarter. All
// amounts are rounded to cents; NetIncome and Result keep their sign.
type IRPFSnapshot struct {
	Period     Period `json:"period"`
	Restricted bool   `json:"restricted"`

	Income          decimal.Decimal `json:"income"`
	Expenses        decimal.Decimal `json:"expenses"`
	NetIncome       decimal.Decimal `json:"net_income"`
	ProvisionalBase decimal.Decimal `json:"provisional_base"`
	Withholdings    decimal.Decimal `json:"withholdings"`
	PriorPayments   decimal.Decimal `json:"prior_payments"`
	Result          decimal.Decimal `json:"result"`

	// informational breakdown, not used in further computation
	ExpensesExContributions decimal.Decimal `json:"expenses_ex_contributions"`
	Contributions           decimal.Decimal `json:"contributions"`
}

// SnapshotIRPF computes the accumulated Modelo 130 snapshot from the
// year-to-date ledger records. In restricted mode the caller passes only the
// software-development invoices and withholdings are forced to zero; that
// mode is an analysis aid, not the official declaration.
//
// The provisional base is 20% of net income with a hard floor at zero: a
// zero or negative net income yields exactly 0.00, never a rounded negative.
// The final result is never clamped; a negative value means no payment due.
func SnapshotIRPF(
	period Period,
	restricted bool,
	invoices []ledger.IssuedInvoice,
	expenses []ledger.DeductibleExpense,
	contributions []ledger.ContributionPayment,
	priorPayments []AdvancePayment,
) IRPFSnapshot {
	income := decimal.Zero
	withholdings := decimal.Zero
	for _, inv := range invoices {
		income = income.Add(inv.Base)
		withholdings = withholdings.Add(inv.Withholding)
	}

	expensesExSS := decimal.Zero
	for _, exp := range expenses {
		expensesExSS = expensesExSS.Add(exp.DeductibleBase())
	}

	contribTotal := decimal.Zero
	for _, c := range contributions {
		contribTotal = contribTotal.Add(c.Amount)
	}

	totalExpenses := expensesExSS.Add(contribTotal)
	netIncome := income.Sub(totalExpenses)

	provisionalBase := decimal.Zero
	if netIncome.IsPositive() {
		provisionalBase = valueobject.RoundCents(netIncome.Mul(advanceRate))
	}

	if restricted {
		withholdings = decimal.Zero
	}
	withholdings = valueobject.RoundCents(withholdings)

	prior := decimal.Zero
	for _, p := range priorPayments {
		prior = prior.Add(p.Amount)
	}
	prior = valueobject.RoundCents(prior)

	return IRPFSnapshot{
		Period:                  period,
		Restricted:              restricted,
		Income:                  valueobject.RoundCents(income),
		Expenses:                valueobject.RoundCents(totalExpenses),
		NetIncome:               valueobject.RoundCents(netIncome),
		ProvisionalBase:         provisionalBase,
		Withholdings:            withholdings,
		PriorPayments:           prior,
		Result:                  valueobject.RoundCents(provisionalBase.Sub(withholdings).Sub(prior)),
		ExpensesExContributions: valueobject.RoundCents(expensesExSS),
		Contributions:           valueobject.RoundCents(contribTotal),
	}
}

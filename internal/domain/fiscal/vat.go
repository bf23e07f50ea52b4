package fiscal

import (
	"github.com/conta/backend/internal/domain/ledger"
	"github.com/conta/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// VATSettlement is the quarterly Modelo 303 result. All amounts are rounded
// to cents at the point of summation.
type VATSettlement struct {
	Period          Period          `json:"period"`
	OutputBase      decimal.Decimal `json:"output_base"`
	OutputQuota     decimal.Decimal `json:"output_quota"`
	DeductibleBase  decimal.Decimal `json:"deductible_base"`
	DeductibleQuota decimal.Decimal `json:"deductible_quota"`
	Result          decimal.Decimal `json:"result"`
}

// SettleVAT computes the Modelo 303 settlement for one quarter from the
// invoices and expenses dated within it.
//
// The output base is the plain sum of invoice bases, not filtered by rate: a
// zero-rate invoice contributes nothing to the quota but its base is still
// reported. The deductible side weights each expense by its business-use
// percentage.
func SettleVAT(period Period, invoices []ledger.IssuedInvoice, expenses []ledger.DeductibleExpense) VATSettlement {
	outputBase := decimal.Zero
	outputQuota := decimal.Zero
	for _, inv := range invoices {
		outputBase = outputBase.Add(inv.Base)
		outputQuota = outputQuota.Add(inv.VATAmount)
	}

	deductibleBase := decimal.Zero
	deductibleQuota := decimal.Zero
	for _, exp := range expenses {
		deductibleBase = deductibleBase.Add(exp.DeductibleBase())
		deductibleQuota = deductibleQuota.Add(exp.DeductibleQuota())
	}

	outputQuota = valueobject.RoundCents(outputQuota)
	deductibleQuota = valueobject.RoundCents(deductibleQuota)

	return VATSettlement{
		Period:          period,
		OutputBase:      valueobject.RoundCents(outputBase),
		OutputQuota:     outputQuota,
		DeductibleBase:  valueobject.RoundCents(deductibleBase),
		DeductibleQuota: deductibleQuota,
		Result:          outputQuota.Sub(deductibleQuota),
	}
}

// AnnualVAT is the yearly summary over four independently settled quarters
type AnnualVAT struct {
	Year            int             `json:"year"`
	Quarters        []VATSettlement `json:"quarters"`
	OutputBase      decimal.Decimal `json:"output_base"`
	OutputQuota     decimal.Decimal `json:"output_quota"`
	DeductibleBase  decimal.Decimal `json:"deductible_base"`
	DeductibleQuota decimal.Decimal `json:"deductible_quota"`
	Result          decimal.Decimal `json:"result"`
}

// SumVATYear composes the annual summary from the four quarterly
// settlements of a year. Each quarter is settled and rounded independently
// and the rounded fields are then added, so the annual totals can drift a
// few cents from a single year-wide aggregation. That matches how the four
// quarterly forms are actually filed.
func SumVATYear(year int, quarters []VATSettlement) AnnualVAT {
	annual := AnnualVAT{
		Year:            year,
		Quarters:        quarters,
		OutputBase:      decimal.Zero,
		OutputQuota:     decimal.Zero,
		DeductibleBase:  decimal.Zero,
		DeductibleQuota: decimal.Zero,
		Result:          decimal.Zero,
	}
	for _, q := range quarters {
		annual.OutputBase = annual.OutputBase.Add(q.OutputBase)
		annual.OutputQuota = annual.OutputQuota.Add(q.OutputQuota)
		annual.DeductibleBase = annual.DeductibleBase.Add(q.DeductibleBase)
		annual.DeductibleQuota = annual.DeductibleQuota.Add(q.DeductibleQuota)
		annual.Result = annual.Result.Add(q.Result)
	}
	return annual
}

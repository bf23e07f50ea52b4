package valueobject

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Money is a value object representing an EUR monetary amount.
// It is immutable - all operations return new Money instances.
// Amounts keep full precision; rounding to cents happens only at the
// settlement boundaries defined by the fiscal calculators.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a new Money from a decimal amount
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// NewMoneyFromString creates Money from a string representation
func NewMoneyFromString(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount string: %w", err)
	}
	return Money{amount: d}, nil
}

// Zero returns a zero-value Money
func Zero() Money {
	return Money{amount: decimal.Zero}
}

// Amount returns the decimal amount
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns a new Money with the sum of both amounts
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns a new Money with the difference of both amounts
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// ApplyPercent returns amount * pct / 100 without rounding
func (m Money) ApplyPercent(pct decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(pct).Div(hundred)}
}

// RoundCents rounds the amount to cents using the settlement rule
// (half up at two decimal places)
func (m Money) RoundCents() Money {
	return Money{amount: m.amount.Round(2)}
}

// IsPositive returns true if the amount is strictly greater than zero
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsNegative returns true if the amount is strictly less than zero
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Equals returns true if both amounts are numerically equal
func (m Money) Equals(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the amount formatted with two decimal places
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Value implements driver.Valuer for database serialization
func (m Money) Value() (driver.Value, error) {
	return m.amount.String(), nil
}

// Scan implements sql.Scanner for database deserialization
func (m *Money) Scan(value interface{}) error {
	var d decimal.Decimal
	if err := d.Scan(value); err != nil {
		return err
	}
	m.amount = d
	return nil
}

// RoundCents rounds a raw decimal to cents using the settlement rule
// (half up at two decimal places). Package-level convenience for the
// calculators, which work on decimal.Decimal directly.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ApplyPercent returns amount * pct / 100 without rounding, where pct is a
// percent value (21.00 means 21%)
func ApplyPercent(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).Div(hundred)
}

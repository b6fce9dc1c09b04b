// Package money provides the exact decimal monetary value used for account
// balances and operation amounts. Values are backed by shopspring/decimal
// and persist as canonical two-decimal strings, never as binary floats.
package money

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"

	apperrors "ledgerbook/internal/errors"
)

// Amount is an exact decimal monetary value with two fractional digits.
// The zero value is 0.00 and is ready to use.
type Amount struct {
	dec decimal.Decimal
}

// Parse constructs an Amount from its canonical string representation,
// e.g. "1000.00" or "-250.50". Malformed input fails with INVALID_AMOUNT.
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, apperrors.WithMessage(apperrors.ErrInvalidAmount, fmt.Sprintf("cannot parse %q as a monetary amount", s))
	}
	if d.Exponent() < -2 {
		return Amount{}, apperrors.WithMessage(apperrors.ErrInvalidAmount, fmt.Sprintf("%q has more than two fractional digits", s))
	}
	return Amount{dec: d}, nil
}

// MustParse is Parse for trusted literals; it panics on malformed input.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Add returns a + b.
func (a Amount) Add(b Amount) Amount {
	return Amount{dec: a.dec.Add(b.dec)}
}

// Sub returns a - b.
func (a Amount) Sub(b Amount) Amount {
	return Amount{dec: a.dec.Sub(b.dec)}
}

// Neg returns the amount with its sign flipped.
func (a Amount) Neg() Amount {
	return Amount{dec: a.dec.Neg()}
}

// Equal reports whether two amounts represent the same value.
func (a Amount) Equal(b Amount) bool {
	return a.dec.Equal(b.dec)
}

// Cmp compares a and b: -1 if a < b, 0 if equal, +1 if a > b.
func (a Amount) Cmp(b Amount) int {
	return a.dec.Cmp(b.dec)
}

// IsPositive reports whether the amount is strictly greater than zero.
func (a Amount) IsPositive() bool {
	return a.dec.IsPositive()
}

// IsNegative reports whether the amount is strictly less than zero.
func (a Amount) IsNegative() bool {
	return a.dec.IsNegative()
}

// String formats the amount canonically with exactly two fractional digits.
func (a Amount) String() string {
	return a.dec.StringFixed(2)
}

// Value implements driver.Valuer so amounts persist as decimal TEXT.
func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan implements sql.Scanner for TEXT decimal columns.
func (a *Amount) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	case []byte:
		return a.Scan(string(v))
	case nil:
		*a = Amount{}
		return nil
	default:
		return fmt.Errorf("money: cannot scan %T into Amount", value)
	}
}

// MarshalJSON renders the amount as a canonical JSON string.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// UnmarshalJSON parses a JSON string into an Amount.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return apperrors.ErrInvalidAmount
	}
	parsed, err := Parse(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

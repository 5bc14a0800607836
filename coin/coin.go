/*
Package coin models the single fungible value unit that the custody engine
accounts for. There is only one asset type, so an amount is a plain integer
quantity with overflow aware arithmetic.
*/
package coin

import (
	"strconv"

	"github.com/iov-one/custody/errors"
)

// MaxAmount is the highest quantity a single account can hold.
const MaxAmount Amount = 1<<63 - 1

// Amount is a quantity of the value unit. Negative amounts are never valid
// as an account balance or a transfer size, but the type is signed so that
// broken arithmetic is detected instead of wrapping around.
type Amount int64

// NewAmount returns an amount representing the given quantity.
func NewAmount(n int64) Amount {
	return Amount(n)
}

// Add combines two amounts. It returns ErrOverflow if the sum exceeds the
// type capacity.
func (a Amount) Add(o Amount) (Amount, error) {
	sum := a + o
	switch {
	case a > 0 && o > 0 && sum < 0:
		return 0, errors.Wrapf(errors.ErrOverflow, "%d + %d", a, o)
	case a < 0 && o < 0 && sum > 0:
		return 0, errors.Wrapf(errors.ErrOverflow, "%d + %d", a, o)
	}
	return sum, nil
}

// Subtract decreases this amount. It returns ErrOverflow if the result does
// not fit the type capacity.
func (a Amount) Subtract(o Amount) (Amount, error) {
	return a.Add(-o)
}

// IsPositive returns true if the amount is greater than zero.
func (a Amount) IsPositive() bool {
	return a > 0
}

// IsNonNegative returns true if the amount is zero or greater.
func (a Amount) IsNonNegative() bool {
	return a >= 0
}

// IsZero returns true if the amount represents no value.
func (a Amount) IsZero() bool {
	return a == 0
}

// Compare returns 1 if a is larger, -1 if o is larger and 0 when equal.
func (a Amount) Compare(o Amount) int {
	switch {
	case a > o:
		return 1
	case a < o:
		return -1
	default:
		return 0
	}
}

// Validate returns an error if this amount cannot represent a balance.
func (a Amount) Validate() error {
	if a < 0 {
		return errors.Wrapf(errors.ErrAmount, "negative amount: %d", a)
	}
	return nil
}

func (a Amount) String() string {
	return strconv.FormatInt(int64(a), 10)
}

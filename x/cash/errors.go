package cash

import (
	"github.com/iov-one/custody/errors"
)

// ErrInsufficientFunds is returned when the source account cannot cover a
// transfer and still retain the configured minimum balance.
var ErrInsufficientFunds = errors.Register(1200, "insufficient funds")

package cash

import (
	custody "github.com/iov-one/custody"
	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
)

// Controller is the functionality needed by other extensions to move value
// around. This is implemented by CashController, but extensions should
// depend on the interface so an alternative ledger can be plugged in.
type Controller interface {
	// Balance returns the balance of the given account. A missing account
	// has a zero balance.
	Balance(db custody.ReadOnlyKVStore, addr custody.Address) (coin.Amount, error)

	// MoveCoins transfers the amount from source to destination.
	MoveCoins(db custody.KVStore, src, dest custody.Address, amount coin.Amount) error

	// IssueCoins increases the balance of the destination account as if
	// the value appeared out of nowhere. Used for genesis and tests.
	IssueCoins(db custody.KVStore, dest custody.Address, amount coin.Amount) error
}

// CashController is the standard implementation of Controller on top of
// the wallet bucket.
type CashController struct {
	bucket orm.ModelBucket
}

var _ Controller = CashController{}

// NewController returns a base CashController
func NewController() CashController {
	return CashController{bucket: NewWalletBucket()}
}

// Balance returns the amount in the given account. A missing wallet is the
// same as an empty one.
func (c CashController) Balance(db custody.ReadOnlyKVStore, addr custody.Address) (coin.Amount, error) {
	var wallet Wallet
	switch err := c.bucket.One(db, addr, &wallet); {
	case err == nil:
		return wallet.Balance, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, errors.Wrap(err, "load wallet")
	}
}

// MoveCoins transfers the given amount from src to dest. It fails if the
// amount is not positive, or if the source account cannot cover the
// transfer and still keep the configured minimum balance.
func (c CashController) MoveCoins(db custody.KVStore, src, dest custody.Address, amount coin.Amount) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive transfer: %s", amount)
	}

	conf, err := loadConfiguration(db)
	if err != nil {
		return err
	}

	balance, err := c.Balance(db, src)
	if err != nil {
		return err
	}
	remaining, err := balance.Subtract(amount)
	if err != nil {
		return err
	}
	if remaining.Compare(conf.MinimumBalance) < 0 {
		return errors.Wrapf(ErrInsufficientFunds, "balance %s, requested %s", balance, amount)
	}

	destBalance, err := c.Balance(db, dest)
	if err != nil {
		return err
	}
	newDest, err := destBalance.Add(amount)
	if err != nil {
		return err
	}

	if err := c.bucket.Put(db, src, &Wallet{Balance: remaining}); err != nil {
		return errors.Wrap(err, "save source")
	}
	if err := c.bucket.Put(db, dest, &Wallet{Balance: newDest}); err != nil {
		return errors.Wrap(err, "save destination")
	}
	return nil
}

// IssueCoins attempts to add the given amount to the destination address.
// Fails if it overflows the wallet.
func (c CashController) IssueCoins(db custody.KVStore, dest custody.Address, amount coin.Amount) error {
	balance, err := c.Balance(db, dest)
	if err != nil {
		return err
	}
	total, err := balance.Add(amount)
	if err != nil {
		return err
	}
	if err := total.Validate(); err != nil {
		return err
	}
	return c.bucket.Put(db, dest, &Wallet{Balance: total})
}

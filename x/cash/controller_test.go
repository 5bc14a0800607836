package cash

import (
	"testing"

	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControllerIssueAndBalance(t *testing.T) {
	db := store.MemStore()
	control := NewController()
	addr := custodytest.NewCondition().Address()

	// a missing account has a zero balance
	balance, err := control.Balance(db, addr)
	require.NoError(t, err)
	assert.Equal(t, coin.NewAmount(0), balance)

	require.NoError(t, control.IssueCoins(db, addr, coin.NewAmount(50)))
	balance, err = control.Balance(db, addr)
	require.NoError(t, err)
	assert.Equal(t, coin.NewAmount(50), balance)

	// issuing a negative amount burns, but never below zero
	require.NoError(t, control.IssueCoins(db, addr, coin.NewAmount(-20)))
	balance, err = control.Balance(db, addr)
	require.NoError(t, err)
	assert.Equal(t, coin.NewAmount(30), balance)

	err = control.IssueCoins(db, addr, coin.NewAmount(-100))
	assert.True(t, errors.ErrAmount.Is(err))
}

func TestControllerMoveCoins(t *testing.T) {
	src := custodytest.NewCondition().Address()
	dest := custodytest.NewCondition().Address()

	cases := map[string]struct {
		srcBalance coin.Amount
		minBalance coin.Amount
		amount     coin.Amount
		wantErr    *errors.Error
		wantSrc    coin.Amount
		wantDest   coin.Amount
	}{
		"simple transfer": {
			srcBalance: 10, amount: 4,
			wantSrc: 6, wantDest: 4,
		},
		"whole balance": {
			srcBalance: 10, amount: 10,
			wantSrc: 0, wantDest: 10,
		},
		"insufficient funds": {
			srcBalance: 5, amount: 10,
			wantErr: ErrInsufficientFunds,
		},
		"missing source account": {
			srcBalance: 0, amount: 1,
			wantErr: ErrInsufficientFunds,
		},
		"non-positive amount": {
			srcBalance: 10, amount: 0,
			wantErr: errors.ErrAmount,
		},
		"minimum balance floor blocks": {
			srcBalance: 10, minBalance: 3, amount: 8,
			wantErr: ErrInsufficientFunds,
		},
		"minimum balance floor respected": {
			srcBalance: 10, minBalance: 3, amount: 7,
			wantSrc: 3, wantDest: 7,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			control := NewController()
			if tc.srcBalance > 0 {
				require.NoError(t, control.IssueCoins(db, src, tc.srcBalance))
			}
			if tc.minBalance > 0 {
				require.NoError(t, saveConfiguration(db, Configuration{MinimumBalance: tc.minBalance}))
			}

			err := control.MoveCoins(db, src, dest, tc.amount)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
				// failed transfer must not change any balance
				got, berr := control.Balance(db, src)
				require.NoError(t, berr)
				assert.Equal(t, tc.srcBalance, got)
				got, berr = control.Balance(db, dest)
				require.NoError(t, berr)
				assert.Equal(t, coin.NewAmount(0), got)
				return
			}
			require.NoError(t, err)
			got, berr := control.Balance(db, src)
			require.NoError(t, berr)
			assert.Equal(t, tc.wantSrc, got)
			got, berr = control.Balance(db, dest)
			require.NoError(t, berr)
			assert.Equal(t, tc.wantDest, got)
		})
	}
}

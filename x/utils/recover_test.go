package utils

import (
	"context"
	"testing"

	custody "github.com/iov-one/custody"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/store"
	"github.com/stretchr/testify/require"
)

type panicHandler struct{}

func (panicHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	panic("check panics")
}

func (panicHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	panic("deliver panics")
}

func TestRecovery(t *testing.T) {
	ctx := context.Background()
	db := store.MemStore()
	r := NewRecovery()

	_, err := r.Check(ctx, db, &custodytest.Tx{}, panicHandler{})
	require.Error(t, err)
	require.True(t, errors.ErrPanic.Is(err))

	_, err = r.Deliver(ctx, db, &custodytest.Tx{}, panicHandler{})
	require.Error(t, err)
	require.True(t, errors.ErrPanic.Is(err))

	// sanity check that a healthy handler is untouched
	_, err = r.Check(ctx, db, &custodytest.Tx{}, &custodytest.Handler{})
	require.NoError(t, err)
}

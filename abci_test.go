package custody_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/stretchr/testify/assert"
	"github.com/tendermint/tendermint/libs/common"
)

func TestDeliverTxError(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"coded error": {
			err:      errors.Wrap(errors.ErrUnauthorized, "main signer"),
			wantCode: 2,
			wantLog:  "cannot deliver tx: main signer: unauthorized",
		},
		"raw error is redacted": {
			err:      fmt.Errorf("db file corrupt"),
			wantCode: 1,
			wantLog:  "cannot deliver tx: internal error",
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			res := custody.DeliverTxError(tc.err, tc.debug)
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantLog, res.Log)
		})
	}
}

func TestCheckTxError(t *testing.T) {
	res := custody.CheckTxError(errors.Wrap(errors.ErrNotFound, "no vault"), false)
	assert.Equal(t, uint32(3), res.Code)
	assert.Equal(t, "cannot check tx: no vault: not found", res.Log)

	// internal details are hidden from the client
	res = custody.CheckTxError(fmt.Errorf("connection reset"), false)
	assert.Equal(t, uint32(1), res.Code)
	assert.Equal(t, "cannot check tx: internal error", res.Log)
}

func TestTxErrorDebug(t *testing.T) {
	// in debug mode the original message and the stack trace survive,
	// even for errors without an abci code
	err := errors.Wrap(fmt.Errorf("db file corrupt"), "loading wallet")
	res := custody.DeliverTxError(err, true)
	assert.Equal(t, uint32(1), res.Code)
	assert.Contains(t, res.Log, "db file corrupt")
	assert.Contains(t, res.Log, "github.com/iov-one/custody")
	assert.True(t, strings.HasPrefix(res.Log, "cannot deliver tx: "))
}

func TestDeliverOrError(t *testing.T) {
	// an error takes precedence over any result
	res := custody.DeliverOrError(&custody.DeliverResult{Log: "ignored"},
		errors.Wrap(errors.ErrState, "resolved"), false)
	assert.Equal(t, uint32(10), res.Code)
	assert.Equal(t, "cannot deliver tx: resolved: invalid state", res.Log)

	// without an error the result is converted as is
	data := []byte{1, 3, 4}
	tags := []common.KVPair{{Key: []byte("action"), Value: []byte("execute")}}
	dres := &custody.DeliverResult{Data: data, Log: "got it", Tags: tags, GasUsed: 7}
	ok := custody.DeliverOrError(dres, nil, false)
	assert.EqualValues(t, uint32(0), ok.Code)
	assert.EqualValues(t, data, ok.Data)
	assert.Equal(t, "got it", ok.Log)
	assert.Equal(t, tags, ok.Tags)
	assert.Equal(t, int64(7), ok.GasUsed)
}

func TestCheckOrError(t *testing.T) {
	res := custody.CheckOrError(&custody.CheckResult{Log: "ignored"},
		errors.Wrap(errors.ErrAmount, "zero send"), false)
	assert.Equal(t, uint32(13), res.Code)
	assert.Equal(t, "cannot check tx: zero send: invalid amount", res.Log)

	cres := custody.NewCheck(12345, "aok")
	ok := custody.CheckOrError(&cres, nil, false)
	assert.Equal(t, uint32(0), ok.Code)
	assert.Equal(t, "aok", ok.Log)
	assert.Equal(t, int64(12345), ok.GasWanted)
	assert.Empty(t, ok.Data)
}

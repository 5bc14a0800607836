package custody_test

import (
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMsg(t *testing.T) {
	msg := &custodytest.Msg{RoutePath: "test/good"}
	tx := &custodytest.Tx{Msg: msg}

	var dest custodytest.Msg
	require.NoError(t, custody.LoadMsg(tx, &dest))
	assert.Equal(t, "test/good", dest.Path())
}

func TestLoadMsgErrors(t *testing.T) {
	cases := map[string]struct {
		tx      custody.Tx
		dest    custody.Msg
		wantErr *errors.Error
	}{
		"broken transaction": {
			tx:      &custodytest.Tx{Err: errors.ErrState},
			dest:    &custodytest.Msg{},
			wantErr: errors.ErrState,
		},
		"invalid message": {
			tx:      &custodytest.Tx{Msg: &custodytest.Msg{Err: errors.ErrAmount}},
			dest:    &custodytest.Msg{},
			wantErr: errors.ErrAmount,
		},
		"non pointer destination": {
			tx:      &custodytest.Tx{Msg: &custodytest.Msg{}},
			dest:    nonPointerMsg{},
			wantErr: errors.ErrType,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := custody.LoadMsg(tc.tx, tc.dest); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

type nonPointerMsg struct{}

func (nonPointerMsg) Path() string             { return "test/nonpointer" }
func (nonPointerMsg) Validate() error          { return nil }
func (nonPointerMsg) Marshal() ([]byte, error) { return nil, nil }
func (nonPointerMsg) Unmarshal([]byte) error   { return nil }

func TestGetPath(t *testing.T) {
	tx := &custodytest.Tx{Msg: &custodytest.Msg{RoutePath: "vault/create"}}
	assert.Equal(t, "vault/create", custody.GetPath(tx))

	broken := &custodytest.Tx{Err: errors.ErrState}
	assert.Equal(t, "(missing)", custody.GetPath(broken))
}

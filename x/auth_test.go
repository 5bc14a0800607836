package x

import (
	"context"
	"testing"

	custody "github.com/iov-one/custody"
	"github.com/iov-one/custody/custodytest"
	"github.com/stretchr/testify/assert"
)

func TestAuth(t *testing.T) {
	a := custodytest.NewCondition()
	b := custodytest.NewCondition()
	c := custodytest.NewCondition()

	ctx := context.Background()

	cases := map[string]struct {
		auth       Authenticator
		mainSigner custody.Condition
		has        []custody.Address
		notHas     []custody.Address
		all        []custody.Address
		notAll     []custody.Address
	}{
		"empty authentication": {
			auth:   &custodytest.Auth{},
			notHas: []custody.Address{a.Address()},
			all:    []custody.Address{},
			notAll: []custody.Address{b.Address()},
		},
		"single signer": {
			auth:       &custodytest.Auth{Signer: a},
			mainSigner: a,
			has:        []custody.Address{a.Address()},
			notHas:     []custody.Address{b.Address()},
			all:        []custody.Address{a.Address()},
			notAll:     []custody.Address{a.Address(), b.Address()},
		},
		"chained authenticators": {
			auth:       ChainAuth(&custodytest.Auth{Signer: b}, &custodytest.Auth{Signer: c}),
			mainSigner: b,
			has:        []custody.Address{b.Address(), c.Address()},
			notHas:     []custody.Address{a.Address()},
			all:        []custody.Address{b.Address(), c.Address()},
			notAll:     []custody.Address{a.Address(), b.Address(), c.Address()},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.mainSigner, MainSigner(ctx, tc.auth))
			for _, addr := range tc.has {
				assert.True(t, tc.auth.HasAddress(ctx, addr))
			}
			for _, addr := range tc.notHas {
				assert.False(t, tc.auth.HasAddress(ctx, addr))
			}
			assert.True(t, HasAllAddresses(ctx, tc.auth, tc.all))
			assert.False(t, HasAllAddresses(ctx, tc.auth, tc.notAll))
		})
	}
}

func TestHasNAddresses(t *testing.T) {
	a := custodytest.NewCondition()
	b := custodytest.NewCondition()
	c := custodytest.NewCondition()

	ctx := context.Background()
	auth := &custodytest.Auth{Signers: []custody.Condition{a, b}}
	required := []custody.Address{a.Address(), b.Address(), c.Address()}

	assert.True(t, HasNAddresses(ctx, auth, required, 0))
	assert.True(t, HasNAddresses(ctx, auth, required, 1))
	assert.True(t, HasNAddresses(ctx, auth, required, 2))
	assert.False(t, HasNAddresses(ctx, auth, required, 3))
}

func TestGetAddresses(t *testing.T) {
	a := custodytest.NewCondition()
	b := custodytest.NewCondition()

	ctx := context.Background()
	auth := &custodytest.Auth{Signers: []custody.Condition{a, b}}

	addrs := GetAddresses(ctx, auth)
	assert.Equal(t, []custody.Address{a.Address(), b.Address()}, addrs)
}

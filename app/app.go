package app

import (
	custody "github.com/iov-one/custody"
	"github.com/iov-one/custody/x"
	"github.com/iov-one/custody/x/cash"
	"github.com/iov-one/custody/x/utils"
	"github.com/iov-one/custody/x/vault"
)

// Stack wires up the standard custody application: every extension route
// behind one router, wrapped so each transaction recovers from panics, is
// logged, and commits all-or-nothing through a savepoint.
//
// Authentication of the transaction signers is the host's concern and is
// injected through the Authenticator.
func Stack(auth x.Authenticator, control cash.Controller) custody.Handler {
	r := NewRouter()
	cash.RegisterRoutes(r, auth, control)
	vault.RegisterRoutes(r, auth, control)

	return ChainDecorators(
		utils.NewRecovery(),
		utils.NewLogging(),
		utils.NewSavepoint().OnCheck().OnDeliver(),
	).WithHandler(r)
}

// QueryRouter returns a router resolving all registered query paths.
func QueryRouter() custody.QueryRouter {
	qr := custody.NewQueryRouter()
	qr.RegisterAll(
		cash.RegisterQuery,
		vault.RegisterQuery,
	)
	return qr
}

// InitGenesis runs the initializers of all extensions on the given
// genesis options.
func InitGenesis(opts custody.Options, db custody.KVStore) error {
	inits := []custody.Initializer{
		cash.Initializer{},
	}
	for _, ini := range inits {
		if err := ini.FromGenesis(opts, db); err != nil {
			return err
		}
	}
	return nil
}

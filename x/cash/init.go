package cash

import (
	custody "github.com/iov-one/custody"
	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/errors"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file
type GenesisAccount struct {
	Address custody.Address `json:"address"`
	Balance coin.Amount     `json:"balance"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ custody.Initializer = Initializer{}

// FromGenesis will parse initial account info and the ledger configuration
// from genesis and save it to the database
func (Initializer) FromGenesis(opts custody.Options, kv custody.KVStore) error {
	accts := []GenesisAccount{}
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return err
	}
	bucket := NewWalletBucket()
	for _, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrap(err, "genesis account address")
		}
		wallet := Wallet{Balance: acct.Balance}
		if err := bucket.Put(kv, acct.Address, &wallet); err != nil {
			return err
		}
	}

	var conf struct {
		Cash Configuration `json:"cash"`
	}
	if err := opts.ReadOptions("conf", &conf); err != nil {
		return errors.Wrap(err, "configuration")
	}
	return saveConfiguration(kv, conf.Cash)
}

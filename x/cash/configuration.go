package cash

import (
	custody "github.com/iov-one/custody"
	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/errors"
)

// configurationKey is the KV entry the runtime configuration lives under.
var configurationKey = []byte("_c:cash")

// Configuration is the runtime ledger configuration. MinimumBalance is the
// floor every source account must retain after a transfer. Zero disables
// the floor.
type Configuration struct {
	MinimumBalance coin.Amount `json:"minimum_balance"`
}

func (c *Configuration) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(c)
}

func (c *Configuration) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, c)
}

func (c *Configuration) Validate() error {
	if !c.MinimumBalance.IsNonNegative() {
		return errors.Wrap(errors.ErrState, "minimum balance cannot be negative")
	}
	return nil
}

// loadConfiguration returns the stored configuration. A missing entry is
// not an error and yields the zero configuration (no floor).
func loadConfiguration(db custody.ReadOnlyKVStore) (Configuration, error) {
	var conf Configuration
	raw, err := db.Get(configurationKey)
	if err != nil {
		return conf, err
	}
	if raw == nil {
		return conf, nil
	}
	if err := conf.Unmarshal(raw); err != nil {
		return conf, errors.Wrap(err, "load configuration")
	}
	return conf, nil
}

// saveConfiguration persists the configuration for all future transfers.
func saveConfiguration(db custody.KVStore, conf Configuration) error {
	if err := conf.Validate(); err != nil {
		return err
	}
	raw, err := conf.Marshal()
	if err != nil {
		return err
	}
	return db.Set(configurationKey, raw)
}

package custodytest

import (
	"crypto/rand"

	custody "github.com/iov-one/custody"
)

// NewCondition returns a random signature condition, as if it came from a
// freshly generated keypair.
func NewCondition() custody.Condition {
	data := make([]byte, 32)
	if _, err := rand.Read(data); err != nil {
		panic(err)
	}
	return custody.NewCondition("sigs", "ed25519", data)
}

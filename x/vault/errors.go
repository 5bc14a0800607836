package vault

import (
	"github.com/iov-one/custody/errors"
)

var (
	// ErrInvalidThreshold is returned when the threshold is zero or
	// exceeds the owner count.
	ErrInvalidThreshold = errors.Register(1100, "invalid threshold")

	// ErrTooManyOwners is returned when more than MaxOwners owners are
	// supplied at creation.
	ErrTooManyOwners = errors.Register(1101, "too many owners")

	// ErrVaultExists is returned when the derived vault address is
	// already taken. Re-creation never overwrites.
	ErrVaultExists = errors.Register(1102, "vault already exists")

	// ErrAlreadyApproved is returned when an owner approves the same
	// proposal twice.
	ErrAlreadyApproved = errors.Register(1103, "already approved")

	// ErrInsufficientApprovals is returned when executing a proposal
	// that has not collected enough approvals.
	ErrInsufficientApprovals = errors.Register(1104, "insufficient approvals")

	// ErrAlreadyResolved is returned for any operation on a proposal
	// that was already executed or cancelled.
	ErrAlreadyResolved = errors.Register(1105, "proposal already resolved")

	// ErrInvalidVault is returned when vault state does not verify: the
	// vault is missing, the stored entity does not match its derived
	// address, or a proposal reference does not belong to the vault.
	ErrInvalidVault = errors.Register(1106, "invalid vault")
)

package vault

import (
	"encoding/binary"
	"fmt"

	custody "github.com/iov-one/custody"
	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
)

// MaxOwners bounds the owner set of a single vault.
const MaxOwners = 10

// VaultCondition is the deterministic identity of the vault created by the
// given creator. Its address is both the vault key and the custody account
// holding deposited value.
func VaultCondition(creator custody.Condition) custody.Condition {
	return custody.NewCondition("vault", "owned", creator)
}

// ProposalCondition is the deterministic identity of the seq-th proposal
// of the given vault.
func ProposalCondition(vault custody.Address, seq uint64) custody.Condition {
	return custody.NewCondition("vault", "prop", proposalKey(vault, seq))
}

// proposalKey is the primary bucket key of a proposal: the owning vault
// address followed by the big endian sequence number, so all proposals of
// one vault share a prefix and order by creation.
func proposalKey(vault custody.Address, seq uint64) []byte {
	key := make([]byte, len(vault)+8)
	copy(key, vault)
	binary.BigEndian.PutUint64(key[len(vault):], seq)
	return key
}

// Status is the lifecycle stage of a proposal. Executed and cancelled are
// both terminal but kept distinct for the audit trail.
type Status int8

const (
	// StatusInvalid is the zero value and never a legal stored state.
	StatusInvalid Status = 0

	StatusPending   Status = 1
	StatusExecuted  Status = 2
	StatusCancelled Status = 3
)

func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusExecuted, StatusCancelled:
		return nil
	default:
		return errors.Wrapf(errors.ErrState, "status %d", s)
	}
}

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusExecuted:
		return "executed"
	case StatusCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("invalid(%d)", int8(s))
	}
}

// Vault is the shared custody account: a fixed owner set, the approval
// threshold and the sequence counter for its proposals. It is stored under
// the address derived from its creator, and the owner set and threshold
// are immutable after creation.
type Vault struct {
	Creator       custody.Condition `json:"creator"`
	Owners        []custody.Address `json:"owners"`
	Threshold     uint32            `json:"threshold"`
	ProposalCount uint64            `json:"proposal_count"`
}

var _ orm.Model = (*Vault)(nil)

func (v *Vault) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(v)
}

func (v *Vault) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, v)
}

func (v *Vault) Validate() error {
	if err := v.Creator.Validate(); err != nil {
		return errors.Wrap(err, "creator")
	}
	if err := validateOwners(v.Owners); err != nil {
		return err
	}
	if err := validateThreshold(v.Threshold, len(v.Owners)); err != nil {
		return err
	}
	return nil
}

// Copy produces a new vault with an independent owner set
func (v *Vault) Copy() orm.CloneableData {
	owners := make([]custody.Address, len(v.Owners))
	for i, o := range v.Owners {
		owners[i] = o.Clone()
	}
	return &Vault{
		Creator:       append(custody.Condition(nil), v.Creator...),
		Owners:        owners,
		Threshold:     v.Threshold,
		ProposalCount: v.ProposalCount,
	}
}

// Address returns the deterministic address this vault must be stored
// under. Handlers compare it against the key on every load.
func (v *Vault) Address() custody.Address {
	return VaultCondition(v.Creator).Address()
}

// IsOwner returns true if the given address belongs to the owner set.
func (v *Vault) IsOwner(addr custody.Address) bool {
	for _, o := range v.Owners {
		if o.Equals(addr) {
			return true
		}
	}
	return false
}

func validateOwners(owners []custody.Address) error {
	if len(owners) == 0 {
		return errors.Wrap(ErrInvalidThreshold, "no owners")
	}
	if len(owners) > MaxOwners {
		return errors.Wrapf(ErrTooManyOwners, "%d owners", len(owners))
	}
	for i, o := range owners {
		if err := o.Validate(); err != nil {
			return errors.Wrapf(err, "owner #%d", i)
		}
		for _, prev := range owners[:i] {
			if prev.Equals(o) {
				return errors.Wrapf(errors.ErrDuplicate, "owner %s", o)
			}
		}
	}
	return nil
}

func validateThreshold(threshold uint32, owners int) error {
	if threshold < 1 || int(threshold) > owners {
		return errors.Wrapf(ErrInvalidThreshold, "%d of %d owners", threshold, owners)
	}
	return nil
}

// Proposal is a single spend request scoped to one vault. Destination and
// amount are fixed at creation; only the approval set and the status may
// change, and once the status is terminal nothing changes anymore.
// Resolved proposals persist as an audit trail.
type Proposal struct {
	Vault       custody.Address   `json:"vault"`
	Destination custody.Address   `json:"destination"`
	Amount      coin.Amount       `json:"amount"`
	Approvals   []custody.Address `json:"approvals"`
	SequenceID  uint64            `json:"sequence_id"`
	Status      Status            `json:"status"`
}

var _ orm.Model = (*Proposal)(nil)

func (p *Proposal) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(p)
}

func (p *Proposal) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, p)
}

func (p *Proposal) Validate() error {
	if err := p.Vault.Validate(); err != nil {
		return errors.Wrap(err, "vault")
	}
	if err := p.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if !p.Amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount: %s", p.Amount)
	}
	if err := p.Status.Validate(); err != nil {
		return err
	}
	for i, a := range p.Approvals {
		if err := a.Validate(); err != nil {
			return errors.Wrapf(err, "approval #%d", i)
		}
		for _, prev := range p.Approvals[:i] {
			if prev.Equals(a) {
				return errors.Wrapf(errors.ErrDuplicate, "approval %s", a)
			}
		}
	}
	return nil
}

// Copy produces a new proposal with an independent approval set
func (p *Proposal) Copy() orm.CloneableData {
	approvals := make([]custody.Address, len(p.Approvals))
	for i, a := range p.Approvals {
		approvals[i] = a.Clone()
	}
	return &Proposal{
		Vault:       p.Vault.Clone(),
		Destination: p.Destination.Clone(),
		Amount:      p.Amount,
		Approvals:   approvals,
		SequenceID:  p.SequenceID,
		Status:      p.Status,
	}
}

// Resolved returns true once the proposal reached a terminal state.
func (p *Proposal) Resolved() bool {
	return p.Status == StatusExecuted || p.Status == StatusCancelled
}

// HasApproved returns true if the given owner already approved.
func (p *Proposal) HasApproved(addr custody.Address) bool {
	for _, a := range p.Approvals {
		if a.Equals(addr) {
			return true
		}
	}
	return false
}

// Address returns the deterministic proposal address.
func (p *Proposal) Address() custody.Address {
	return ProposalCondition(p.Vault, p.SequenceID).Address()
}

// NewVaultBucket returns a bucket for keeping track of vaults, keyed by
// the vault address.
func NewVaultBucket() orm.ModelBucket {
	return orm.NewModelBucket("vault", &Vault{})
}

// NewProposalBucket returns a bucket for keeping track of proposals, keyed
// by vault address and sequence number.
func NewProposalBucket() orm.ModelBucket {
	return orm.NewModelBucket("proposal", &Proposal{})
}

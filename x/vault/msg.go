package vault

import (
	custody "github.com/iov-one/custody"
	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/errors"
)

const (
	creationCost int64 = 1
	proposalCost int64 = 1
	executeCost  int64 = 100
)

var (
	_ custody.Msg = (*CreateVaultMsg)(nil)
	_ custody.Msg = (*CreateProposalMsg)(nil)
	_ custody.Msg = (*ApproveMsg)(nil)
	_ custody.Msg = (*ExecuteMsg)(nil)
	_ custody.Msg = (*CancelMsg)(nil)
)

// CreateVaultMsg creates a new vault controlled by the given owner set.
// The main signer of the transaction is the creator the vault address is
// derived from.
type CreateVaultMsg struct {
	Owners    []custody.Address `json:"owners"`
	Threshold uint32            `json:"threshold"`
}

func (CreateVaultMsg) Path() string {
	return "vault/create"
}

func (m *CreateVaultMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *CreateVaultMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

func (m *CreateVaultMsg) Validate() error {
	if err := validateOwners(m.Owners); err != nil {
		return err
	}
	return validateThreshold(m.Threshold, len(m.Owners))
}

// CreateProposalMsg opens a spend proposal against the given vault. The
// main signer must be a vault owner. The amount is not checked against the
// vault balance here, only at execution time.
type CreateProposalMsg struct {
	Vault       custody.Address `json:"vault"`
	Destination custody.Address `json:"destination"`
	Amount      coin.Amount     `json:"amount"`
}

func (CreateProposalMsg) Path() string {
	return "vault/propose"
}

func (m *CreateProposalMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *CreateProposalMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

func (m *CreateProposalMsg) Validate() error {
	var err error
	if !m.Amount.IsPositive() {
		err = errors.Wrapf(errors.ErrAmount, "non-positive amount: %s", m.Amount)
	}
	err = errors.Append(err, errors.Wrap(m.Vault.Validate(), "vault"))
	return errors.Append(err, errors.Wrap(m.Destination.Validate(), "destination"))
}

// ApproveMsg registers the main signer's approval on a pending proposal.
type ApproveMsg struct {
	Vault      custody.Address `json:"vault"`
	ProposalID uint64          `json:"proposal_id"`
}

func (ApproveMsg) Path() string {
	return "vault/approve"
}

func (m *ApproveMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *ApproveMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

func (m *ApproveMsg) Validate() error {
	return errors.Wrap(m.Vault.Validate(), "vault")
}

// ExecuteMsg pays out a proposal that collected enough approvals. Anyone
// may execute, so relay cost does not have to fall on the owners. The
// destination is repeated and must match the proposal.
type ExecuteMsg struct {
	Vault       custody.Address `json:"vault"`
	ProposalID  uint64          `json:"proposal_id"`
	Destination custody.Address `json:"destination"`
}

func (ExecuteMsg) Path() string {
	return "vault/execute"
}

func (m *ExecuteMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *ExecuteMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

func (m *ExecuteMsg) Validate() error {
	err := errors.Wrap(m.Vault.Validate(), "vault")
	return errors.Append(err, errors.Wrap(m.Destination.Validate(), "destination"))
}

// CancelMsg terminates a pending proposal without moving value.
type CancelMsg struct {
	Vault      custody.Address `json:"vault"`
	ProposalID uint64          `json:"proposal_id"`
}

func (CancelMsg) Path() string {
	return "vault/cancel"
}

func (m *CancelMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *CancelMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

func (m *CancelMsg) Validate() error {
	return errors.Wrap(m.Vault.Validate(), "vault")
}

package vault

import (
	custody "github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
	"github.com/iov-one/custody/x"
	"github.com/iov-one/custody/x/cash"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r custody.Registry, auth x.Authenticator, control cash.Controller) {
	vaults := NewVaultBucket()
	proposals := NewProposalBucket()

	r.Handle(&CreateVaultMsg{}, CreateVaultHandler{auth: auth, vaults: vaults})
	r.Handle(&CreateProposalMsg{}, CreateProposalHandler{auth: auth, vaults: vaults, proposals: proposals})
	r.Handle(&ApproveMsg{}, ApproveHandler{auth: auth, vaults: vaults, proposals: proposals})
	r.Handle(&ExecuteMsg{}, ExecuteHandler{auth: auth, vaults: vaults, proposals: proposals, control: control})
	r.Handle(&CancelMsg{}, CancelHandler{auth: auth, vaults: vaults, proposals: proposals})
}

// RegisterQuery registers vaults and proposals for queries
func RegisterQuery(qr custody.QueryRouter) {
	NewVaultBucket().Register("vaults", qr)
	NewProposalBucket().Register("proposals", qr)
}

// loadVault returns the vault stored under the given address. The stored
// entity must re-derive to the very same address, so a spoofed entry can
// never act as a vault.
func loadVault(db custody.ReadOnlyKVStore, vaults orm.ModelBucket, addr custody.Address) (*Vault, error) {
	var v Vault
	if err := vaults.One(db, addr, &v); err != nil {
		if errors.ErrNotFound.Is(err) {
			return nil, errors.Wrapf(ErrInvalidVault, "no vault at %s", addr)
		}
		return nil, err
	}
	if !v.Address().Equals(addr) {
		return nil, errors.Wrapf(ErrInvalidVault, "vault at %s does not verify", addr)
	}
	return &v, nil
}

// loadProposal returns the given proposal of the vault and verifies its
// scope and address derivation.
func loadProposal(db custody.ReadOnlyKVStore, proposals orm.ModelBucket, vaultAddr custody.Address, id uint64) (*Proposal, error) {
	var p Proposal
	if err := proposals.One(db, proposalKey(vaultAddr, id), &p); err != nil {
		return nil, errors.Wrap(err, "proposal")
	}
	if !p.Vault.Equals(vaultAddr) || p.SequenceID != id {
		return nil, errors.Wrapf(ErrInvalidVault, "proposal %d does not belong to vault %s", id, vaultAddr)
	}
	return &p, nil
}

// CreateVaultHandler allocates new vaults.
type CreateVaultHandler struct {
	auth   x.Authenticator
	vaults orm.ModelBucket
}

var _ custody.Handler = CreateVaultHandler{}

func (h CreateVaultHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &custody.CheckResult{GasAllocated: creationCost}, nil
}

func (h CreateVaultHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, creator, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	vault := &Vault{
		Creator:   creator,
		Owners:    msg.Owners,
		Threshold: msg.Threshold,
	}
	addr := vault.Address()
	if err := h.vaults.Put(db, addr, vault); err != nil {
		return nil, errors.Wrap(err, "save vault")
	}
	return &custody.DeliverResult{Data: addr}, nil
}

func (h CreateVaultHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*CreateVaultMsg, custody.Condition, error) {
	var msg CreateVaultMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	creator := x.MainSigner(ctx, h.auth)
	if creator == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "creator signature missing")
	}
	addr := VaultCondition(creator).Address()
	switch has, err := h.vaults.Has(db, addr); {
	case err != nil:
		return nil, nil, err
	case has:
		return nil, nil, errors.Wrapf(ErrVaultExists, "%s", addr)
	}
	return &msg, creator, nil
}

// CreateProposalHandler opens spend proposals and advances the vault's
// sequence counter in the same atomic unit.
type CreateProposalHandler struct {
	auth      x.Authenticator
	vaults    orm.ModelBucket
	proposals orm.ModelBucket
}

var _ custody.Handler = CreateProposalHandler{}

func (h CreateProposalHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &custody.CheckResult{GasAllocated: proposalCost}, nil
}

func (h CreateProposalHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, vault, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	seq := vault.ProposalCount
	proposal := &Proposal{
		Vault:       msg.Vault,
		Destination: msg.Destination,
		Amount:      msg.Amount,
		SequenceID:  seq,
		Status:      StatusPending,
	}
	key := proposalKey(msg.Vault, seq)
	if err := h.proposals.Put(db, key, proposal); err != nil {
		return nil, errors.Wrap(err, "save proposal")
	}

	// The counter moves together with the proposal, inside the same
	// savepoint. If either write fails the whole operation rolls back.
	vault.ProposalCount++
	if err := h.vaults.Put(db, msg.Vault, vault); err != nil {
		return nil, errors.Wrap(err, "save vault")
	}

	return &custody.DeliverResult{Data: key}, nil
}

func (h CreateProposalHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*CreateProposalMsg, *Vault, error) {
	var msg CreateProposalMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	vault, err := loadVault(db, h.vaults, msg.Vault)
	if err != nil {
		return nil, nil, err
	}
	proposer := x.MainSigner(ctx, h.auth)
	if proposer == nil || !vault.IsOwner(proposer.Address()) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "proposer is not an owner")
	}
	return &msg, vault, nil
}

// ApproveHandler registers owner approvals, one per owner per proposal.
type ApproveHandler struct {
	auth      x.Authenticator
	vaults    orm.ModelBucket
	proposals orm.ModelBucket
}

var _ custody.Handler = ApproveHandler{}

func (h ApproveHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &custody.CheckResult{}, nil
}

func (h ApproveHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, proposal, signer, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	proposal.Approvals = append(proposal.Approvals, signer.Address())
	if err := h.proposals.Put(db, proposalKey(msg.Vault, msg.ProposalID), proposal); err != nil {
		return nil, errors.Wrap(err, "save proposal")
	}
	return &custody.DeliverResult{}, nil
}

func (h ApproveHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*ApproveMsg, *Proposal, custody.Condition, error) {
	var msg ApproveMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	vault, err := loadVault(db, h.vaults, msg.Vault)
	if err != nil {
		return nil, nil, nil, err
	}
	proposal, err := loadProposal(db, h.proposals, msg.Vault, msg.ProposalID)
	if err != nil {
		return nil, nil, nil, err
	}

	signer := x.MainSigner(ctx, h.auth)
	if signer == nil || !vault.IsOwner(signer.Address()) {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "signer is not an owner")
	}
	if proposal.Resolved() {
		return nil, nil, nil, errors.Wrapf(ErrAlreadyResolved, "proposal is %s", proposal.Status)
	}
	if proposal.HasApproved(signer.Address()) {
		return nil, nil, nil, errors.Wrapf(ErrAlreadyApproved, "owner %s", signer.Address())
	}
	return &msg, proposal, signer, nil
}

// ExecuteHandler pays out proposals that met their threshold.
type ExecuteHandler struct {
	auth      x.Authenticator
	vaults    orm.ModelBucket
	proposals orm.ModelBucket
	control   cash.Controller
}

var _ custody.Handler = ExecuteHandler{}

func (h ExecuteHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &custody.CheckResult{GasAllocated: executeCost}, nil
}

func (h ExecuteHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, proposal, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// The transfer and the status flip are one atomic unit. A failed
	// transfer (eg. insufficient funds) aborts before any state change.
	if err := h.control.MoveCoins(db, msg.Vault, proposal.Destination, proposal.Amount); err != nil {
		return nil, err
	}
	proposal.Status = StatusExecuted
	if err := h.proposals.Put(db, proposalKey(msg.Vault, msg.ProposalID), proposal); err != nil {
		return nil, errors.Wrap(err, "save proposal")
	}
	return &custody.DeliverResult{}, nil
}

func (h ExecuteHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*ExecuteMsg, *Proposal, error) {
	var msg ExecuteMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	vault, err := loadVault(db, h.vaults, msg.Vault)
	if err != nil {
		return nil, nil, err
	}
	proposal, err := loadProposal(db, h.proposals, msg.Vault, msg.ProposalID)
	if err != nil {
		return nil, nil, err
	}

	// Anyone may execute, but the transaction must be signed.
	if x.MainSigner(ctx, h.auth) == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "signature missing")
	}
	if proposal.Resolved() {
		return nil, nil, errors.Wrapf(ErrAlreadyResolved, "proposal is %s", proposal.Status)
	}
	if len(proposal.Approvals) < int(vault.Threshold) {
		return nil, nil, errors.Wrapf(ErrInsufficientApprovals, "%d of %d", len(proposal.Approvals), vault.Threshold)
	}
	if !msg.Destination.Equals(proposal.Destination) {
		return nil, nil, errors.Wrapf(ErrInvalidVault, "destination %s does not match proposal", msg.Destination)
	}
	return &msg, proposal, nil
}

// CancelHandler terminates pending proposals without a transfer.
type CancelHandler struct {
	auth      x.Authenticator
	vaults    orm.ModelBucket
	proposals orm.ModelBucket
}

var _ custody.Handler = CancelHandler{}

func (h CancelHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &custody.CheckResult{}, nil
}

func (h CancelHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, proposal, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	proposal.Status = StatusCancelled
	if err := h.proposals.Put(db, proposalKey(msg.Vault, msg.ProposalID), proposal); err != nil {
		return nil, errors.Wrap(err, "save proposal")
	}
	return &custody.DeliverResult{}, nil
}

func (h CancelHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*CancelMsg, *Proposal, error) {
	var msg CancelMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	vault, err := loadVault(db, h.vaults, msg.Vault)
	if err != nil {
		return nil, nil, err
	}
	proposal, err := loadProposal(db, h.proposals, msg.Vault, msg.ProposalID)
	if err != nil {
		return nil, nil, err
	}

	canceller := x.MainSigner(ctx, h.auth)
	if canceller == nil || !vault.IsOwner(canceller.Address()) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "canceller is not an owner")
	}
	if proposal.Resolved() {
		return nil, nil, errors.Wrapf(ErrAlreadyResolved, "proposal is %s", proposal.Status)
	}
	return &msg, proposal, nil
}

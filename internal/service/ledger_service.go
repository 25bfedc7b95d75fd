package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"create2earn/internal/core/domain"
	"create2earn/internal/core/ports"
	"create2earn/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"github.com/rs/zerolog"
)

const idempotencyTTL = 24 * time.Hour

// TransferObserver is notified of committed transfers.
type TransferObserver interface {
	ObserveTransfer(kind domain.TransferKind, taxed bool, amount, tax *uint256.Int)
}

// ApprovalEvent is the payload of APPROVAL events.
type ApprovalEvent struct {
	Owner   string `json:"owner"`
	Spender string `json:"spender"`
	Amount  string `json:"amount"`
}

// LedgerDeps groups the collaborators of the ledger service.
type LedgerDeps struct {
	Tokens      ports.TokenRepository
	Balances    ports.BalanceRepository
	Allowances  ports.AllowanceRepository
	Roles       ports.RoleRepository
	Exclusions  ports.ExclusionRepository
	Taxes       ports.TaxRepository
	Transfers   ports.TransferRepository
	Idempotency ports.IdempotencyRepository
	IdempCache  ports.IdempotencyCache
	Transactor  ports.DBTransactor
	Events      ports.EventPublisher
	TaxPolicy   domain.TaxPolicy
	Observer    TransferObserver
	Logger      zerolog.Logger
}

// LedgerServiceImpl implements ports.LedgerService.
type LedgerServiceImpl struct {
	tokenRepo     ports.TokenRepository
	balanceRepo   ports.BalanceRepository
	allowanceRepo ports.AllowanceRepository
	roleRepo      ports.RoleRepository
	exclusionRepo ports.ExclusionRepository
	taxRepo       ports.TaxRepository
	transferRepo  ports.TransferRepository
	idempRepo     ports.IdempotencyRepository
	idempCache    ports.IdempotencyCache
	transactor    ports.DBTransactor
	events        ports.EventPublisher
	policy        domain.TaxPolicy
	observer      TransferObserver
	log           zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(d LedgerDeps) *LedgerServiceImpl {
	events := d.Events
	if events == nil {
		events = noopPublisher{}
	}
	return &LedgerServiceImpl{
		tokenRepo:     d.Tokens,
		balanceRepo:   d.Balances,
		allowanceRepo: d.Allowances,
		roleRepo:      d.Roles,
		exclusionRepo: d.Exclusions,
		taxRepo:       d.Taxes,
		transferRepo:  d.Transfers,
		idempRepo:     d.Idempotency,
		idempCache:    d.IdempCache,
		transactor:    d.Transactor,
		events:        events,
		policy:        d.TaxPolicy,
		observer:      d.Observer,
		log:           d.Logger,
	}
}

// Deploy creates the token, credits the whole supply to the deployer and
// grants it the admin role.
func (s *LedgerServiceImpl) Deploy(ctx context.Context, req ports.DeployRequest) (*domain.Token, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Symbol) == "" {
		return nil, apperror.Validation("name and symbol are required")
	}
	if req.Supply == nil {
		return nil, apperror.ErrInvalidAmount()
	}
	if domain.IsZero(req.Deployer) {
		return nil, apperror.ErrInvalidAddress()
	}

	existing, err := s.tokenRepo.Get(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load token: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrAlreadyDeployed()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	now := time.Now().UTC()
	token := &domain.Token{
		Name:        req.Name,
		Symbol:      req.Symbol,
		Decimals:    domain.TokenDecimals,
		TotalSupply: new(uint256.Int).Set(req.Supply),
		Deployer:    req.Deployer,
		DeployedAt:  now,
	}
	if err := s.tokenRepo.Create(ctx, dbTx, token); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create token: %w", err))
	}
	if err := s.balanceRepo.Set(ctx, dbTx, req.Deployer, token.TotalSupply); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("credit deployer: %w", err))
	}
	if _, err := s.roleRepo.Grant(ctx, dbTx, &domain.RoleMember{
		Role:      domain.AdminRole,
		Account:   req.Deployer,
		GrantedBy: req.Deployer,
	}); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("grant admin role: %w", err))
	}

	mint := &domain.Transfer{
		ID:        uuid.New(),
		Kind:      domain.TransferKindMint,
		From:      domain.ZeroAddress,
		To:        req.Deployer,
		Amount:    token.TotalSupply,
		NetAmount: token.TotalSupply,
		TaxTotal:  new(uint256.Int),
		CreatedAt: now,
	}
	if err := s.transferRepo.Create(ctx, dbTx, mint); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("record mint: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("name", token.Name).
		Str("symbol", token.Symbol).
		Str("supply", token.TotalSupply.Dec()).
		Str("deployer", req.Deployer.Hex()).
		Msg("token deployed")
	s.events.Publish(ctx, domain.EventTransfer, NewTransferRecord(mint))
	s.events.Publish(ctx, domain.EventRoleGranted, RoleEvent{
		Role:    domain.RoleHex(domain.AdminRole),
		Account: req.Deployer.Hex(),
		Sender:  req.Deployer.Hex(),
	})
	return token, nil
}

// Token returns the deployed token metadata.
func (s *LedgerServiceImpl) Token(ctx context.Context) (*domain.Token, error) {
	token, err := s.tokenRepo.Get(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load token: %w", err))
	}
	if token == nil {
		return nil, apperror.ErrNotDeployed()
	}
	return token, nil
}

// BalanceOf returns the balance of account, zero when unknown.
func (s *LedgerServiceImpl) BalanceOf(ctx context.Context, account common.Address) (*uint256.Int, error) {
	bal, err := s.balanceRepo.Get(ctx, account)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get balance: %w", err))
	}
	return orZero(bal), nil
}

// Allowance returns how much spender may still move on behalf of owner.
func (s *LedgerServiceImpl) Allowance(ctx context.Context, owner, spender common.Address) (*uint256.Int, error) {
	amt, err := s.allowanceRepo.Get(ctx, owner, spender)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get allowance: %w", err))
	}
	return orZero(amt), nil
}

// Approve sets the allowance of spender over the owner's tokens.
func (s *LedgerServiceImpl) Approve(ctx context.Context, owner, spender common.Address, amount *uint256.Int) error {
	if amount == nil {
		return apperror.ErrInvalidAmount()
	}
	if domain.IsZero(owner) || domain.IsZero(spender) {
		return apperror.ErrInvalidAddress()
	}
	if _, err := s.Token(ctx); err != nil {
		return err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.allowanceRepo.Set(ctx, dbTx, owner, spender, amount); err != nil {
		return apperror.InternalError(fmt.Errorf("set allowance: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().Str("owner", owner.Hex()).Str("spender", spender.Hex()).Str("amount", amount.Dec()).Msg("approval set")
	s.events.Publish(ctx, domain.EventApproval, ApprovalEvent{
		Owner:   owner.Hex(),
		Spender: spender.Hex(),
		Amount:  amount.Dec(),
	})
	return nil
}

// Transfer moves amount from the caller to req.To, applying the tax split.
func (s *LedgerServiceImpl) Transfer(ctx context.Context, req ports.TransferRequest) (*domain.Transfer, error) {
	return s.execute(ctx, domain.TransferKindTransfer, req.Caller, nil, req)
}

// TransferFrom moves amount from req.From to req.To on behalf of the caller,
// consuming the caller's allowance by the gross amount.
func (s *LedgerServiceImpl) TransferFrom(ctx context.Context, req ports.TransferRequest) (*domain.Transfer, error) {
	spender := req.Caller
	return s.execute(ctx, domain.TransferKindTransferFrom, req.From, &spender, req)
}

// execute runs a transfer with pessimistic locking:
// registry (shared) -> exclusions -> balances (sorted) in one transaction.
func (s *LedgerServiceImpl) execute(
	ctx context.Context,
	kind domain.TransferKind,
	from common.Address,
	spender *common.Address,
	req ports.TransferRequest,
) (*domain.Transfer, error) {
	if req.Amount == nil || req.Amount.IsZero() {
		return nil, apperror.ErrInvalidAmount()
	}
	if domain.IsZero(from) || domain.IsZero(req.To) {
		return nil, apperror.ErrInvalidAddress()
	}

	var idempKey string
	if req.IdempotencyKey != "" {
		idempKey = domain.BuildIdempotencyKey(req.Caller, req.IdempotencyKey)
		if t, err := s.replay(ctx, idempKey); t != nil || err != nil {
			return t, err
		}
	}

	if _, err := s.Token(ctx); err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Allowance first, so an unauthorized spender never locks balances.
	if spender != nil {
		allowed, err := s.allowanceRepo.GetForUpdate(ctx, dbTx, from, *spender)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("lock allowance: %w", err))
		}
		allowed = orZero(allowed)
		if allowed.Lt(req.Amount) {
			return nil, apperror.ErrInsufficientAllowance()
		}
		if !isUnlimited(allowed) {
			remaining := new(uint256.Int).Sub(allowed, req.Amount)
			if err := s.allowanceRepo.Set(ctx, dbTx, from, *spender, remaining); err != nil {
				return nil, apperror.InternalError(fmt.Errorf("consume allowance: %w", err))
			}
		}
	}

	entries, err := s.taxRepo.ListForShare(ctx, dbTx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load tax registry: %w", err))
	}
	registry, err := domain.NewTaxRegistry(entries, s.policy)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	exempt, err := s.exclusionRepo.AnyExcluded(ctx, dbTx, from, req.To)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check exclusions: %w", err))
	}

	split := registry.Split(req.Amount, exempt)

	touched := touchedAccounts(from, req.To, split)
	balances, err := s.balanceRepo.GetForUpdate(ctx, dbTx, touched...)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock balances: %w", err))
	}
	for _, a := range touched {
		balances[a] = orZero(balances[a]).Clone()
	}

	if balances[from].Lt(req.Amount) {
		return nil, apperror.ErrInsufficientBalance()
	}
	balances[from].Sub(balances[from], req.Amount)
	balances[req.To].Add(balances[req.To], split.Net)
	for _, line := range split.Lines {
		balances[line.Recipient].Add(balances[line.Recipient], line.Amount)
	}

	for _, a := range touched {
		if err := s.balanceRepo.Set(ctx, dbTx, a, balances[a]); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
		}
	}

	now := time.Now().UTC()
	transfer := &domain.Transfer{
		ID:        uuid.New(),
		Kind:      kind,
		From:      from,
		To:        req.To,
		Spender:   spender,
		Amount:    new(uint256.Int).Set(req.Amount),
		NetAmount: split.Net,
		TaxTotal:  split.TotalTax,
		Taxed:     split.Taxed,
		TaxLines:  domain.TaxLinesFromSplit(split),
		CreatedAt: now,
	}
	if idempKey != "" {
		transfer.IdempotencyKey = &idempKey
	}
	if err := s.transferRepo.Create(ctx, dbTx, transfer); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("record transfer: %w", err))
	}

	var respJSON []byte
	if idempKey != "" {
		respJSON, err = json.Marshal(NewTransferRecord(transfer))
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("marshal response: %w", err))
		}
		if err := s.idempRepo.Create(ctx, dbTx, &domain.IdempotencyLog{
			Key:          idempKey,
			TransferID:   transfer.ID,
			ResponseJSON: respJSON,
			CreatedAt:    now,
		}); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("save idempotency log: %w", err))
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	// Post-process: cache in Redis (best-effort)
	if respJSON != nil {
		if err := s.idempCache.Set(ctx, idempKey, respJSON, idempotencyTTL); err != nil {
			s.log.Warn().Err(err).Str("key", idempKey).Msg("failed to cache idempotency in redis")
		}
	}

	s.log.Info().
		Str("transfer_id", transfer.ID.String()).
		Str("kind", string(kind)).
		Str("from", from.Hex()).
		Str("to", req.To.Hex()).
		Str("amount", req.Amount.Dec()).
		Str("tax", split.TotalTax.Dec()).
		Bool("taxed", split.Taxed).
		Msg("transfer settled")
	s.events.Publish(ctx, domain.EventTransfer, NewTransferRecord(transfer))
	if s.observer != nil {
		s.observer.ObserveTransfer(kind, split.Taxed, req.Amount, split.TotalTax)
	}

	return transfer, nil
}

// replay returns the stored result of an already-processed request.
func (s *LedgerServiceImpl) replay(ctx context.Context, key string) (*domain.Transfer, error) {
	// Layer 1: Redis idempotency check
	cached, err := s.idempCache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("redis idempotency check failed, falling through to DB")
	}
	if cached != nil {
		return unmarshalCachedTransfer(cached)
	}

	// Layer 2: DB idempotency check
	entry, err := s.idempRepo.Get(ctx, key)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("db idempotency check: %w", err))
	}
	if entry != nil {
		return unmarshalCachedTransfer(entry.ResponseJSON)
	}
	return nil, nil
}

// touchedAccounts lists every account whose balance the transfer changes,
// deduplicated and in address order so row locks are taken consistently.
func touchedAccounts(from, to common.Address, split domain.SplitResult) []common.Address {
	seen := map[common.Address]struct{}{from: {}, to: {}}
	for _, l := range split.Lines {
		seen[l.Recipient] = struct{}{}
	}
	out := make([]common.Address, 0, len(seen))
	for a := range seen {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return bytes.Compare(out[i][:], out[j][:]) < 0 })
	return out
}

func orZero(v *uint256.Int) *uint256.Int {
	if v == nil {
		return new(uint256.Int)
	}
	return v
}

// isUnlimited reports whether an allowance is the max uint256 sentinel,
// which is never decremented.
func isUnlimited(v *uint256.Int) bool {
	return v.Eq(new(uint256.Int).SetAllOne())
}

// TransferRecord is the JSON form of a transfer used for idempotent replay
// and event payloads. Amounts are decimal strings of base units.
type TransferRecord struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Spender   string          `json:"spender,omitempty"`
	Amount    string          `json:"amount"`
	NetAmount string          `json:"net_amount"`
	TaxTotal  string          `json:"tax_total"`
	Taxed     bool            `json:"taxed"`
	TaxLines  []TaxLineRecord `json:"tax_lines,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// TaxLineRecord is the JSON form of a tax line.
type TaxLineRecord struct {
	Identifier uint32 `json:"identifier"`
	Recipient  string `json:"recipient"`
	Percentage uint8  `json:"percentage"`
	Amount     string `json:"amount"`
}

// NewTransferRecord converts a transfer into its JSON form.
func NewTransferRecord(t *domain.Transfer) TransferRecord {
	r := TransferRecord{
		ID:        t.ID.String(),
		Kind:      string(t.Kind),
		From:      t.From.Hex(),
		To:        t.To.Hex(),
		Amount:    orZero(t.Amount).Dec(),
		NetAmount: orZero(t.NetAmount).Dec(),
		TaxTotal:  orZero(t.TaxTotal).Dec(),
		Taxed:     t.Taxed,
		CreatedAt: t.CreatedAt,
	}
	if t.Spender != nil {
		r.Spender = t.Spender.Hex()
	}
	for _, l := range t.TaxLines {
		r.TaxLines = append(r.TaxLines, TaxLineRecord{
			Identifier: l.Identifier,
			Recipient:  l.Recipient.Hex(),
			Percentage: l.Percentage,
			Amount:     orZero(l.Amount).Dec(),
		})
	}
	return r
}

// Transfer converts the record back into a domain transfer.
func (r TransferRecord) Transfer() (*domain.Transfer, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("parse id: %w", err)
	}
	t := &domain.Transfer{
		ID:        id,
		Kind:      domain.TransferKind(r.Kind),
		From:      common.HexToAddress(r.From),
		To:        common.HexToAddress(r.To),
		Taxed:     r.Taxed,
		CreatedAt: r.CreatedAt,
	}
	if r.Spender != "" {
		sp := common.HexToAddress(r.Spender)
		t.Spender = &sp
	}
	if t.Amount, err = uint256.FromDecimal(r.Amount); err != nil {
		return nil, fmt.Errorf("parse amount: %w", err)
	}
	if t.NetAmount, err = uint256.FromDecimal(r.NetAmount); err != nil {
		return nil, fmt.Errorf("parse net amount: %w", err)
	}
	if t.TaxTotal, err = uint256.FromDecimal(r.TaxTotal); err != nil {
		return nil, fmt.Errorf("parse tax total: %w", err)
	}
	for _, l := range r.TaxLines {
		amt, err := uint256.FromDecimal(l.Amount)
		if err != nil {
			return nil, fmt.Errorf("parse tax line amount: %w", err)
		}
		t.TaxLines = append(t.TaxLines, domain.TaxLine{
			Identifier: l.Identifier,
			Recipient:  common.HexToAddress(l.Recipient),
			Percentage: l.Percentage,
			Amount:     amt,
		})
	}
	return t, nil
}

// unmarshalCachedTransfer deserializes a cached transfer.
func unmarshalCachedTransfer(data []byte) (*domain.Transfer, error) {
	var rec TransferRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("unmarshal cached transfer: %w", err))
	}
	t, err := rec.Transfer()
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("decode cached transfer: %w", err))
	}
	return t, nil
}

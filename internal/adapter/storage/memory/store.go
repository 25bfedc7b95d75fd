// Package memory is a process-local storage backend. It implements the same
// repository ports as the PostgreSQL adapter with snapshot transactions, so
// the services run unchanged on top of it.
package memory

import (
	"context"
	"errors"
	"sync"

	"create2earn/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
)

// ErrForeignTx is returned when a repository receives a transaction that
// was not started by its store, or one that has already ended.
var ErrForeignTx = errors.New("memory: transaction does not belong to this store or is closed")

type allowanceKey struct {
	owner, spender common.Address
}

// ledgerState is everything a transaction may change. It is copied on Begin
// and swapped in on Commit.
type ledgerState struct {
	token      *domain.Token
	balances   map[common.Address]*uint256.Int
	allowances map[allowanceKey]*uint256.Int
	roles      map[common.Hash][]domain.RoleMember
	exclusions map[common.Address]common.Address
	taxes      map[uint32]domain.TaxEntry
}

func newLedgerState() *ledgerState {
	return &ledgerState{
		balances:   make(map[common.Address]*uint256.Int),
		allowances: make(map[allowanceKey]*uint256.Int),
		roles:      make(map[common.Hash][]domain.RoleMember),
		exclusions: make(map[common.Address]common.Address),
		taxes:      make(map[uint32]domain.TaxEntry),
	}
}

// clone copies the maps. Stored amounts are never mutated in place, so the
// pointers can be shared.
func (s *ledgerState) clone() *ledgerState {
	c := newLedgerState()
	if s.token != nil {
		t := *s.token
		c.token = &t
	}
	for k, v := range s.balances {
		c.balances[k] = v
	}
	for k, v := range s.allowances {
		c.allowances[k] = v
	}
	for k, v := range s.roles {
		c.roles[k] = append([]domain.RoleMember(nil), v...)
	}
	for k, v := range s.exclusions {
		c.exclusions[k] = v
	}
	for k, v := range s.taxes {
		c.taxes[k] = v
	}
	return c
}

// history is append-only and lives outside the snapshot.
type history struct {
	transfers   []domain.Transfer
	byID        map[uuid.UUID]int
	idempotency map[string]*domain.IdempotencyLog
	audit       []domain.AuditLog
	deliveries  map[uuid.UUID]*domain.EventDelivery
}

// Store holds the committed state. Write transactions are serialized by
// the writer semaphore; mu guards the committed state for readers.
type Store struct {
	writer chan struct{}

	mu      sync.RWMutex
	state   *ledgerState
	history history
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		writer: make(chan struct{}, 1),
		state:  newLedgerState(),
		history: history{
			byID:        make(map[uuid.UUID]int),
			idempotency: make(map[string]*domain.IdempotencyLog),
			deliveries:  make(map[uuid.UUID]*domain.EventDelivery),
		},
	}
}

// Begin starts a write transaction on a private copy of the ledger state.
// It blocks while another transaction is open.
func (s *Store) Begin(ctx context.Context) (pgx.Tx, error) {
	select {
	case s.writer <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	s.mu.RLock()
	working := s.state.clone()
	s.mu.RUnlock()

	return &memTx{store: s, working: working}, nil
}

// memTx is a snapshot transaction. Only Commit and Rollback are supported;
// the embedded pgx.Tx is nil and the SQL methods must not be called.
type memTx struct {
	pgx.Tx

	store   *Store
	working *ledgerState
	closed  bool

	transfers   []domain.Transfer
	idempotency []*domain.IdempotencyLog
}

// Commit publishes the working state and the pending history.
func (t *memTx) Commit(ctx context.Context) error {
	if t.closed {
		return pgx.ErrTxClosed
	}
	t.closed = true

	s := t.store
	s.mu.Lock()
	s.state = t.working
	for _, tr := range t.transfers {
		s.history.byID[tr.ID] = len(s.history.transfers)
		s.history.transfers = append(s.history.transfers, tr)
	}
	for _, l := range t.idempotency {
		s.history.idempotency[l.Key] = l
	}
	s.mu.Unlock()

	<-s.writer
	return nil
}

// Rollback discards the working state. Calling it after Commit is a no-op.
func (t *memTx) Rollback(ctx context.Context) error {
	if t.closed {
		return pgx.ErrTxClosed
	}
	t.closed = true
	t.working = nil
	t.transfers = nil
	t.idempotency = nil
	<-t.store.writer
	return nil
}

// txOf returns the open transaction of this store behind tx.
func (s *Store) txOf(tx pgx.Tx) (*memTx, error) {
	mt, ok := tx.(*memTx)
	if !ok || mt.store != s || mt.closed {
		return nil, ErrForeignTx
	}
	return mt, nil
}

// committed runs fn against the committed state under the read lock.
func (s *Store) committed(fn func(st *ledgerState)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.state)
}

// Transactor implements ports.DBTransactor.
type Transactor struct {
	store *Store
}

// NewTransactor creates a transactor over store.
func NewTransactor(store *Store) *Transactor {
	return &Transactor{store: store}
}

// Begin starts a snapshot transaction.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return t.store.Begin(ctx)
}

// HealthCheck implements ports.HealthChecker. The store is always reachable.
type HealthCheck struct{}

// NewHealthCheck creates a memory health checker.
func NewHealthCheck() *HealthCheck {
	return &HealthCheck{}
}

func (HealthCheck) Ping(context.Context) error { return nil }

func (HealthCheck) Name() string { return "memory" }

func cloneAmount(v *uint256.Int) *uint256.Int {
	if v == nil {
		return new(uint256.Int)
	}
	return v.Clone()
}

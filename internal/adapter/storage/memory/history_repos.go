package memory

import (
	"context"
	"fmt"

	"create2earn/internal/core/domain"

	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
)

// TransferRepo implements ports.TransferRepository. Transfers created in a
// transaction become visible when it commits.
type TransferRepo struct {
	store *Store
}

// NewTransferRepo creates a new TransferRepo.
func NewTransferRepo(store *Store) *TransferRepo {
	return &TransferRepo{store: store}
}

func (r *TransferRepo) Create(ctx context.Context, tx pgx.Tx, transfer *domain.Transfer) error {
	mt, err := r.store.txOf(tx)
	if err != nil {
		return err
	}
	mt.transfers = append(mt.transfers, copyTransfer(*transfer))
	return nil
}

func (r *TransferRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transfer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	i, ok := r.store.history.byID[id]
	if !ok {
		return nil, nil
	}
	t := copyTransfer(r.store.history.transfers[i])
	return &t, nil
}

// List returns transfers newest first.
func (r *TransferRepo) List(ctx context.Context, filter domain.TransferFilter) ([]domain.Transfer, int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var matched []domain.Transfer
	all := r.store.history.transfers
	for i := len(all) - 1; i >= 0; i-- {
		if filter.Address != nil && !all[i].Involves(*filter.Address) {
			continue
		}
		matched = append(matched, all[i])
	}
	total := int64(len(matched))

	// Simple pagination
	start := (filter.Page - 1) * filter.PageSize
	if start < 0 || start >= len(matched) {
		return []domain.Transfer{}, total, nil
	}
	end := start + filter.PageSize
	if end > len(matched) {
		end = len(matched)
	}

	page := make([]domain.Transfer, 0, end-start)
	for _, t := range matched[start:end] {
		page = append(page, copyTransfer(t))
	}
	return page, total, nil
}

// Stats aggregates every transfer except the initial mint.
func (r *TransferRepo) Stats(ctx context.Context) (*domain.TaxStats, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	stats := &domain.TaxStats{
		TotalVolume:    new(uint256.Int),
		TotalCollected: new(uint256.Int),
	}
	for _, t := range r.store.history.transfers {
		if t.Kind == domain.TransferKindMint {
			continue
		}
		stats.TransferCount++
		if t.Taxed {
			stats.TaxedCount++
		}
		stats.TotalVolume.Add(stats.TotalVolume, t.Amount)
		stats.TotalCollected.Add(stats.TotalCollected, t.TaxTotal)
	}
	return stats, nil
}

func copyTransfer(t domain.Transfer) domain.Transfer {
	t.Amount = cloneAmount(t.Amount)
	t.NetAmount = cloneAmount(t.NetAmount)
	t.TaxTotal = cloneAmount(t.TaxTotal)
	if t.TaxLines != nil {
		lines := make([]domain.TaxLine, len(t.TaxLines))
		for i, l := range t.TaxLines {
			l.Amount = cloneAmount(l.Amount)
			lines[i] = l
		}
		t.TaxLines = lines
	}
	return t
}

// IdempotencyRepo implements ports.IdempotencyRepository.
type IdempotencyRepo struct {
	store *Store
}

// NewIdempotencyRepo creates a new IdempotencyRepo.
func NewIdempotencyRepo(store *Store) *IdempotencyRepo {
	return &IdempotencyRepo{store: store}
}

// Create stages the log in tx. A key that is already stored is rejected the
// way the primary key rejects it in PostgreSQL.
func (r *IdempotencyRepo) Create(ctx context.Context, tx pgx.Tx, log *domain.IdempotencyLog) error {
	mt, err := r.store.txOf(tx)
	if err != nil {
		return err
	}
	if existing, _ := r.Get(ctx, log.Key); existing != nil {
		return fmt.Errorf("idempotency key %q already used", log.Key)
	}
	for _, l := range mt.idempotency {
		if l.Key == log.Key {
			return fmt.Errorf("idempotency key %q already used", log.Key)
		}
	}
	entry := *log
	mt.idempotency = append(mt.idempotency, &entry)
	return nil
}

func (r *IdempotencyRepo) Get(ctx context.Context, key string) (*domain.IdempotencyLog, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	l, ok := r.store.history.idempotency[key]
	if !ok {
		return nil, nil
	}
	entry := *l
	return &entry, nil
}

// AuditRepo implements ports.AuditRepository.
type AuditRepo struct {
	store *Store
}

// NewAuditRepo creates a new AuditRepo.
func NewAuditRepo(store *Store) *AuditRepo {
	return &AuditRepo{store: store}
}

func (r *AuditRepo) Create(ctx context.Context, log *domain.AuditLog) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.history.audit = append(r.store.history.audit, *log)
	return nil
}

// Entries returns the recorded audit log, oldest first.
func (r *AuditRepo) Entries() []domain.AuditLog {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return append([]domain.AuditLog(nil), r.store.history.audit...)
}

// DeliveryRepo implements ports.DeliveryRepository.
type DeliveryRepo struct {
	store *Store
}

// NewDeliveryRepo creates a new DeliveryRepo.
func NewDeliveryRepo(store *Store) *DeliveryRepo {
	return &DeliveryRepo{store: store}
}

func (r *DeliveryRepo) Create(ctx context.Context, d *domain.EventDelivery) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	entry := *d
	r.store.history.deliveries[d.EventID] = &entry
	return nil
}

func (r *DeliveryRepo) Update(ctx context.Context, d *domain.EventDelivery) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.history.deliveries[d.EventID]; !ok {
		return fmt.Errorf("event delivery not found: %s", d.EventID)
	}
	entry := *d
	r.store.history.deliveries[d.EventID] = &entry
	return nil
}

// Get returns the latest recorded outcome of an event delivery.
func (r *DeliveryRepo) Get(eventID uuid.UUID) (*domain.EventDelivery, bool) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	d, ok := r.store.history.deliveries[eventID]
	if !ok {
		return nil, false
	}
	entry := *d
	return &entry, true
}

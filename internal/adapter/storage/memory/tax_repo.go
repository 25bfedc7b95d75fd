package memory

import (
	"context"
	"fmt"
	"sort"

	"create2earn/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// TaxRepo implements ports.TaxRepository.
type TaxRepo struct {
	store *Store
}

// NewTaxRepo creates a new TaxRepo.
func NewTaxRepo(store *Store) *TaxRepo {
	return &TaxRepo{store: store}
}

func (r *TaxRepo) List(ctx context.Context) ([]domain.TaxEntry, error) {
	var out []domain.TaxEntry
	r.store.committed(func(st *ledgerState) {
		out = sortedEntries(st.taxes)
	})
	return out, nil
}

// ListForUpdate and ListForShare read the working copy; the open transaction
// already excludes every other writer.
func (r *TaxRepo) ListForUpdate(ctx context.Context, tx pgx.Tx) ([]domain.TaxEntry, error) {
	mt, err := r.store.txOf(tx)
	if err != nil {
		return nil, err
	}
	return sortedEntries(mt.working.taxes), nil
}

func (r *TaxRepo) ListForShare(ctx context.Context, tx pgx.Tx) ([]domain.TaxEntry, error) {
	return r.ListForUpdate(ctx, tx)
}

func (r *TaxRepo) Insert(ctx context.Context, tx pgx.Tx, entry domain.TaxEntry) error {
	mt, err := r.store.txOf(tx)
	if err != nil {
		return err
	}
	if _, ok := mt.working.taxes[entry.Identifier]; ok {
		return fmt.Errorf("tax entry %d already exists", entry.Identifier)
	}
	mt.working.taxes[entry.Identifier] = entry
	return nil
}

func (r *TaxRepo) Update(ctx context.Context, tx pgx.Tx, entry domain.TaxEntry) error {
	mt, err := r.store.txOf(tx)
	if err != nil {
		return err
	}
	if _, ok := mt.working.taxes[entry.Identifier]; !ok {
		return fmt.Errorf("tax entry not found: %d", entry.Identifier)
	}
	mt.working.taxes[entry.Identifier] = entry
	return nil
}

func (r *TaxRepo) Delete(ctx context.Context, tx pgx.Tx, identifier uint32) error {
	mt, err := r.store.txOf(tx)
	if err != nil {
		return err
	}
	if _, ok := mt.working.taxes[identifier]; !ok {
		return fmt.Errorf("tax entry not found: %d", identifier)
	}
	delete(mt.working.taxes, identifier)
	return nil
}

// Renumber moves the entry at from into the free identifier to.
func (r *TaxRepo) Renumber(ctx context.Context, tx pgx.Tx, from, to uint32) error {
	mt, err := r.store.txOf(tx)
	if err != nil {
		return err
	}
	e, ok := mt.working.taxes[from]
	if !ok {
		return fmt.Errorf("tax entry not found: %d", from)
	}
	if _, taken := mt.working.taxes[to]; taken {
		return fmt.Errorf("tax entry %d already exists", to)
	}
	delete(mt.working.taxes, from)
	e.Identifier = to
	mt.working.taxes[to] = e
	return nil
}

func sortedEntries(taxes map[uint32]domain.TaxEntry) []domain.TaxEntry {
	out := make([]domain.TaxEntry, 0, len(taxes))
	for _, e := range taxes {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Identifier < out[j].Identifier })
	return out
}

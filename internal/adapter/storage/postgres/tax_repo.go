package postgres

import (
	"context"
	"fmt"

	"create2earn/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
)

const selectTaxEntries = `SELECT identifier, percentage, recipient FROM tax_entries ORDER BY identifier`

// TaxRepo implements ports.TaxRepository.
type TaxRepo struct {
	pool Pool
}

// NewTaxRepo creates a new TaxRepo.
func NewTaxRepo(pool Pool) *TaxRepo {
	return &TaxRepo{pool: pool}
}

// List fetches the registry (without locking).
func (r *TaxRepo) List(ctx context.Context) ([]domain.TaxEntry, error) {
	rows, err := r.pool.Query(ctx, selectTaxEntries)
	if err != nil {
		return nil, fmt.Errorf("list tax entries: %w", err)
	}
	return scanTaxEntries(rows)
}

// ListForUpdate locks the registry against other writers and transfers,
// then fetches it. This MUST be called within a transaction.
func (r *TaxRepo) ListForUpdate(ctx context.Context, tx pgx.Tx) ([]domain.TaxEntry, error) {
	return r.listLocked(ctx, tx, "SHARE ROW EXCLUSIVE")
}

// ListForShare locks the registry against writers only, then fetches it.
// This MUST be called within a transaction.
func (r *TaxRepo) ListForShare(ctx context.Context, tx pgx.Tx) ([]domain.TaxEntry, error) {
	return r.listLocked(ctx, tx, "SHARE")
}

func (r *TaxRepo) listLocked(ctx context.Context, tx pgx.Tx, mode string) ([]domain.TaxEntry, error) {
	if _, err := tx.Exec(ctx, "LOCK TABLE tax_entries IN "+mode+" MODE"); err != nil {
		return nil, fmt.Errorf("lock tax entries: %w", err)
	}
	rows, err := tx.Query(ctx, selectTaxEntries)
	if err != nil {
		return nil, fmt.Errorf("list tax entries: %w", err)
	}
	return scanTaxEntries(rows)
}

// Insert appends an entry within a transaction.
func (r *TaxRepo) Insert(ctx context.Context, tx pgx.Tx, e domain.TaxEntry) error {
	query := `INSERT INTO tax_entries (identifier, percentage, recipient, updated_at) VALUES ($1, $2, $3, NOW())`

	if _, err := tx.Exec(ctx, query, int32(e.Identifier), int16(e.Percentage), addrText(e.Recipient)); err != nil {
		return fmt.Errorf("insert tax entry: %w", err)
	}
	return nil
}

// Update rewrites the percentage and recipient of an entry within a transaction.
func (r *TaxRepo) Update(ctx context.Context, tx pgx.Tx, e domain.TaxEntry) error {
	query := `UPDATE tax_entries SET percentage = $1, recipient = $2, updated_at = NOW() WHERE identifier = $3`

	tag, err := tx.Exec(ctx, query, int16(e.Percentage), addrText(e.Recipient), int32(e.Identifier))
	if err != nil {
		return fmt.Errorf("update tax entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("tax entry not found: %d", e.Identifier)
	}
	return nil
}

// Delete removes an entry within a transaction.
func (r *TaxRepo) Delete(ctx context.Context, tx pgx.Tx, identifier uint32) error {
	query := `DELETE FROM tax_entries WHERE identifier = $1`

	tag, err := tx.Exec(ctx, query, int32(identifier))
	if err != nil {
		return fmt.Errorf("delete tax entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("tax entry not found: %d", identifier)
	}
	return nil
}

// Renumber moves the entry at from to the free identifier to.
func (r *TaxRepo) Renumber(ctx context.Context, tx pgx.Tx, from, to uint32) error {
	query := `UPDATE tax_entries SET identifier = $1, updated_at = NOW() WHERE identifier = $2`

	tag, err := tx.Exec(ctx, query, int32(to), int32(from))
	if err != nil {
		return fmt.Errorf("renumber tax entry %d to %d: %w", from, to, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("tax entry not found: %d", from)
	}
	return nil
}

func scanTaxEntries(rows pgx.Rows) ([]domain.TaxEntry, error) {
	defer rows.Close()

	var entries []domain.TaxEntry
	for rows.Next() {
		var (
			id         int32
			percentage int16
			recipient  string
		)
		if err := rows.Scan(&id, &percentage, &recipient); err != nil {
			return nil, fmt.Errorf("scan tax entry: %w", err)
		}
		entries = append(entries, domain.TaxEntry{
			Identifier: uint32(id),
			Percentage: uint8(percentage),
			Recipient:  common.HexToAddress(recipient),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tax entries: %w", err)
	}
	return entries, nil
}

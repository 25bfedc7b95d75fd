package postgres

import (
	"context"
	"errors"
	"fmt"

	"create2earn/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const transferColumns = `t.id, t.kind, t.from_address, t.to_address, t.spender,
		t.amount::text, t.net_amount::text, t.tax_total::text, t.taxed, t.idempotency_key, t.created_at`

// TransferRepo implements ports.TransferRepository.
type TransferRepo struct {
	pool Pool
}

// NewTransferRepo creates a new TransferRepo.
func NewTransferRepo(pool Pool) *TransferRepo {
	return &TransferRepo{pool: pool}
}

// Create inserts a settled transfer and its tax lines within a database transaction.
func (r *TransferRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transfer) error {
	query := `INSERT INTO transfers (id, kind, from_address, to_address, spender, amount, net_amount,
		tax_total, taxed, idempotency_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6::numeric, $7::numeric, $8::numeric, $9, $10, $11)`

	var spender *string
	if t.Spender != nil {
		s := addrText(*t.Spender)
		spender = &s
	}

	_, err := tx.Exec(ctx, query,
		t.ID, string(t.Kind), addrText(t.From), addrText(t.To), spender,
		numeric(t.Amount), numeric(t.NetAmount), numeric(t.TaxTotal),
		t.Taxed, t.IdempotencyKey, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}

	lineQuery := `INSERT INTO transfer_tax_lines (transfer_id, identifier, recipient, percentage, amount)
		VALUES ($1, $2, $3, $4, $5::numeric)`
	for _, l := range t.TaxLines {
		_, err := tx.Exec(ctx, lineQuery,
			t.ID, int32(l.Identifier), addrText(l.Recipient), int16(l.Percentage), numeric(l.Amount),
		)
		if err != nil {
			return fmt.Errorf("insert tax line %d: %w", l.Identifier, err)
		}
	}
	return nil
}

// GetByID fetches a transfer with its tax lines.
func (r *TransferRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers t WHERE t.id = $1`

	t, err := scanTransfer(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}

	lines, err := r.taxLines(ctx, []uuid.UUID{t.ID})
	if err != nil {
		return nil, err
	}
	t.TaxLines = lines[t.ID]
	return t, nil
}

// List fetches transfers, newest first, optionally restricted to those where
// the address sent, received or collected tax.
func (r *TransferRepo) List(ctx context.Context, filter domain.TransferFilter) ([]domain.Transfer, int64, error) {
	where := ""
	var args []any
	if filter.Address != nil {
		where = `WHERE t.from_address = $1 OR t.to_address = $1 OR EXISTS (
			SELECT 1 FROM transfer_tax_lines l WHERE l.transfer_id = t.id AND l.recipient = $1)`
		args = append(args, addrText(*filter.Address))
	}

	// Count total
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM transfers t `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count transfers: %w", err)
	}

	// Fetch page
	offset := (filter.Page - 1) * filter.PageSize
	dataQuery := fmt.Sprintf(`SELECT %s FROM transfers t %s ORDER BY t.created_at DESC, t.id LIMIT $%d OFFSET $%d`,
		transferColumns, where, len(args)+1, len(args)+2)
	args = append(args, filter.PageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	var transfers []domain.Transfer
	var ids []uuid.UUID
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan transfer row: %w", err)
		}
		transfers = append(transfers, *t)
		ids = append(ids, t.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate transfer rows: %w", err)
	}
	rows.Close()

	if len(ids) > 0 {
		lines, err := r.taxLines(ctx, ids)
		if err != nil {
			return nil, 0, err
		}
		for i := range transfers {
			transfers[i].TaxLines = lines[transfers[i].ID]
		}
	}
	return transfers, total, nil
}

// Stats aggregates every transfer except the initial mint.
func (r *TransferRepo) Stats(ctx context.Context) (*domain.TaxStats, error) {
	query := `SELECT
		COUNT(*) AS transfers,
		COUNT(*) FILTER (WHERE taxed) AS taxed,
		COALESCE(SUM(amount), 0)::text AS volume,
		COALESCE(SUM(tax_total), 0)::text AS collected
		FROM transfers WHERE kind <> $1`

	stats := &domain.TaxStats{}
	var volume, collected string
	err := r.pool.QueryRow(ctx, query, string(domain.TransferKindMint)).Scan(
		&stats.TransferCount, &stats.TaxedCount, &volume, &collected,
	)
	if err != nil {
		return nil, fmt.Errorf("get transfer stats: %w", err)
	}
	if stats.TotalVolume, err = parseNumeric(volume); err != nil {
		return nil, err
	}
	if stats.TotalCollected, err = parseNumeric(collected); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *TransferRepo) taxLines(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]domain.TaxLine, error) {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}

	query := `SELECT transfer_id, identifier, recipient, percentage, amount::text
		FROM transfer_tax_lines WHERE transfer_id = ANY($1::uuid[]) ORDER BY transfer_id, identifier`

	rows, err := r.pool.Query(ctx, query, keys)
	if err != nil {
		return nil, fmt.Errorf("list tax lines: %w", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]domain.TaxLine, len(ids))
	for rows.Next() {
		var (
			transferID uuid.UUID
			identifier int32
			recipient  string
			percentage int16
			raw        string
		)
		if err := rows.Scan(&transferID, &identifier, &recipient, &percentage, &raw); err != nil {
			return nil, fmt.Errorf("scan tax line: %w", err)
		}
		amt, err := parseNumeric(raw)
		if err != nil {
			return nil, err
		}
		out[transferID] = append(out[transferID], domain.TaxLine{
			Identifier: uint32(identifier),
			Recipient:  common.HexToAddress(recipient),
			Percentage: uint8(percentage),
			Amount:     amt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tax lines: %w", err)
	}
	return out, nil
}

// scanTransfer is a helper to scan a single row into a Transfer.
func scanTransfer(row pgx.Row) (*domain.Transfer, error) {
	t := &domain.Transfer{}
	var (
		kind, from, to        string
		spender               *string
		amount, net, taxTotal string
	)
	err := row.Scan(
		&t.ID, &kind, &from, &to, &spender,
		&amount, &net, &taxTotal, &t.Taxed, &t.IdempotencyKey, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Kind = domain.TransferKind(kind)
	t.From = common.HexToAddress(from)
	t.To = common.HexToAddress(to)
	if spender != nil {
		s := common.HexToAddress(*spender)
		t.Spender = &s
	}
	if t.Amount, err = parseNumeric(amount); err != nil {
		return nil, err
	}
	if t.NetAmount, err = parseNumeric(net); err != nil {
		return nil, err
	}
	if t.TaxTotal, err = parseNumeric(taxTotal); err != nil {
		return nil, err
	}
	return t, nil
}

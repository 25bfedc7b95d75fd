package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
)

// AllowanceRepo implements ports.AllowanceRepository.
type AllowanceRepo struct {
	pool Pool
}

// NewAllowanceRepo creates a new AllowanceRepo.
func NewAllowanceRepo(pool Pool) *AllowanceRepo {
	return &AllowanceRepo{pool: pool}
}

// Get fetches the allowance of spender over owner's tokens. Missing rows are zero.
func (r *AllowanceRepo) Get(ctx context.Context, owner, spender common.Address) (*uint256.Int, error) {
	query := `SELECT amount::text FROM allowances WHERE owner = $1 AND spender = $2`
	return r.scan(r.pool.QueryRow(ctx, query, addrText(owner), addrText(spender)))
}

// GetForUpdate fetches the allowance with pessimistic locking.
// This MUST be called within a transaction.
func (r *AllowanceRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, owner, spender common.Address) (*uint256.Int, error) {
	query := `SELECT amount::text FROM allowances WHERE owner = $1 AND spender = $2 FOR UPDATE`
	return r.scan(tx.QueryRow(ctx, query, addrText(owner), addrText(spender)))
}

// Set writes the allowance within a transaction.
func (r *AllowanceRepo) Set(ctx context.Context, tx pgx.Tx, owner, spender common.Address, amount *uint256.Int) error {
	query := `INSERT INTO allowances (owner, spender, amount, updated_at) VALUES ($1, $2, $3::numeric, NOW())
		ON CONFLICT (owner, spender) DO UPDATE SET amount = EXCLUDED.amount, updated_at = EXCLUDED.updated_at`

	if _, err := tx.Exec(ctx, query, addrText(owner), addrText(spender), numeric(amount)); err != nil {
		return fmt.Errorf("set allowance: %w", err)
	}
	return nil
}

func (r *AllowanceRepo) scan(row pgx.Row) (*uint256.Int, error) {
	var raw string
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return new(uint256.Int), nil
		}
		return nil, fmt.Errorf("get allowance: %w", err)
	}
	return parseNumeric(raw)
}

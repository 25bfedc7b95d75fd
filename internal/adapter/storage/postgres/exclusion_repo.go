package postgres

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
)

// ExclusionRepo implements ports.ExclusionRepository.
type ExclusionRepo struct {
	pool Pool
}

// NewExclusionRepo creates a new ExclusionRepo.
func NewExclusionRepo(pool Pool) *ExclusionRepo {
	return &ExclusionRepo{pool: pool}
}

// IsExcluded reports whether account is excluded from fees.
func (r *ExclusionRepo) IsExcluded(ctx context.Context, account common.Address) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM fee_exclusions WHERE account = $1)`

	var excluded bool
	if err := r.pool.QueryRow(ctx, query, addrText(account)).Scan(&excluded); err != nil {
		return false, fmt.Errorf("check exclusion: %w", err)
	}
	return excluded, nil
}

// AnyExcluded reports whether any of accounts is excluded, read within tx.
// The rows found are share-locked so the exclusion cannot be lifted while
// the transfer is settling.
func (r *ExclusionRepo) AnyExcluded(ctx context.Context, tx pgx.Tx, accounts ...common.Address) (bool, error) {
	if len(accounts) == 0 {
		return false, nil
	}
	query := `SELECT EXISTS(SELECT 1 FROM fee_exclusions WHERE account = ANY($1::text[]) FOR SHARE)`

	var excluded bool
	if err := tx.QueryRow(ctx, query, addrTexts(accounts)).Scan(&excluded); err != nil {
		return false, fmt.Errorf("check exclusions: %w", err)
	}
	return excluded, nil
}

// Add excludes account within a transaction.
func (r *ExclusionRepo) Add(ctx context.Context, tx pgx.Tx, account, by common.Address) (bool, error) {
	query := `INSERT INTO fee_exclusions (account, excluded_by, created_at) VALUES ($1, $2, NOW())
		ON CONFLICT (account) DO NOTHING`

	tag, err := tx.Exec(ctx, query, addrText(account), addrText(by))
	if err != nil {
		return false, fmt.Errorf("exclude from fee: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Remove includes account in fees again within a transaction.
func (r *ExclusionRepo) Remove(ctx context.Context, tx pgx.Tx, account common.Address) (bool, error) {
	query := `DELETE FROM fee_exclusions WHERE account = $1`

	tag, err := tx.Exec(ctx, query, addrText(account))
	if err != nil {
		return false, fmt.Errorf("include in fee: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

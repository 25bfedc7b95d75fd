package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
)

// BalanceRepo implements ports.BalanceRepository.
type BalanceRepo struct {
	pool Pool
}

// NewBalanceRepo creates a new BalanceRepo.
func NewBalanceRepo(pool Pool) *BalanceRepo {
	return &BalanceRepo{pool: pool}
}

// Get fetches the balance of account (without locking). Unknown accounts hold zero.
func (r *BalanceRepo) Get(ctx context.Context, account common.Address) (*uint256.Int, error) {
	query := `SELECT balance::text FROM balances WHERE account = $1`

	var raw string
	err := r.pool.QueryRow(ctx, query, addrText(account)).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return new(uint256.Int), nil
		}
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return parseNumeric(raw)
}

// GetForUpdate locks the balance rows of accounts with pessimistic locking.
// Missing rows are created at zero first so that every account is locked,
// and rows are always locked in address order.
// This MUST be called within a transaction.
func (r *BalanceRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, accounts ...common.Address) (map[common.Address]*uint256.Int, error) {
	out := make(map[common.Address]*uint256.Int, len(accounts))
	if len(accounts) == 0 {
		return out, nil
	}

	keys := addrTexts(accounts)
	sort.Strings(keys)

	ensure := `INSERT INTO balances (account, balance)
		SELECT a, 0 FROM unnest($1::text[]) AS a ORDER BY a
		ON CONFLICT (account) DO NOTHING`
	if _, err := tx.Exec(ctx, ensure, keys); err != nil {
		return nil, fmt.Errorf("ensure balance rows: %w", err)
	}

	query := `SELECT account, balance::text FROM balances
		WHERE account = ANY($1::text[]) ORDER BY account FOR UPDATE`

	rows, err := tx.Query(ctx, query, keys)
	if err != nil {
		return nil, fmt.Errorf("lock balances: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var account, raw string
		if err := rows.Scan(&account, &raw); err != nil {
			return nil, fmt.Errorf("scan balance: %w", err)
		}
		bal, err := parseNumeric(raw)
		if err != nil {
			return nil, err
		}
		out[common.HexToAddress(account)] = bal
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate balances: %w", err)
	}
	return out, nil
}

// Set writes the balance of account within a transaction.
func (r *BalanceRepo) Set(ctx context.Context, tx pgx.Tx, account common.Address, balance *uint256.Int) error {
	query := `INSERT INTO balances (account, balance, updated_at) VALUES ($1, $2::numeric, NOW())
		ON CONFLICT (account) DO UPDATE SET balance = EXCLUDED.balance, updated_at = EXCLUDED.updated_at`

	if _, err := tx.Exec(ctx, query, addrText(account), numeric(balance)); err != nil {
		return fmt.Errorf("set balance: %w", err)
	}
	return nil
}

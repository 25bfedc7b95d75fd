package postgres

import (
	"context"
	"errors"
	"fmt"

	"create2earn/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
)

// TokenRepo implements ports.TokenRepository.
type TokenRepo struct {
	pool Pool
}

// NewTokenRepo creates a new TokenRepo.
func NewTokenRepo(pool Pool) *TokenRepo {
	return &TokenRepo{pool: pool}
}

// Create inserts the token row within a transaction. The table holds at
// most one row, so a second deployment fails on the primary key.
func (r *TokenRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Token) error {
	query := `INSERT INTO token (id, name, symbol, decimals, total_supply, deployer, deployed_at)
		VALUES (1, $1, $2, $3, $4::numeric, $5, $6)`

	_, err := tx.Exec(ctx, query,
		t.Name, t.Symbol, int16(t.Decimals), numeric(t.TotalSupply),
		addrText(t.Deployer), t.DeployedAt,
	)
	if err != nil {
		return fmt.Errorf("insert token: %w", err)
	}
	return nil
}

// Get fetches the deployed token, or nil when nothing is deployed yet.
func (r *TokenRepo) Get(ctx context.Context) (*domain.Token, error) {
	query := `SELECT name, symbol, decimals, total_supply::text, deployer, deployed_at FROM token WHERE id = 1`

	t := &domain.Token{}
	var (
		decimals int16
		supply   string
		deployer string
	)
	err := r.pool.QueryRow(ctx, query).Scan(&t.Name, &t.Symbol, &decimals, &supply, &deployer, &t.DeployedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get token: %w", err)
	}

	t.Decimals = uint8(decimals)
	t.Deployer = common.HexToAddress(deployer)
	if t.TotalSupply, err = parseNumeric(supply); err != nil {
		return nil, err
	}
	return t, nil
}

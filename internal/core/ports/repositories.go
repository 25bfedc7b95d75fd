package ports

import (
	"context"

	"create2earn/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
)

// TokenRepository persists the metadata of the deployed token.
type TokenRepository interface {
	Create(ctx context.Context, tx pgx.Tx, token *domain.Token) error
	// Get returns nil, nil when no token has been deployed.
	Get(ctx context.Context) (*domain.Token, error)
}

// BalanceRepository persists account balances.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic locking.
type BalanceRepository interface {
	// Get returns zero for unknown accounts.
	Get(ctx context.Context, account common.Address) (*uint256.Int, error)
	// GetForUpdate locks the rows of all accounts, in address order, and
	// returns their balances keyed by account.
	GetForUpdate(ctx context.Context, tx pgx.Tx, accounts ...common.Address) (map[common.Address]*uint256.Int, error)
	Set(ctx context.Context, tx pgx.Tx, account common.Address, balance *uint256.Int) error
}

// AllowanceRepository persists spending allowances.
type AllowanceRepository interface {
	Get(ctx context.Context, owner, spender common.Address) (*uint256.Int, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, owner, spender common.Address) (*uint256.Int, error)
	Set(ctx context.Context, tx pgx.Tx, owner, spender common.Address, amount *uint256.Int) error
}

// RoleRepository persists role memberships.
type RoleRepository interface {
	HasRole(ctx context.Context, role common.Hash, account common.Address) (bool, error)
	// Grant reports whether the membership was newly created.
	Grant(ctx context.Context, tx pgx.Tx, member *domain.RoleMember) (bool, error)
	// Revoke reports whether a membership was removed.
	Revoke(ctx context.Context, tx pgx.Tx, role common.Hash, account common.Address) (bool, error)
	Members(ctx context.Context, role common.Hash) ([]common.Address, error)
}

// ExclusionRepository persists the fee-exclusion set.
type ExclusionRepository interface {
	IsExcluded(ctx context.Context, account common.Address) (bool, error)
	// AnyExcluded reports whether at least one account is excluded, reading
	// through tx so the answer is consistent with the surrounding transfer.
	AnyExcluded(ctx context.Context, tx pgx.Tx, accounts ...common.Address) (bool, error)
	// Add and Remove report whether the set changed.
	Add(ctx context.Context, tx pgx.Tx, account, by common.Address) (bool, error)
	Remove(ctx context.Context, tx pgx.Tx, account common.Address) (bool, error)
}

// TaxRepository persists the tax registry.
type TaxRepository interface {
	List(ctx context.Context) ([]domain.TaxEntry, error)
	// ListForUpdate blocks other registry writers and transfers until tx ends.
	ListForUpdate(ctx context.Context, tx pgx.Tx) ([]domain.TaxEntry, error)
	// ListForShare blocks registry writers, not other transfers.
	ListForShare(ctx context.Context, tx pgx.Tx) ([]domain.TaxEntry, error)
	Insert(ctx context.Context, tx pgx.Tx, entry domain.TaxEntry) error
	Update(ctx context.Context, tx pgx.Tx, entry domain.TaxEntry) error
	Delete(ctx context.Context, tx pgx.Tx, identifier uint32) error
	Renumber(ctx context.Context, tx pgx.Tx, from, to uint32) error
}

// TransferRepository persists settled transfers with their tax lines.
type TransferRepository interface {
	Create(ctx context.Context, tx pgx.Tx, transfer *domain.Transfer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transfer, error)
	List(ctx context.Context, filter domain.TransferFilter) ([]domain.Transfer, int64, error)
	Stats(ctx context.Context) (*domain.TaxStats, error)
}

// IdempotencyRepository defines persistence for idempotency logs (DB backup).
type IdempotencyRepository interface {
	Create(ctx context.Context, tx pgx.Tx, log *domain.IdempotencyLog) error
	Get(ctx context.Context, key string) (*domain.IdempotencyLog, error)
}

// AuditRepository persists audit logs.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// DeliveryRepository persists webhook delivery outcomes.
type DeliveryRepository interface {
	Create(ctx context.Context, d *domain.EventDelivery) error
	Update(ctx context.Context, d *domain.EventDelivery) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

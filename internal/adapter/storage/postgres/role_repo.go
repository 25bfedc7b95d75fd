package postgres

import (
	"context"
	"fmt"

	"create2earn/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
)

// RoleRepo implements ports.RoleRepository.
type RoleRepo struct {
	pool Pool
}

// NewRoleRepo creates a new RoleRepo.
func NewRoleRepo(pool Pool) *RoleRepo {
	return &RoleRepo{pool: pool}
}

// HasRole checks whether account holds role.
func (r *RoleRepo) HasRole(ctx context.Context, role common.Hash, account common.Address) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM role_members WHERE role = $1 AND account = $2)`

	var has bool
	if err := r.pool.QueryRow(ctx, query, domain.RoleHex(role), addrText(account)).Scan(&has); err != nil {
		return false, fmt.Errorf("check role: %w", err)
	}
	return has, nil
}

// Grant inserts a membership within a transaction. Granting an existing
// membership is a no-op reported as false.
func (r *RoleRepo) Grant(ctx context.Context, tx pgx.Tx, m *domain.RoleMember) (bool, error) {
	query := `INSERT INTO role_members (role, account, granted_by, granted_at) VALUES ($1, $2, $3, NOW())
		ON CONFLICT (role, account) DO NOTHING`

	tag, err := tx.Exec(ctx, query, domain.RoleHex(m.Role), addrText(m.Account), addrText(m.GrantedBy))
	if err != nil {
		return false, fmt.Errorf("grant role: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Revoke deletes a membership within a transaction.
func (r *RoleRepo) Revoke(ctx context.Context, tx pgx.Tx, role common.Hash, account common.Address) (bool, error) {
	query := `DELETE FROM role_members WHERE role = $1 AND account = $2`

	tag, err := tx.Exec(ctx, query, domain.RoleHex(role), addrText(account))
	if err != nil {
		return false, fmt.Errorf("revoke role: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Members lists the holders of role in grant order.
func (r *RoleRepo) Members(ctx context.Context, role common.Hash) ([]common.Address, error) {
	query := `SELECT account FROM role_members WHERE role = $1 ORDER BY granted_at, account`

	rows, err := r.pool.Query(ctx, query, domain.RoleHex(role))
	if err != nil {
		return nil, fmt.Errorf("list role members: %w", err)
	}
	defer rows.Close()

	var members []common.Address
	for rows.Next() {
		var account string
		if err := rows.Scan(&account); err != nil {
			return nil, fmt.Errorf("scan role member: %w", err)
		}
		members = append(members, common.HexToAddress(account))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate role members: %w", err)
	}
	return members, nil
}

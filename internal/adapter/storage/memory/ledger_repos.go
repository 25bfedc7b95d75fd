package memory

import (
	"context"
	"errors"

	"create2earn/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
)

// ErrTokenExists mirrors the primary-key violation on a second deployment.
var ErrTokenExists = errors.New("memory: token already deployed")

// TokenRepo implements ports.TokenRepository.
type TokenRepo struct {
	store *Store
}

// NewTokenRepo creates a new TokenRepo.
func NewTokenRepo(store *Store) *TokenRepo {
	return &TokenRepo{store: store}
}

func (r *TokenRepo) Create(ctx context.Context, tx pgx.Tx, token *domain.Token) error {
	mt, err := r.store.txOf(tx)
	if err != nil {
		return err
	}
	if mt.working.token != nil {
		return ErrTokenExists
	}
	t := *token
	t.TotalSupply = cloneAmount(token.TotalSupply)
	mt.working.token = &t
	return nil
}

func (r *TokenRepo) Get(ctx context.Context) (*domain.Token, error) {
	var out *domain.Token
	r.store.committed(func(st *ledgerState) {
		if st.token != nil {
			t := *st.token
			t.TotalSupply = cloneAmount(st.token.TotalSupply)
			out = &t
		}
	})
	return out, nil
}

// BalanceRepo implements ports.BalanceRepository.
type BalanceRepo struct {
	store *Store
}

// NewBalanceRepo creates a new BalanceRepo.
func NewBalanceRepo(store *Store) *BalanceRepo {
	return &BalanceRepo{store: store}
}

func (r *BalanceRepo) Get(ctx context.Context, account common.Address) (*uint256.Int, error) {
	var out *uint256.Int
	r.store.committed(func(st *ledgerState) {
		out = cloneAmount(st.balances[account])
	})
	return out, nil
}

// GetForUpdate reads balances from the transaction's working copy. The
// transaction already excludes other writers, so no row locks are needed.
func (r *BalanceRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, accounts ...common.Address) (map[common.Address]*uint256.Int, error) {
	mt, err := r.store.txOf(tx)
	if err != nil {
		return nil, err
	}
	out := make(map[common.Address]*uint256.Int, len(accounts))
	for _, a := range accounts {
		out[a] = cloneAmount(mt.working.balances[a])
	}
	return out, nil
}

func (r *BalanceRepo) Set(ctx context.Context, tx pgx.Tx, account common.Address, balance *uint256.Int) error {
	mt, err := r.store.txOf(tx)
	if err != nil {
		return err
	}
	mt.working.balances[account] = cloneAmount(balance)
	return nil
}

// Holders returns every non-zero committed balance.
func (r *BalanceRepo) Holders(ctx context.Context) map[common.Address]*uint256.Int {
	out := make(map[common.Address]*uint256.Int)
	r.store.committed(func(st *ledgerState) {
		for a, b := range st.balances {
			if !b.IsZero() {
				out[a] = cloneAmount(b)
			}
		}
	})
	return out
}

// AllowanceRepo implements ports.AllowanceRepository.
type AllowanceRepo struct {
	store *Store
}

// NewAllowanceRepo creates a new AllowanceRepo.
func NewAllowanceRepo(store *Store) *AllowanceRepo {
	return &AllowanceRepo{store: store}
}

func (r *AllowanceRepo) Get(ctx context.Context, owner, spender common.Address) (*uint256.Int, error) {
	var out *uint256.Int
	r.store.committed(func(st *ledgerState) {
		out = cloneAmount(st.allowances[allowanceKey{owner, spender}])
	})
	return out, nil
}

func (r *AllowanceRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, owner, spender common.Address) (*uint256.Int, error) {
	mt, err := r.store.txOf(tx)
	if err != nil {
		return nil, err
	}
	return cloneAmount(mt.working.allowances[allowanceKey{owner, spender}]), nil
}

func (r *AllowanceRepo) Set(ctx context.Context, tx pgx.Tx, owner, spender common.Address, amount *uint256.Int) error {
	mt, err := r.store.txOf(tx)
	if err != nil {
		return err
	}
	mt.working.allowances[allowanceKey{owner, spender}] = cloneAmount(amount)
	return nil
}

// RoleRepo implements ports.RoleRepository.
type RoleRepo struct {
	store *Store
}

// NewRoleRepo creates a new RoleRepo.
func NewRoleRepo(store *Store) *RoleRepo {
	return &RoleRepo{store: store}
}

func (r *RoleRepo) HasRole(ctx context.Context, role common.Hash, account common.Address) (bool, error) {
	var has bool
	r.store.committed(func(st *ledgerState) {
		has = indexOfMember(st.roles[role], account) >= 0
	})
	return has, nil
}

func (r *RoleRepo) Grant(ctx context.Context, tx pgx.Tx, member *domain.RoleMember) (bool, error) {
	mt, err := r.store.txOf(tx)
	if err != nil {
		return false, err
	}
	members := mt.working.roles[member.Role]
	if indexOfMember(members, member.Account) >= 0 {
		return false, nil
	}
	mt.working.roles[member.Role] = append(members, *member)
	return true, nil
}

func (r *RoleRepo) Revoke(ctx context.Context, tx pgx.Tx, role common.Hash, account common.Address) (bool, error) {
	mt, err := r.store.txOf(tx)
	if err != nil {
		return false, err
	}
	members := mt.working.roles[role]
	i := indexOfMember(members, account)
	if i < 0 {
		return false, nil
	}
	mt.working.roles[role] = append(members[:i:i], members[i+1:]...)
	return true, nil
}

// Members lists the holders of role in grant order.
func (r *RoleRepo) Members(ctx context.Context, role common.Hash) ([]common.Address, error) {
	var out []common.Address
	r.store.committed(func(st *ledgerState) {
		for _, m := range st.roles[role] {
			out = append(out, m.Account)
		}
	})
	return out, nil
}

func indexOfMember(members []domain.RoleMember, account common.Address) int {
	for i, m := range members {
		if m.Account == account {
			return i
		}
	}
	return -1
}

// ExclusionRepo implements ports.ExclusionRepository.
type ExclusionRepo struct {
	store *Store
}

// NewExclusionRepo creates a new ExclusionRepo.
func NewExclusionRepo(store *Store) *ExclusionRepo {
	return &ExclusionRepo{store: store}
}

func (r *ExclusionRepo) IsExcluded(ctx context.Context, account common.Address) (bool, error) {
	var excluded bool
	r.store.committed(func(st *ledgerState) {
		_, excluded = st.exclusions[account]
	})
	return excluded, nil
}

func (r *ExclusionRepo) AnyExcluded(ctx context.Context, tx pgx.Tx, accounts ...common.Address) (bool, error) {
	mt, err := r.store.txOf(tx)
	if err != nil {
		return false, err
	}
	for _, a := range accounts {
		if _, ok := mt.working.exclusions[a]; ok {
			return true, nil
		}
	}
	return false, nil
}

func (r *ExclusionRepo) Add(ctx context.Context, tx pgx.Tx, account, by common.Address) (bool, error) {
	mt, err := r.store.txOf(tx)
	if err != nil {
		return false, err
	}
	if _, ok := mt.working.exclusions[account]; ok {
		return false, nil
	}
	mt.working.exclusions[account] = by
	return true, nil
}

func (r *ExclusionRepo) Remove(ctx context.Context, tx pgx.Tx, account common.Address) (bool, error) {
	mt, err := r.store.txOf(tx)
	if err != nil {
		return false, err
	}
	if _, ok := mt.working.exclusions[account]; !ok {
		return false, nil
	}
	delete(mt.working.exclusions, account)
	return true, nil
}

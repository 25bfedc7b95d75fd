package service

import (
	"context"
	"fmt"

	"create2earn/internal/core/domain"
	"create2earn/internal/core/ports"
	"create2earn/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
)

// RoleEvent is the payload of ROLE_GRANTED and ROLE_REVOKED events.
type RoleEvent struct {
	Role    string `json:"role"`
	Account string `json:"account"`
	Sender  string `json:"sender"`
}

// AccessControlServiceImpl implements ports.AccessControlService.
type AccessControlServiceImpl struct {
	roleRepo   ports.RoleRepository
	transactor ports.DBTransactor
	events     ports.EventPublisher
	log        zerolog.Logger
}

// NewAccessControlService creates a new AccessControlServiceImpl.
func NewAccessControlService(
	roleRepo ports.RoleRepository,
	transactor ports.DBTransactor,
	events ports.EventPublisher,
	log zerolog.Logger,
) *AccessControlServiceImpl {
	if events == nil {
		events = noopPublisher{}
	}
	return &AccessControlServiceImpl{
		roleRepo:   roleRepo,
		transactor: transactor,
		events:     events,
		log:        log,
	}
}

// Authorize is the single role check used by every privileged operation.
func (s *AccessControlServiceImpl) Authorize(ctx context.Context, account common.Address, role common.Hash) (ports.Authorization, error) {
	has, err := s.roleRepo.HasRole(ctx, role, account)
	if err != nil {
		return ports.Authorization{}, fmt.Errorf("check role: %w", err)
	}
	return ports.Authorization{Granted: has, Role: role, Account: account}, nil
}

// HasRole reports whether account holds role.
func (s *AccessControlServiceImpl) HasRole(ctx context.Context, role common.Hash, account common.Address) (bool, error) {
	has, err := s.roleRepo.HasRole(ctx, role, account)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("has role: %w", err))
	}
	return has, nil
}

// Members lists the accounts holding role.
func (s *AccessControlServiceImpl) Members(ctx context.Context, role common.Hash) ([]common.Address, error) {
	if _, ok := domain.RoleName(role); !ok {
		return nil, apperror.ErrUnknownRole()
	}
	members, err := s.roleRepo.Members(ctx, role)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list members: %w", err))
	}
	return members, nil
}

// GrantRole gives role to account. The caller must hold the admin role of role.
func (s *AccessControlServiceImpl) GrantRole(ctx context.Context, caller common.Address, role common.Hash, account common.Address) error {
	if err := s.checkAdmin(ctx, caller, role); err != nil {
		return err
	}
	if domain.IsZero(account) {
		return apperror.ErrInvalidAddress()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	granted, err := s.roleRepo.Grant(ctx, dbTx, &domain.RoleMember{Role: role, Account: account, GrantedBy: caller})
	if err != nil {
		return apperror.InternalError(fmt.Errorf("grant role: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if granted {
		s.log.Info().
			Str("role", domain.RoleHex(role)).
			Str("account", account.Hex()).
			Str("sender", caller.Hex()).
			Msg("role granted")
		s.events.Publish(ctx, domain.EventRoleGranted, RoleEvent{
			Role:    domain.RoleHex(role),
			Account: account.Hex(),
			Sender:  caller.Hex(),
		})
	}
	return nil
}

// RevokeRole removes role from account. The caller must hold the admin role of role.
func (s *AccessControlServiceImpl) RevokeRole(ctx context.Context, caller common.Address, role common.Hash, account common.Address) error {
	if err := s.checkAdmin(ctx, caller, role); err != nil {
		return err
	}
	return s.revoke(ctx, caller, role, account)
}

// RenounceRole lets the caller give up one of its own roles.
func (s *AccessControlServiceImpl) RenounceRole(ctx context.Context, caller common.Address, role common.Hash, account common.Address) error {
	if _, ok := domain.RoleName(role); !ok {
		return apperror.ErrUnknownRole()
	}
	if account != caller {
		return apperror.ErrRenounceForOther()
	}
	return s.revoke(ctx, caller, role, account)
}

func (s *AccessControlServiceImpl) revoke(ctx context.Context, caller common.Address, role common.Hash, account common.Address) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	revoked, err := s.roleRepo.Revoke(ctx, dbTx, role, account)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("revoke role: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if revoked {
		s.log.Info().
			Str("role", domain.RoleHex(role)).
			Str("account", account.Hex()).
			Str("sender", caller.Hex()).
			Msg("role revoked")
		s.events.Publish(ctx, domain.EventRoleRevoked, RoleEvent{
			Role:    domain.RoleHex(role),
			Account: account.Hex(),
			Sender:  caller.Hex(),
		})
	}
	return nil
}

// checkAdmin fails with the AccessControl missing-role error when caller
// lacks the admin role of role.
func (s *AccessControlServiceImpl) checkAdmin(ctx context.Context, caller common.Address, role common.Hash) error {
	if _, ok := domain.RoleName(role); !ok {
		return apperror.ErrUnknownRole()
	}

	admin := domain.RoleAdmin(role)
	auth, err := s.Authorize(ctx, caller, admin)
	if err != nil {
		return apperror.InternalError(err)
	}
	if !auth.Granted {
		return apperror.ErrMissingRole(domain.Lower(caller), domain.RoleHex(admin))
	}
	return nil
}

// requireRole converts a failed authorization into the generic access error.
func requireRole(ctx context.Context, access ports.AccessControlService, caller common.Address, role common.Hash) error {
	auth, err := access.Authorize(ctx, caller, role)
	if err != nil {
		return apperror.InternalError(err)
	}
	if !auth.Granted {
		return apperror.ErrAccessDenied()
	}
	return nil
}

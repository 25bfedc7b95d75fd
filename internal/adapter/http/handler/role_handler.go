package handler

import (
	"context"

	"create2earn/internal/adapter/http/dto"
	"create2earn/internal/core/domain"
	"create2earn/internal/core/ports"
	"create2earn/pkg/apperror"
	"create2earn/pkg/response"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

// RoleHandler serves the access-control surface.
type RoleHandler struct {
	access ports.AccessControlService
}

// NewRoleHandler creates a new RoleHandler.
func NewRoleHandler(access ports.AccessControlService) *RoleHandler {
	return &RoleHandler{access: access}
}

// role parses the :role path parameter (name or 32-byte id).
func role(c *gin.Context) (common.Hash, bool) {
	r, err := domain.ParseRole(c.Param("role"))
	if err != nil {
		response.Error(c, apperror.ErrUnknownRole())
		return common.Hash{}, false
	}
	return r, true
}

// ListRoles handles GET /api/v1/roles.
func (h *RoleHandler) ListRoles(c *gin.Context) {
	roles := []common.Hash{domain.AdminRole, domain.TokenControlRole}
	out := make([]dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		name, _ := domain.RoleName(r)
		out = append(out, dto.RoleResponse{
			Name:  name,
			ID:    domain.RoleHex(r),
			Admin: domain.RoleHex(domain.RoleAdmin(r)),
		})
	}
	response.OK(c, out)
}

// HasRole handles GET /api/v1/roles/:role/members/:account.
func (h *RoleHandler) HasRole(c *gin.Context) {
	r, ok := role(c)
	if !ok {
		return
	}
	account, ok := address(c, c.Param("account"))
	if !ok {
		return
	}

	has, err := h.access.HasRole(c.Request.Context(), r, account)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.HasRoleResponse{
		Role:    domain.RoleHex(r),
		Account: account.Hex(),
		HasRole: has,
	})
}

// Members handles GET /api/v1/roles/:role/members.
func (h *RoleHandler) Members(c *gin.Context) {
	r, ok := role(c)
	if !ok {
		return
	}

	members, err := h.access.Members(c.Request.Context(), r)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]string, 0, len(members))
	for _, m := range members {
		out = append(out, m.Hex())
	}
	response.OK(c, dto.RoleMembersResponse{Role: domain.RoleHex(r), Members: out})
}

// Grant handles POST /api/v1/roles/:role/grant.
func (h *RoleHandler) Grant(c *gin.Context) {
	h.change(c, true, h.access.GrantRole)
}

// Revoke handles POST /api/v1/roles/:role/revoke.
func (h *RoleHandler) Revoke(c *gin.Context) {
	h.change(c, false, h.access.RevokeRole)
}

func (h *RoleHandler) change(
	c *gin.Context,
	granted bool,
	apply func(ctx context.Context, caller common.Address, role common.Hash, account common.Address) error,
) {
	sender, ok := caller(c)
	if !ok {
		return
	}
	r, ok := role(c)
	if !ok {
		return
	}
	var req dto.RoleAccountRequest
	if !bind(c, &req) {
		return
	}
	account, ok := address(c, req.Account)
	if !ok {
		return
	}

	if err := apply(c.Request.Context(), sender, r, account); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.HasRoleResponse{
		Role:    domain.RoleHex(r),
		Account: account.Hex(),
		HasRole: granted,
	})
}

// Renounce handles POST /api/v1/roles/:role/renounce. The body is optional;
// without it the caller renounces its own membership.
func (h *RoleHandler) Renounce(c *gin.Context) {
	sender, ok := caller(c)
	if !ok {
		return
	}
	r, ok := role(c)
	if !ok {
		return
	}

	account := sender
	if c.Request.ContentLength > 0 {
		var req dto.RoleAccountRequest
		if !bind(c, &req) {
			return
		}
		if account, ok = address(c, req.Account); !ok {
			return
		}
	}

	if err := h.access.RenounceRole(c.Request.Context(), sender, r, account); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.HasRoleResponse{
		Role:    domain.RoleHex(r),
		Account: account.Hex(),
		HasRole: false,
	})
}

package domain

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

// ErrUnknownRole is returned when a role name or id is not defined.
var ErrUnknownRole = errors.New("unknown role")

// RoleID returns keccak256(name), the on-chain identifier of a role.
func RoleID(name string) common.Hash {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(name))
	return common.BytesToHash(h.Sum(nil))
}

const (
	AdminRoleName        = "ADMIN_ROLE"
	TokenControlRoleName = "TOKEN_CONTROL_ROLE"
)

var (
	AdminRole        = RoleID(AdminRoleName)
	TokenControlRole = RoleID(TokenControlRoleName)
)

var roleNames = map[common.Hash]string{
	AdminRole:        AdminRoleName,
	TokenControlRole: TokenControlRoleName,
}

// RoleAdmin returns the role whose members may grant and revoke role.
// Every role, ADMIN_ROLE included, is administered by ADMIN_ROLE.
func RoleAdmin(role common.Hash) common.Hash {
	return AdminRole
}

// RoleName returns the symbolic name of a known role.
func RoleName(role common.Hash) (string, bool) {
	name, ok := roleNames[role]
	return name, ok
}

// ParseRole accepts either a role name ("TOKEN_CONTROL_ROLE") or its
// 32-byte hex id.
func ParseRole(s string) (common.Hash, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		if len(s) != 2+2*common.HashLength {
			return common.Hash{}, ErrUnknownRole
		}
		role := common.HexToHash(s)
		if _, ok := roleNames[role]; !ok {
			return common.Hash{}, ErrUnknownRole
		}
		return role, nil
	}
	for role, name := range roleNames {
		if strings.EqualFold(name, s) {
			return role, nil
		}
	}
	return common.Hash{}, ErrUnknownRole
}

// RoleHex renders a role id as lowercase 0x-hex.
func RoleHex(role common.Hash) string {
	return strings.ToLower(role.Hex())
}

// RoleMember is one (role, account) grant.
type RoleMember struct {
	Role      common.Hash    `json:"role"`
	Account   common.Address `json:"account"`
	GrantedBy common.Address `json:"granted_by"`
}

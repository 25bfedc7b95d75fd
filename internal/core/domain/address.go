package domain

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ErrMalformedAddress is returned for strings that are not 20-byte hex addresses.
var ErrMalformedAddress = errors.New("malformed address")

// ZeroAddress is never a valid account or tax recipient.
var ZeroAddress = common.Address{}

// ParseAddress parses a 0x-prefixed hex address. The zero address parses
// successfully; callers decide whether it is acceptable.
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) || !strings.HasPrefix(strings.ToLower(s), "0x") {
		return common.Address{}, ErrMalformedAddress
	}
	return common.HexToAddress(s), nil
}

// IsZero reports whether addr is the zero address.
func IsZero(addr common.Address) bool {
	return addr == ZeroAddress
}

// Lower renders addr as lowercase 0x-hex, the persisted form.
func Lower(addr common.Address) string {
	return strings.ToLower(addr.Hex())
}

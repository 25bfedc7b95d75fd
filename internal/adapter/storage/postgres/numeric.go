package postgres

import (
	"fmt"

	"create2earn/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Amounts are stored as NUMERIC(78,0) and cross the wire as decimal text:
// queries cast them with ::text on the way out and ::numeric on the way in.

func numeric(v *uint256.Int) string {
	if v == nil {
		return "0"
	}
	return v.Dec()
}

func parseNumeric(s string) (*uint256.Int, error) {
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("parse numeric %q: %w", s, err)
	}
	return v, nil
}

// addrText is the persisted form of an address.
func addrText(a common.Address) string {
	return domain.Lower(a)
}

func addrTexts(accounts []common.Address) []string {
	out := make([]string, len(accounts))
	for i, a := range accounts {
		out[i] = addrText(a)
	}
	return out
}

package domain

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"checksummed", "0x5B38Da6a701c568545dCfcB03FcB875f56beddC4", false},
		{"lowercase", "0x5b38da6a701c568545dcfcb03fcb875f56beddc4", false},
		{"zero", "0x0000000000000000000000000000000000000000", false},
		{"no prefix", "5b38da6a701c568545dcfcb03fcb875f56beddc4", true},
		{"short", "0x1234", true},
		{"not hex", "0xzz38da6a701c568545dcfcb03fcb875f56beddc4", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAddress(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedAddress)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLowerAndZero(t *testing.T) {
	addr := common.HexToAddress("0x5B38Da6a701c568545dCfcB03FcB875f56beddC4")
	assert.Equal(t, "0x5b38da6a701c568545dcfcb03fcb875f56beddc4", Lower(addr))
	assert.True(t, IsZero(ZeroAddress))
	assert.False(t, IsZero(addr))
}

func TestRoleID(t *testing.T) {
	// keccak256("") is a well-known constant.
	assert.Equal(t,
		"0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		RoleHex(RoleID("")))
	assert.NotEqual(t, AdminRole, TokenControlRole)
	assert.Equal(t, AdminRole, RoleAdmin(TokenControlRole))
	assert.Equal(t, AdminRole, RoleAdmin(AdminRole))
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("TOKEN_CONTROL_ROLE")
	require.NoError(t, err)
	assert.Equal(t, TokenControlRole, role)

	role, err = ParseRole("admin_role")
	require.NoError(t, err)
	assert.Equal(t, AdminRole, role)

	role, err = ParseRole(RoleHex(TokenControlRole))
	require.NoError(t, err)
	assert.Equal(t, TokenControlRole, role)

	_, err = ParseRole("MINTER_ROLE")
	assert.ErrorIs(t, err, ErrUnknownRole)

	_, err = ParseRole("0x1234")
	assert.ErrorIs(t, err, ErrUnknownRole)

	_, err = ParseRole(RoleHex(RoleID("MINTER_ROLE")))
	assert.ErrorIs(t, err, ErrUnknownRole)

	name, ok := RoleName(AdminRole)
	assert.True(t, ok)
	assert.Equal(t, AdminRoleName, name)
}

func TestTransfer_Involves(t *testing.T) {
	from := common.HexToAddress("0x01")
	to := common.HexToAddress("0x02")
	collector := common.HexToAddress("0x03")
	other := common.HexToAddress("0x04")

	tr := &Transfer{
		From: from,
		To:   to,
		TaxLines: []TaxLine{
			{Identifier: 0, Recipient: collector, Percentage: 1, Amount: uint256.NewInt(1)},
		},
	}
	assert.True(t, tr.Involves(from))
	assert.True(t, tr.Involves(to))
	assert.True(t, tr.Involves(collector))
	assert.False(t, tr.Involves(other))
}

func TestTaxLinesFromSplit(t *testing.T) {
	assert.Nil(t, TaxLinesFromSplit(SplitResult{}))

	lines := TaxLinesFromSplit(SplitResult{Lines: []SplitLine{
		{Identifier: 2, Recipient: r1, Percentage: 5, Amount: uint256.NewInt(50)},
	}})
	require.Len(t, lines, 1)
	assert.Equal(t, uint32(2), lines[0].Identifier)
	assert.Equal(t, uint256.NewInt(50), lines[0].Amount)
}

func TestBuildIdempotencyKey(t *testing.T) {
	caller := common.HexToAddress("0x5B38Da6a701c568545dCfcB03FcB875f56beddC4")
	assert.Equal(t, "0x5b38da6a701c568545dcfcb03fcb875f56beddc4:order-1", BuildIdempotencyKey(caller, "order-1"))
}

func TestCompactionMode_Valid(t *testing.T) {
	assert.True(t, CompactSwapLast.Valid())
	assert.True(t, CompactShift.Valid())
	assert.False(t, CompactionMode("").Valid())
}

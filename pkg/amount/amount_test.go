package amount

import (
	"strings"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnits(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"whole", "1000000", "1000000000000000000000000", nil},
		{"fraction", "0.25", "250000000000000000", nil},
		{"leading dot", ".5", "500000000000000000", nil},
		{"trailing zeros ignored", "1.500", "1500000000000000000", nil},
		{"one wei", "0.000000000000000001", "1", nil},
		{"too precise", "0.0000000000000000001", "", ErrPrecision},
		{"empty", "  ", "", ErrEmpty},
		{"overflow", "1" + strings.Repeat("0", 70), "", ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUnits(tt.input, Decimals)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Dec())
		})
	}
}

func TestParseBase_Rejects(t *testing.T) {
	_, err := ParseBase("-1")
	assert.Error(t, err)

	_, err = ParseBase("12abc")
	assert.Error(t, err)
}

func TestFormatUnits(t *testing.T) {
	assert.Equal(t, "1000000", FormatUnits(MustParseUnits("1000000", Decimals), Decimals))
	assert.Equal(t, "0.25", FormatUnits(MustParseUnits("0.25", Decimals), Decimals))
	assert.Equal(t, "0.000000000000000001", FormatUnits(uint256.NewInt(1), Decimals))
	assert.Equal(t, "0", FormatUnits(nil, Decimals))
}

func TestUnit(t *testing.T) {
	assert.Equal(t, "1000000000000000000", Unit(18).Dec())
	assert.Equal(t, "1", Unit(0).Dec())
}

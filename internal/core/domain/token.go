package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// TokenDecimals is the fixed number of fractional digits of the token.
const TokenDecimals uint8 = 18

// Token is the metadata of the single deployed token.
type Token struct {
	Name        string
	Symbol      string
	Decimals    uint8
	TotalSupply *uint256.Int
	Deployer    common.Address
	DeployedAt  time.Time
}

// Allowance is the amount spender may move on behalf of owner.
type Allowance struct {
	Owner   common.Address
	Spender common.Address
	Amount  *uint256.Int
}

package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
)

// TransferKind distinguishes how a ledger movement was initiated.
type TransferKind string

const (
	TransferKindMint         TransferKind = "MINT"
	TransferKindTransfer     TransferKind = "TRANSFER"
	TransferKindTransferFrom TransferKind = "TRANSFER_FROM"
)

// TaxLine is the persisted share of one transfer credited to a tax recipient.
type TaxLine struct {
	Identifier uint32
	Recipient  common.Address
	Percentage uint8
	Amount     *uint256.Int
}

// Transfer is an immutable record of a settled movement of tokens.
type Transfer struct {
	ID             uuid.UUID
	Kind           TransferKind
	From           common.Address
	To             common.Address
	Spender        *common.Address
	Amount         *uint256.Int
	NetAmount      *uint256.Int
	TaxTotal       *uint256.Int
	Taxed          bool
	TaxLines       []TaxLine
	IdempotencyKey *string
	CreatedAt      time.Time
}

// TaxLinesFromSplit converts a split into persisted tax lines.
func TaxLinesFromSplit(res SplitResult) []TaxLine {
	if len(res.Lines) == 0 {
		return nil
	}
	lines := make([]TaxLine, 0, len(res.Lines))
	for _, l := range res.Lines {
		lines = append(lines, TaxLine{
			Identifier: l.Identifier,
			Recipient:  l.Recipient,
			Percentage: l.Percentage,
			Amount:     l.Amount,
		})
	}
	return lines
}

// Involves reports whether addr sent, received or collected tax from t.
func (t *Transfer) Involves(addr common.Address) bool {
	if t.From == addr || t.To == addr {
		return true
	}
	for _, l := range t.TaxLines {
		if l.Recipient == addr {
			return true
		}
	}
	return false
}

// TransferFilter selects transfers for history listings.
type TransferFilter struct {
	Address  *common.Address
	Page     int
	PageSize int
}

// TaxStats aggregates the transfer history.
type TaxStats struct {
	TransferCount  int64
	TaxedCount     int64
	TotalVolume    *uint256.Int
	TotalCollected *uint256.Int
}

package handler

import (
	"math"
	"strconv"
	"time"

	"create2earn/internal/adapter/http/dto"
	"create2earn/internal/adapter/http/middleware"
	"create2earn/internal/core/domain"
	"create2earn/pkg/apperror"
	"create2earn/pkg/response"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/holiman/uint256"
)

// HeaderIdempotencyKey makes a transfer safe to retry.
const HeaderIdempotencyKey = "Idempotency-Key"

// bind decodes and sanitizes the JSON body, writing REQ_001 on failure.
func bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return false
	}
	dto.SanitizeStruct(req)
	return true
}

// caller returns the authenticated account or writes AUTH_003.
func caller(c *gin.Context) (common.Address, bool) {
	account, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return common.Address{}, false
	}
	return account, true
}

// address parses a hex address, writing TOK_003 on failure.
func address(c *gin.Context, s string) (common.Address, bool) {
	addr, err := domain.ParseAddress(s)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAddress())
		return common.Address{}, false
	}
	return addr, true
}

// baseUnits parses a decimal amount of base units, writing TOK_002 on failure.
func baseUnits(c *gin.Context, s string) (*uint256.Int, bool) {
	v, err := uint256.FromDecimal(s)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAmount())
		return nil, false
	}
	return v, true
}

// taxIdentifier parses the :id path parameter. Values beyond uint32 are
// clamped so the registry reports them as nonexistent after the role check.
func taxIdentifier(c *gin.Context) (uint32, bool) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, apperror.Validation("tax identifier must be a non-negative integer"))
		return 0, false
	}
	if n > math.MaxUint32 {
		n = math.MaxUint32
	}
	return uint32(n), true
}

func toTaxEntryResponse(e domain.TaxEntry) dto.TaxEntryResponse {
	return dto.TaxEntryResponse{
		Identifier: e.Identifier,
		Percentage: e.Percentage,
		Recipient:  e.Recipient.Hex(),
	}
}

func toTransferResponse(t *domain.Transfer) dto.TransferResponse {
	resp := dto.TransferResponse{
		ID:        t.ID.String(),
		Kind:      string(t.Kind),
		From:      t.From.Hex(),
		To:        t.To.Hex(),
		Amount:    dec(t.Amount),
		NetAmount: dec(t.NetAmount),
		TaxTotal:  dec(t.TaxTotal),
		Taxed:     t.Taxed,
		TaxLines:  make([]dto.TaxLineResponse, 0, len(t.TaxLines)),
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
	if t.Spender != nil {
		s := t.Spender.Hex()
		resp.Spender = &s
	}
	for _, l := range t.TaxLines {
		resp.TaxLines = append(resp.TaxLines, dto.TaxLineResponse{
			Identifier: l.Identifier,
			Recipient:  l.Recipient.Hex(),
			Percentage: l.Percentage,
			Amount:     dec(l.Amount),
		})
	}
	return resp
}

func dec(v *uint256.Int) string {
	if v == nil {
		return "0"
	}
	return v.Dec()
}

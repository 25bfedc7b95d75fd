package handler

import (
	"time"

	"create2earn/internal/adapter/http/dto"
	"create2earn/internal/core/domain"
	"create2earn/internal/core/ports"
	"create2earn/pkg/amount"
	"create2earn/pkg/response"

	"github.com/gin-gonic/gin"
)

// TokenHandler serves the ERC20 surface of the ledger.
type TokenHandler struct {
	ledger ports.LedgerService
}

// NewTokenHandler creates a new TokenHandler.
func NewTokenHandler(ledger ports.LedgerService) *TokenHandler {
	return &TokenHandler{ledger: ledger}
}

// GetToken handles GET /api/v1/token.
func (h *TokenHandler) GetToken(c *gin.Context) {
	token, err := h.ledger.Token(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TokenResponse{
		Name:        token.Name,
		Symbol:      token.Symbol,
		Decimals:    token.Decimals,
		TotalSupply: dec(token.TotalSupply),
		Deployer:    token.Deployer.Hex(),
		DeployedAt:  token.DeployedAt.Format(time.RFC3339),
	})
}

// BalanceOf handles GET /api/v1/balances/:address.
func (h *TokenHandler) BalanceOf(c *gin.Context) {
	account, ok := address(c, c.Param("address"))
	if !ok {
		return
	}

	balance, err := h.ledger.BalanceOf(c.Request.Context(), account)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		Address:   account.Hex(),
		Balance:   balance.Dec(),
		Formatted: amount.FormatUnits(balance, domain.TokenDecimals),
	})
}

// Allowance handles GET /api/v1/allowances/:owner/:spender.
func (h *TokenHandler) Allowance(c *gin.Context) {
	owner, ok := address(c, c.Param("owner"))
	if !ok {
		return
	}
	spender, ok := address(c, c.Param("spender"))
	if !ok {
		return
	}

	allowance, err := h.ledger.Allowance(c.Request.Context(), owner, spender)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AllowanceResponse{
		Owner:   owner.Hex(),
		Spender: spender.Hex(),
		Amount:  allowance.Dec(),
	})
}

// Transfer handles POST /api/v1/transfers.
func (h *TokenHandler) Transfer(c *gin.Context) {
	sender, ok := caller(c)
	if !ok {
		return
	}
	var req dto.TransferRequest
	if !bind(c, &req) {
		return
	}
	to, ok := address(c, req.To)
	if !ok {
		return
	}
	value, ok := baseUnits(c, req.Amount)
	if !ok {
		return
	}

	result, err := h.ledger.Transfer(c.Request.Context(), ports.TransferRequest{
		Caller:         sender,
		To:             to,
		Amount:         value,
		IdempotencyKey: c.GetHeader(HeaderIdempotencyKey),
		ClientIP:       c.ClientIP(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransferResponse(result))
}

// TransferFrom handles POST /api/v1/transfers/from.
func (h *TokenHandler) TransferFrom(c *gin.Context) {
	spender, ok := caller(c)
	if !ok {
		return
	}
	var req dto.TransferFromRequest
	if !bind(c, &req) {
		return
	}
	from, ok := address(c, req.From)
	if !ok {
		return
	}
	to, ok := address(c, req.To)
	if !ok {
		return
	}
	value, ok := baseUnits(c, req.Amount)
	if !ok {
		return
	}

	result, err := h.ledger.TransferFrom(c.Request.Context(), ports.TransferRequest{
		Caller:         spender,
		From:           from,
		To:             to,
		Amount:         value,
		IdempotencyKey: c.GetHeader(HeaderIdempotencyKey),
		ClientIP:       c.ClientIP(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransferResponse(result))
}

// Approve handles POST /api/v1/approvals.
func (h *TokenHandler) Approve(c *gin.Context) {
	owner, ok := caller(c)
	if !ok {
		return
	}
	var req dto.ApproveRequest
	if !bind(c, &req) {
		return
	}
	spender, ok := address(c, req.Spender)
	if !ok {
		return
	}
	value, ok := baseUnits(c, req.Amount)
	if !ok {
		return
	}

	if err := h.ledger.Approve(c.Request.Context(), owner, spender, value); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AllowanceResponse{
		Owner:   owner.Hex(),
		Spender: spender.Hex(),
		Amount:  value.Dec(),
	})
}

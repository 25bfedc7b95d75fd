package handler

import (
	"create2earn/internal/adapter/http/dto"
	"create2earn/internal/core/ports"
	"create2earn/pkg/response"

	"github.com/gin-gonic/gin"
)

// TaxHandler serves the fee-exclusion set and the tax registry.
type TaxHandler struct {
	taxes ports.TaxService
}

// NewTaxHandler creates a new TaxHandler.
func NewTaxHandler(taxes ports.TaxService) *TaxHandler {
	return &TaxHandler{taxes: taxes}
}

// ---- Fee exclusion ----

// Exclude handles POST /api/v1/exclusions.
func (h *TaxHandler) Exclude(c *gin.Context) {
	sender, ok := caller(c)
	if !ok {
		return
	}
	var req dto.ExclusionRequest
	if !bind(c, &req) {
		return
	}
	account, ok := address(c, req.Address)
	if !ok {
		return
	}

	if err := h.taxes.ExcludeFromFee(c.Request.Context(), sender, account); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ExclusionResponse{Address: account.Hex(), Excluded: true})
}

// Include handles DELETE /api/v1/exclusions/:address.
func (h *TaxHandler) Include(c *gin.Context) {
	sender, ok := caller(c)
	if !ok {
		return
	}
	account, ok := address(c, c.Param("address"))
	if !ok {
		return
	}

	if err := h.taxes.IncludeInFee(c.Request.Context(), sender, account); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ExclusionResponse{Address: account.Hex(), Excluded: false})
}

// Excluded handles GET /api/v1/exclusions/:address.
func (h *TaxHandler) Excluded(c *gin.Context) {
	account, ok := address(c, c.Param("address"))
	if !ok {
		return
	}

	excluded, err := h.taxes.ExcludedFromFee(c.Request.Context(), account)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ExclusionResponse{Address: account.Hex(), Excluded: excluded})
}

// ---- Tax registry ----

// List handles GET /api/v1/taxes.
func (h *TaxHandler) List(c *gin.Context) {
	entries, err := h.taxes.Taxes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.TaxEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toTaxEntryResponse(e))
	}
	response.OK(c, out)
}

// Last handles GET /api/v1/taxes/last.
func (h *TaxHandler) Last(c *gin.Context) {
	last, err := h.taxes.LastTaxIdentifier(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.LastTaxResponse{
		Identifier: last.Identifier,
		Count:      last.Count,
		Empty:      last.Empty,
	})
}

// Get handles GET /api/v1/taxes/:id.
func (h *TaxHandler) Get(c *gin.Context) {
	id, ok := taxIdentifier(c)
	if !ok {
		return
	}

	entry, err := h.taxes.Tax(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toTaxEntryResponse(entry))
}

// Add handles POST /api/v1/taxes.
func (h *TaxHandler) Add(c *gin.Context) {
	sender, ok := caller(c)
	if !ok {
		return
	}
	var req dto.AddTaxRequest
	if !bind(c, &req) {
		return
	}
	recipient, ok := address(c, req.Recipient)
	if !ok {
		return
	}

	entry, err := h.taxes.AddTaxRecipient(c.Request.Context(), sender, *req.Percentage, recipient)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toTaxEntryResponse(entry))
}

// Remove handles DELETE /api/v1/taxes/:id.
func (h *TaxHandler) Remove(c *gin.Context) {
	sender, ok := caller(c)
	if !ok {
		return
	}
	id, ok := taxIdentifier(c)
	if !ok {
		return
	}
	var req dto.RemoveTaxRequest
	if !bind(c, &req) {
		return
	}
	recipient, ok := address(c, req.Recipient)
	if !ok {
		return
	}

	if err := h.taxes.RemoveTaxRecipient(c.Request.Context(), sender, id, recipient); err != nil {
		response.Error(c, err)
		return
	}

	last, err := h.taxes.LastTaxIdentifier(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.LastTaxResponse{
		Identifier: last.Identifier,
		Count:      last.Count,
		Empty:      last.Empty,
	})
}

// SetValue handles PUT /api/v1/taxes/:id/percentage.
func (h *TaxHandler) SetValue(c *gin.Context) {
	sender, ok := caller(c)
	if !ok {
		return
	}
	id, ok := taxIdentifier(c)
	if !ok {
		return
	}
	var req dto.SetTaxValueRequest
	if !bind(c, &req) {
		return
	}
	recipient, ok := address(c, req.Recipient)
	if !ok {
		return
	}

	entry, err := h.taxes.SetNewTaxValue(c.Request.Context(), sender, id, recipient, *req.Percentage)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toTaxEntryResponse(entry))
}

// SetRecipient handles PUT /api/v1/taxes/:id/recipient.
func (h *TaxHandler) SetRecipient(c *gin.Context) {
	sender, ok := caller(c)
	if !ok {
		return
	}
	id, ok := taxIdentifier(c)
	if !ok {
		return
	}
	var req dto.SetTaxRecipientRequest
	if !bind(c, &req) {
		return
	}
	oldRecipient, ok := address(c, req.OldRecipient)
	if !ok {
		return
	}
	newRecipient, ok := address(c, req.NewRecipient)
	if !ok {
		return
	}

	entry, err := h.taxes.SetNewRecipient(c.Request.Context(), sender, id, oldRecipient, newRecipient)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toTaxEntryResponse(entry))
}

package handler

import (
	"strconv"

	"create2earn/internal/adapter/http/dto"
	"create2earn/internal/core/domain"
	"create2earn/internal/core/ports"
	"create2earn/pkg/apperror"
	"create2earn/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HistoryHandler serves transfer history and tax statistics.
type HistoryHandler struct {
	history ports.HistoryService
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(history ports.HistoryService) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// ListTransfers handles GET /api/v1/transfers.
func (h *HistoryHandler) ListTransfers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	filter := domain.TransferFilter{Page: page, PageSize: pageSize}
	if a := c.Query("address"); a != "" {
		addr, ok := address(c, a)
		if !ok {
			return
		}
		filter.Address = &addr
	}

	transfers, total, err := h.history.ListTransfers(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransferResponse, 0, len(transfers))
	for i := range transfers {
		items = append(items, toTransferResponse(&transfers[i]))
	}

	response.List(c, items, response.PageMeta{
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
	})
}

// GetTransfer handles GET /api/v1/transfers/:id.
func (h *HistoryHandler) GetTransfer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrNotFound("transfer"))
		return
	}

	t, err := h.history.GetTransfer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toTransferResponse(t))
}

// Stats handles GET /api/v1/taxes/stats.
func (h *HistoryHandler) Stats(c *gin.Context) {
	stats, err := h.history.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TaxStatsResponse{
		TransferCount:  stats.TransferCount,
		TaxedCount:     stats.TaxedCount,
		TotalVolume:    dec(stats.TotalVolume),
		TotalCollected: dec(stats.TotalCollected),
	})
}

package service

import (
	"context"

	"create2earn/internal/core/domain"
	"create2earn/internal/core/ports"
	"create2earn/pkg/apperror"

	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// historyService implements ports.HistoryService.
type historyService struct {
	transferRepo ports.TransferRepository
}

// NewHistoryService creates a new history service.
func NewHistoryService(transferRepo ports.TransferRepository) ports.HistoryService {
	return &historyService{transferRepo: transferRepo}
}

// ListTransfers returns a page of transfers, newest first.
func (s *historyService) ListTransfers(ctx context.Context, filter domain.TransferFilter) ([]domain.Transfer, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}

	transfers, total, err := s.transferRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, apperror.InternalError(err)
	}
	return transfers, total, nil
}

// GetTransfer returns one transfer by id.
func (s *historyService) GetTransfer(ctx context.Context, id uuid.UUID) (*domain.Transfer, error) {
	t, err := s.transferRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if t == nil {
		return nil, apperror.ErrNotFound("transfer")
	}
	return t, nil
}

// Stats aggregates the transfer history.
func (s *historyService) Stats(ctx context.Context) (*domain.TaxStats, error) {
	stats, err := s.transferRepo.Stats(ctx)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return stats, nil
}

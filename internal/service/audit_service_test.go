package service

import (
	"context"
	"testing"
	"time"

	"create2earn/internal/core/domain"
	"create2earn/internal/core/ports/mocks"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func TestAuditService_Log_PersistsToRepo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuditRepository(ctrl)
	svc := NewAuditService(mockRepo, newTestLogger())

	done := make(chan struct{})
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, log *domain.AuditLog) error {
			if log.Action != domain.AuditActionAddTaxRecipient {
				t.Errorf("expected ADD_TAX_RECIPIENT, got %s", log.Action)
			}
			close(done)
			return nil
		},
	)

	actor := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	svc.Log(context.Background(), &domain.AuditLog{
		ID:           uuid.New(),
		Actor:        &actor,
		Action:       domain.AuditActionAddTaxRecipient,
		ResourceType: "tax_entry",
		ResourceID:   "0",
		IPAddress:    "127.0.0.1",
		CreatedAt:    time.Now(),
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("audit log not persisted in time")
	}
}

func TestAuditService_Log_NilRepo(t *testing.T) {
	svc := NewAuditService(nil, newTestLogger())

	// Should not panic
	svc.Log(context.Background(), &domain.AuditLog{
		ID:           uuid.New(),
		Action:       domain.AuditActionLogin,
		ResourceType: "session",
		IPAddress:    "127.0.0.1",
		CreatedAt:    time.Now(),
	})

	time.Sleep(50 * time.Millisecond) // let goroutine run
}

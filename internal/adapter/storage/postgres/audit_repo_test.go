package postgres

import (
	"context"
	"testing"
	"time"

	"create2earn/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	actor := "0x5b38da6a701c568545dcfcb03fcb875f56beddc4"
	details := `{"status":201}`
	log := &domain.AuditLog{
		ID:           uuid.New(),
		Actor:        &alice,
		Action:       domain.AuditActionAddTaxRecipient,
		ResourceType: "tax",
		Details:      details,
		IPAddress:    "10.0.0.1",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	mock.ExpectExec("INSERT INTO audit_logs").
		WithArgs(log.ID, &actor, "ADD_TAX_RECIPIENT", "tax", (*string)(nil), &details, "10.0.0.1", log.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = NewAuditRepo(mock).Create(context.Background(), log)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeliveryRepo_CreateAndUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDeliveryRepo(mock)
	status := 200
	d := &domain.EventDelivery{
		EventID:   uuid.New(),
		EventType: domain.EventTransfer,
		URL:       "http://hooks.local/cte",
		Status:    domain.DeliveryStatusPending,
		UpdatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	mock.ExpectExec("INSERT INTO event_deliveries").
		WithArgs(d.EventID, "TRANSFER", d.URL, (*int)(nil), 0, "PENDING", (*string)(nil), d.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, repo.Create(context.Background(), d))

	d.Attempt = 1
	d.HTTPStatus = &status
	d.Status = domain.DeliveryStatusDelivered
	mock.ExpectExec("UPDATE event_deliveries").
		WithArgs(&status, 1, "DELIVERED", (*string)(nil), d.UpdatedAt, d.EventID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.Update(context.Background(), d)
	assert.ErrorContains(t, err, "event delivery not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthCheck(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM schema_migrations").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	h := NewHealthCheck(mock)
	assert.Equal(t, "postgresql", h.Name())
	assert.NoError(t, h.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_Begin(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	tx, err := NewTransactor(mock).Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, tx.Rollback(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

package postgres

import (
	"context"
	"testing"
	"time"

	"create2earn/internal/core/domain"

	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transferCols() []string {
	return []string{"id", "kind", "from_address", "to_address", "spender",
		"amount", "net_amount", "tax_total", "taxed", "idempotency_key", "created_at"}
}

func taxLineCols() []string {
	return []string{"transfer_id", "identifier", "recipient", "percentage", "amount"}
}

func newTestTransfer() *domain.Transfer {
	return &domain.Transfer{
		ID:        uuid.New(),
		Kind:      domain.TransferKindTransfer,
		From:      alice,
		To:        bob,
		Amount:    uint256.NewInt(10000),
		NetAmount: uint256.NewInt(9600),
		TaxTotal:  uint256.NewInt(400),
		Taxed:     true,
		TaxLines: []domain.TaxLine{
			{Identifier: 0, Recipient: carol, Percentage: 1, Amount: uint256.NewInt(100)},
			{Identifier: 1, Recipient: carol, Percentage: 3, Amount: uint256.NewInt(300)},
		},
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestTransferRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransferRepo(mock)
	tr := newTestTransfer()
	carolHex := "0x4b20993bc481177ec7e8f571cecae8a9e22c02db"

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO transfers").
		WithArgs(tr.ID, "TRANSFER", "0x5b38da6a701c568545dcfcb03fcb875f56beddc4",
			"0xab8483f64d9c6d1ecf9b849ae677dd3315835cb2", (*string)(nil),
			"10000", "9600", "400", true, (*string)(nil), tr.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO transfer_tax_lines").
		WithArgs(tr.ID, int32(0), carolHex, int16(1), "100").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO transfer_tax_lines").
		WithArgs(tr.ID, int32(1), carolHex, int16(3), "300").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	require.NoError(t, repo.Create(context.Background(), tx, tr))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransferRepo(mock)
	tr := newTestTransfer()
	spender := "0x4b20993bc481177ec7e8f571cecae8a9e22c02db"
	key := "k1"

	mock.ExpectQuery("SELECT .+ FROM transfers t WHERE t.id").
		WithArgs(tr.ID).
		WillReturnRows(pgxmock.NewRows(transferCols()).AddRow(
			tr.ID, "TRANSFER_FROM", "0x5b38da6a701c568545dcfcb03fcb875f56beddc4",
			"0xab8483f64d9c6d1ecf9b849ae677dd3315835cb2", &spender,
			"10000", "9600", "400", true, &key, tr.CreatedAt))
	mock.ExpectQuery("SELECT .+ FROM transfer_tax_lines").
		WithArgs([]string{tr.ID.String()}).
		WillReturnRows(pgxmock.NewRows(taxLineCols()).
			AddRow(tr.ID, int32(0), spender, int16(1), "100").
			AddRow(tr.ID, int32(1), spender, int16(3), "300"))

	got, err := repo.GetByID(context.Background(), tr.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.TransferKindTransferFrom, got.Kind)
	require.NotNil(t, got.Spender)
	assert.Equal(t, carol, *got.Spender)
	assert.Equal(t, "k1", *got.IdempotencyKey)
	assert.Equal(t, uint64(9600), got.NetAmount.Uint64())
	require.Len(t, got.TaxLines, 2)
	assert.Equal(t, uint64(300), got.TaxLines[1].Amount.Uint64())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.New()
	mock.ExpectQuery("SELECT .+ FROM transfers").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(transferCols()))

	got, err := NewTransferRepo(mock).GetByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferRepo_List_ByAddress(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransferRepo(mock)
	tr := newTestTransfer()
	carolHex := "0x4b20993bc481177ec7e8f571cecae8a9e22c02db"

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM transfers t WHERE").
		WithArgs(carolHex).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery("SELECT .+ FROM transfers t WHERE .+ LIMIT").
		WithArgs(carolHex, 20, 0).
		WillReturnRows(pgxmock.NewRows(transferCols()).AddRow(
			tr.ID, "TRANSFER", "0x5b38da6a701c568545dcfcb03fcb875f56beddc4",
			"0xab8483f64d9c6d1ecf9b849ae677dd3315835cb2", (*string)(nil),
			"10000", "9600", "400", true, (*string)(nil), tr.CreatedAt))
	mock.ExpectQuery("SELECT .+ FROM transfer_tax_lines").
		WithArgs([]string{tr.ID.String()}).
		WillReturnRows(pgxmock.NewRows(taxLineCols()).
			AddRow(tr.ID, int32(0), carolHex, int16(1), "100"))

	list, total, err := repo.List(context.Background(), domain.TransferFilter{Address: &carol, Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].Spender)
	require.Len(t, list[0].TaxLines, 1)
	assert.True(t, list[0].Involves(carol))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferRepo_List_EmptyPage(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))
	mock.ExpectQuery("SELECT .+ FROM transfers t .+ LIMIT").
		WithArgs(10, 10).
		WillReturnRows(pgxmock.NewRows(transferCols()))

	list, total, err := NewTransferRepo(mock).List(context.Background(), domain.TransferFilter{Page: 2, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferRepo_Stats(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT .+ FROM transfers WHERE kind <>").
		WithArgs("MINT").
		WillReturnRows(pgxmock.NewRows([]string{"transfers", "taxed", "volume", "collected"}).
			AddRow(int64(4), int64(3), "40000", "3000"))

	stats, err := NewTransferRepo(mock).Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TransferCount)
	assert.Equal(t, int64(3), stats.TaxedCount)
	assert.Equal(t, uint64(40000), stats.TotalVolume.Uint64())
	assert.Equal(t, uint64(3000), stats.TotalCollected.Uint64())
	assert.NoError(t, mock.ExpectationsWereMet())
}

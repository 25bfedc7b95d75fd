package memory

import (
	"context"
	"testing"
	"time"

	"create2earn/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = common.HexToAddress("0x5B38Da6a701c568545dCfcB03FcB875f56beddC4")
	bob   = common.HexToAddress("0xAb8483F64d9C6d1EcF9b849Ae677dD3315835cb2")
	carol = common.HexToAddress("0x4B20993Bc481177ec7E8f571ceCaE8A9e22C02db")
)

func TestStore_CommitPublishesWorkingState(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	balances := NewBalanceRepo(store)

	tx, err := store.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, balances.Set(ctx, tx, alice, uint256.NewInt(500)))

	// Uncommitted writes are invisible outside the transaction.
	bal, err := balances.Get(ctx, alice)
	require.NoError(t, err)
	assert.True(t, bal.IsZero())

	locked, err := balances.GetForUpdate(ctx, tx, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(500), locked[alice].Uint64())

	require.NoError(t, tx.Commit(ctx))
	bal, err = balances.Get(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(500), bal.Uint64())
}

func TestStore_RollbackDiscardsEverything(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	balances := NewBalanceRepo(store)
	transfers := NewTransferRepo(store)
	taxes := NewTaxRepo(store)

	tx, err := store.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, balances.Set(ctx, tx, alice, uint256.NewInt(1)))
	require.NoError(t, taxes.Insert(ctx, tx, domain.TaxEntry{Identifier: 0, Percentage: 3, Recipient: bob}))
	require.NoError(t, transfers.Create(ctx, tx, &domain.Transfer{ID: uuid.New(), Kind: domain.TransferKindTransfer, Amount: uint256.NewInt(1)}))
	require.NoError(t, tx.Rollback(ctx))

	bal, _ := balances.Get(ctx, alice)
	assert.True(t, bal.IsZero())
	entries, _ := taxes.List(ctx)
	assert.Empty(t, entries)
	_, total, _ := transfers.List(ctx, domain.TransferFilter{Page: 1, PageSize: 10})
	assert.Zero(t, total)

	// Rollback after the end of the transaction is a no-op.
	assert.ErrorIs(t, tx.Rollback(ctx), pgx.ErrTxClosed)
	assert.ErrorIs(t, tx.Commit(ctx), pgx.ErrTxClosed)
}

func TestStore_ClosedOrForeignTxRejected(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	other := NewStore()
	balances := NewBalanceRepo(store)

	tx, err := other.Begin(ctx)
	require.NoError(t, err)
	assert.ErrorIs(t, balances.Set(ctx, tx, alice, uint256.NewInt(1)), ErrForeignTx)
	require.NoError(t, tx.Commit(ctx))

	tx, err = store.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))
	assert.ErrorIs(t, balances.Set(ctx, tx, alice, uint256.NewInt(1)), ErrForeignTx)
}

func TestStore_BeginWaitsForOpenTransaction(t *testing.T) {
	store := NewStore()

	tx, err := store.Begin(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = store.Begin(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, tx.Rollback(context.Background()))
	tx, err = store.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, tx.Commit(context.Background()))
}

func TestTaxRepo_RenumberKeepsEntry(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	taxes := NewTaxRepo(store)

	tx, _ := store.Begin(ctx)
	require.NoError(t, taxes.Insert(ctx, tx, domain.TaxEntry{Identifier: 0, Percentage: 3, Recipient: alice}))
	require.NoError(t, taxes.Insert(ctx, tx, domain.TaxEntry{Identifier: 1, Percentage: 2, Recipient: bob}))
	require.NoError(t, taxes.Insert(ctx, tx, domain.TaxEntry{Identifier: 2, Percentage: 1, Recipient: carol}))
	assert.Error(t, taxes.Insert(ctx, tx, domain.TaxEntry{Identifier: 2, Percentage: 1, Recipient: carol}))

	require.NoError(t, taxes.Delete(ctx, tx, 0))
	assert.Error(t, taxes.Renumber(ctx, tx, 2, 1), "target identifier is taken")
	require.NoError(t, taxes.Renumber(ctx, tx, 2, 0))
	assert.Error(t, taxes.Delete(ctx, tx, 2))
	require.NoError(t, tx.Commit(ctx))

	entries, err := taxes.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.TaxEntry{
		{Identifier: 0, Percentage: 1, Recipient: carol},
		{Identifier: 1, Percentage: 2, Recipient: bob},
	}, entries)
}

func TestRoleAndExclusionRepos(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	roles := NewRoleRepo(store)
	exclusions := NewExclusionRepo(store)

	tx, _ := store.Begin(ctx)
	granted, err := roles.Grant(ctx, tx, &domain.RoleMember{Role: domain.AdminRole, Account: alice, GrantedBy: alice})
	require.NoError(t, err)
	assert.True(t, granted)
	granted, _ = roles.Grant(ctx, tx, &domain.RoleMember{Role: domain.AdminRole, Account: alice, GrantedBy: alice})
	assert.False(t, granted)
	_, _ = roles.Grant(ctx, tx, &domain.RoleMember{Role: domain.AdminRole, Account: bob, GrantedBy: alice})

	added, _ := exclusions.Add(ctx, tx, carol, alice)
	assert.True(t, added)
	added, _ = exclusions.Add(ctx, tx, carol, alice)
	assert.False(t, added)
	exempt, _ := exclusions.AnyExcluded(ctx, tx, alice, carol)
	assert.True(t, exempt)
	require.NoError(t, tx.Commit(ctx))

	members, _ := roles.Members(ctx, domain.AdminRole)
	assert.Equal(t, []common.Address{alice, bob}, members)

	tx, _ = store.Begin(ctx)
	revoked, _ := roles.Revoke(ctx, tx, domain.AdminRole, alice)
	assert.True(t, revoked)
	removed, _ := exclusions.Remove(ctx, tx, carol)
	assert.True(t, removed)
	require.NoError(t, tx.Commit(ctx))

	has, _ := roles.HasRole(ctx, domain.AdminRole, alice)
	assert.False(t, has)
	members, _ = roles.Members(ctx, domain.AdminRole)
	assert.Equal(t, []common.Address{bob}, members)
	excluded, _ := exclusions.IsExcluded(ctx, carol)
	assert.False(t, excluded)
}

func TestIdempotencyRepo_DuplicateKey(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewIdempotencyRepo(store)
	log := &domain.IdempotencyLog{Key: "k", TransferID: uuid.New(), ResponseJSON: []byte(`{}`)}

	tx, _ := store.Begin(ctx)
	require.NoError(t, repo.Create(ctx, tx, log))
	assert.Error(t, repo.Create(ctx, tx, log))
	got, _ := repo.Get(ctx, "k")
	assert.Nil(t, got, "staged logs are invisible until commit")
	require.NoError(t, tx.Commit(ctx))

	got, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, log.TransferID, got.TransferID)

	tx, _ = store.Begin(ctx)
	assert.Error(t, repo.Create(ctx, tx, log))
	require.NoError(t, tx.Rollback(ctx))
}

func TestDeliveryAndAuditRepos(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	deliveries := NewDeliveryRepo(store)
	audit := NewAuditRepo(store)

	d := &domain.EventDelivery{EventID: uuid.New(), EventType: domain.EventTransfer, Status: domain.DeliveryStatusPending}
	assert.Error(t, deliveries.Update(ctx, d))
	require.NoError(t, deliveries.Create(ctx, d))
	d.Status = domain.DeliveryStatusDelivered
	require.NoError(t, deliveries.Update(ctx, d))

	got, ok := deliveries.Get(d.EventID)
	require.True(t, ok)
	assert.Equal(t, domain.DeliveryStatusDelivered, got.Status)

	require.NoError(t, audit.Create(ctx, &domain.AuditLog{ID: uuid.New(), Action: domain.AuditActionLogin}))
	assert.Len(t, audit.Entries(), 1)

	h := NewHealthCheck()
	assert.Equal(t, "memory", h.Name())
	assert.NoError(t, h.Ping(ctx))
}

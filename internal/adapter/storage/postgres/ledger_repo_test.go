package postgres

import (
	"context"
	"testing"
	"time"

	"create2earn/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = common.HexToAddress("0x5B38Da6a701c568545dCfcB03FcB875f56beddC4")
	bob   = common.HexToAddress("0xAb8483F64d9C6d1EcF9b849Ae677dD3315835cb2")
	carol = common.HexToAddress("0x4B20993Bc481177ec7E8f571ceCaE8A9e22C02db")
)

func TestTokenRepo_CreateAndGet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTokenRepo(mock)
	supply, _ := uint256.FromDecimal("1000000000000000000000000000")
	tok := &domain.Token{
		Name:        "Create2Earn",
		Symbol:      "CTE",
		Decimals:    18,
		TotalSupply: supply,
		Deployer:    alice,
		DeployedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO token").
		WithArgs("Create2Earn", "CTE", int16(18), "1000000000000000000000000000",
			"0x5b38da6a701c568545dcfcb03fcb875f56beddc4", tok.DeployedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), tx, tok))

	mock.ExpectQuery("SELECT .+ FROM token WHERE id = 1").
		WillReturnRows(pgxmock.NewRows([]string{"name", "symbol", "decimals", "total_supply", "deployer", "deployed_at"}).
			AddRow("Create2Earn", "CTE", int16(18), "1000000000000000000000000000",
				"0x5b38da6a701c568545dcfcb03fcb875f56beddc4", tok.DeployedAt))

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint8(18), got.Decimals)
	assert.Equal(t, alice, got.Deployer)
	assert.True(t, supply.Eq(got.TotalSupply))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepo_Get_NotDeployed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT .+ FROM token").
		WillReturnRows(pgxmock.NewRows([]string{"name", "symbol", "decimals", "total_supply", "deployer", "deployed_at"}))

	got, err := NewTokenRepo(mock).Get(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)

	mock.ExpectQuery("SELECT balance::text FROM balances WHERE account").
		WithArgs("0x5b38da6a701c568545dcfcb03fcb875f56beddc4").
		WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow("9000"))
	mock.ExpectQuery("SELECT balance::text FROM balances WHERE account").
		WithArgs("0xab8483f64d9c6d1ecf9b849ae677dd3315835cb2").
		WillReturnRows(pgxmock.NewRows([]string{"balance"}))

	bal, err := repo.Get(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(9000), bal.Uint64())

	bal, err = repo.Get(context.Background(), bob)
	require.NoError(t, err)
	assert.True(t, bal.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepo_GetForUpdate_LocksInAddressOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)
	sorted := []string{
		"0x4b20993bc481177ec7e8f571cecae8a9e22c02db",
		"0x5b38da6a701c568545dcfcb03fcb875f56beddc4",
		"0xab8483f64d9c6d1ecf9b849ae677dd3315835cb2",
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO balances .+ unnest").
		WithArgs(sorted).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("SELECT account, balance::text FROM balances .+ FOR UPDATE").
		WithArgs(sorted).
		WillReturnRows(pgxmock.NewRows([]string{"account", "balance"}).
			AddRow(sorted[0], "0").
			AddRow(sorted[1], "10000").
			AddRow(sorted[2], "5"))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	got, err := repo.GetForUpdate(context.Background(), tx, bob, alice, carol)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, uint64(10000), got[alice].Uint64())
	assert.Equal(t, uint64(5), got[bob].Uint64())
	assert.True(t, got[carol].IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepo_Set(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO balances .+ ON CONFLICT").
		WithArgs("0x5b38da6a701c568545dcfcb03fcb875f56beddc4", "115792089237316195423570985008687907853269984665640564039457584007913129639935").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = NewBalanceRepo(mock).Set(context.Background(), tx, alice, new(uint256.Int).SetAllOne())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAllowanceRepo(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAllowanceRepo(mock)
	owner := "0x5b38da6a701c568545dcfcb03fcb875f56beddc4"
	spender := "0xab8483f64d9c6d1ecf9b849ae677dd3315835cb2"

	mock.ExpectQuery("SELECT amount::text FROM allowances").
		WithArgs(owner, spender).
		WillReturnRows(pgxmock.NewRows([]string{"amount"}))

	got, err := repo.Get(context.Background(), alice, bob)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT amount::text FROM allowances .+ FOR UPDATE").
		WithArgs(owner, spender).
		WillReturnRows(pgxmock.NewRows([]string{"amount"}).AddRow("500"))
	mock.ExpectExec("INSERT INTO allowances").
		WithArgs(owner, spender, "300").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	locked, err := repo.GetForUpdate(context.Background(), tx, alice, bob)
	require.NoError(t, err)
	assert.Equal(t, uint64(500), locked.Uint64())
	require.NoError(t, repo.Set(context.Background(), tx, alice, bob, uint256.NewInt(300)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepo(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRoleRepo(mock)
	role := domain.RoleHex(domain.TokenControlRole)
	account := "0xab8483f64d9c6d1ecf9b849ae677dd3315835cb2"

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO role_members").
		WithArgs(role, account, "0x5b38da6a701c568545dcfcb03fcb875f56beddc4").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO role_members").
		WithArgs(role, account, "0x5b38da6a701c568545dcfcb03fcb875f56beddc4").
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	mock.ExpectExec("DELETE FROM role_members").
		WithArgs(role, account).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	member := &domain.RoleMember{Role: domain.TokenControlRole, Account: bob, GrantedBy: alice}
	granted, err := repo.Grant(context.Background(), tx, member)
	require.NoError(t, err)
	assert.True(t, granted)

	granted, err = repo.Grant(context.Background(), tx, member)
	require.NoError(t, err)
	assert.False(t, granted)

	revoked, err := repo.Revoke(context.Background(), tx, domain.TokenControlRole, bob)
	require.NoError(t, err)
	assert.True(t, revoked)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(role, account).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	has, err := repo.HasRole(context.Background(), domain.TokenControlRole, bob)
	require.NoError(t, err)
	assert.False(t, has)

	mock.ExpectQuery("SELECT account FROM role_members").
		WithArgs(domain.RoleHex(domain.AdminRole)).
		WillReturnRows(pgxmock.NewRows([]string{"account"}).
			AddRow("0x5b38da6a701c568545dcfcb03fcb875f56beddc4"))
	members, err := repo.Members(context.Background(), domain.AdminRole)
	require.NoError(t, err)
	assert.Equal(t, []common.Address{alice}, members)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExclusionRepo(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewExclusionRepo(mock)
	a := "0x5b38da6a701c568545dcfcb03fcb875f56beddc4"
	b := "0xab8483f64d9c6d1ecf9b849ae677dd3315835cb2"

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO fee_exclusions").
		WithArgs(b, a).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("SELECT EXISTS.+fee_exclusions.+FOR SHARE").
		WithArgs([]string{a, b}).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec("DELETE FROM fee_exclusions").
		WithArgs(b).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	added, err := repo.Add(context.Background(), tx, bob, alice)
	require.NoError(t, err)
	assert.True(t, added)

	exempt, err := repo.AnyExcluded(context.Background(), tx, alice, bob)
	require.NoError(t, err)
	assert.True(t, exempt)

	removed, err := repo.Remove(context.Background(), tx, bob)
	require.NoError(t, err)
	assert.False(t, removed)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(a).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	excluded, err := repo.IsExcluded(context.Background(), alice)
	require.NoError(t, err)
	assert.False(t, excluded)

	assert.NoError(t, mock.ExpectationsWereMet())
}

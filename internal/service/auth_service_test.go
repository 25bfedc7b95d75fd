package service

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"strings"
	"testing"
	"time"

	"create2earn/internal/core/domain"
	"create2earn/internal/core/ports/mocks"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupAuthService(t *testing.T) (
	*AuthServiceImpl,
	*mocks.MockChallengeStore,
	*mocks.MockSessionService,
	*gomock.Controller,
) {
	ctrl := gomock.NewController(t)
	challenges := mocks.NewMockChallengeStore(ctrl)
	sessionSvc := mocks.NewMockSessionService(ctrl)

	svc := NewAuthService(challenges, sessionSvc, time.Minute, newTestLogger())
	return svc, challenges, sessionSvc, ctrl
}

// personalSign signs message the way wallets do for personal_sign (v = 27/28).
func personalSign(t *testing.T, key *ecdsa.PrivateKey, message string) []byte {
	t.Helper()
	sig, err := crypto.Sign(accounts.TextHash([]byte(message)), key)
	require.NoError(t, err)
	sig[crypto.RecoveryIDOffset] += 27
	return sig
}

func TestAuthService_Challenge_Success(t *testing.T) {
	svc, challenges, _, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	account := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	var stored string
	challenges.EXPECT().
		Issue(gomock.Any(), domain.Lower(account), gomock.Any(), time.Minute).
		DoAndReturn(func(_ context.Context, _ string, nonce string, _ time.Duration) error {
			stored = nonce
			return nil
		})

	msg, expiresAt, err := svc.Challenge(context.Background(), account)
	require.NoError(t, err)
	assert.Len(t, stored, 32)
	assert.Equal(t, ChallengeMessage(account, stored), msg)
	assert.True(t, strings.Contains(msg, account.Hex()))
	assert.True(t, expiresAt.After(time.Now()))
}

func TestAuthService_Challenge_ZeroAddress(t *testing.T) {
	svc, _, _, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	_, _, err := svc.Challenge(context.Background(), domain.ZeroAddress)
	assertAppError(t, err, "TOK_003")
}

func TestAuthService_Challenge_StoreError(t *testing.T) {
	svc, challenges, _, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	challenges.EXPECT().Issue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	_, _, err := svc.Challenge(context.Background(), common.HexToAddress("0x01"))
	assertAppError(t, err, "SYS_001")
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, challenges, sessionSvc, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	account := crypto.PubkeyToAddress(key.PublicKey)
	nonce := "4f1c2b9e0d7a6c5b4f1c2b9e0d7a6c5b"

	challenges.EXPECT().Consume(gomock.Any(), domain.Lower(account)).Return(nonce, nil)
	expiry := time.Now().Add(time.Hour)
	sessionSvc.EXPECT().Generate(account).Return("jwt-token", expiry, nil)

	sig := personalSign(t, key, ChallengeMessage(account, nonce))
	token, exp, err := svc.Login(context.Background(), account, sig)
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, expiry, exp)
}

func TestAuthService_Login_NoChallenge(t *testing.T) {
	svc, challenges, _, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	challenges.EXPECT().Consume(gomock.Any(), gomock.Any()).Return("", nil)

	_, _, err := svc.Login(context.Background(), common.HexToAddress("0x01"), make([]byte, 65))
	assertAppError(t, err, "AUTH_001")
}

func TestAuthService_Login_WrongSigner(t *testing.T) {
	svc, challenges, _, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	signer, err := crypto.GenerateKey()
	require.NoError(t, err)
	claimed := common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
	nonce := "aa"

	challenges.EXPECT().Consume(gomock.Any(), domain.Lower(claimed)).Return(nonce, nil)

	sig := personalSign(t, signer, ChallengeMessage(claimed, nonce))
	_, _, err = svc.Login(context.Background(), claimed, sig)
	assertAppError(t, err, "AUTH_002")
}

func TestAuthService_Login_MalformedSignature(t *testing.T) {
	svc, challenges, _, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	challenges.EXPECT().Consume(gomock.Any(), gomock.Any()).Return("bb", nil)

	_, _, err := svc.Login(context.Background(), common.HexToAddress("0x01"), []byte{1, 2, 3})
	assertAppError(t, err, "AUTH_002")
}

func TestRecoverSigner_AcceptsBothRecoveryForms(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	want := crypto.PubkeyToAddress(key.PublicKey)

	raw, err := crypto.Sign(accounts.TextHash([]byte("hello")), key)
	require.NoError(t, err)

	got, err := RecoverSigner("hello", raw)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	legacy := append([]byte(nil), raw...)
	legacy[crypto.RecoveryIDOffset] += 27
	got, err = RecoverSigner("hello", legacy)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

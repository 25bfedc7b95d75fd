package service

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-jwt-secret-key-for-unit-tests"

var testAccount = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")

func TestJWTSessionService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTSessionService(testJWTSecret, 24*time.Hour, "test-issuer")

	tokenStr, expiresAt, err := svc.Generate(testAccount)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenStr)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := svc.Validate(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, testAccount, claims.Account)
}

func TestJWTSessionService_ExpiredToken(t *testing.T) {
	// Token with -1 hour expiry = already expired
	svc := NewJWTSessionService(testJWTSecret, -1*time.Hour, "test-issuer")

	tokenStr, _, err := svc.Generate(testAccount)
	require.NoError(t, err)

	_, err = svc.Validate(tokenStr)
	assert.Error(t, err, "expired token should fail validation")
}

func TestJWTSessionService_InvalidSignature(t *testing.T) {
	svc1 := NewJWTSessionService("secret-1", 24*time.Hour, "issuer")
	svc2 := NewJWTSessionService("secret-2", 24*time.Hour, "issuer")

	tokenStr, _, err := svc1.Generate(testAccount)
	require.NoError(t, err)

	_, err = svc2.Validate(tokenStr)
	assert.Error(t, err, "token signed with different secret should fail")
}

func TestJWTSessionService_WrongIssuer(t *testing.T) {
	svc1 := NewJWTSessionService(testJWTSecret, 24*time.Hour, "issuer-a")
	svc2 := NewJWTSessionService(testJWTSecret, 24*time.Hour, "issuer-b")

	tokenStr, _, err := svc1.Generate(testAccount)
	require.NoError(t, err)

	_, err = svc2.Validate(tokenStr)
	assert.Error(t, err)
}

func TestJWTSessionService_InvalidTokenString(t *testing.T) {
	svc := NewJWTSessionService(testJWTSecret, 24*time.Hour, "issuer")

	_, err := svc.Validate("not.a.valid.jwt")
	assert.Error(t, err)
}

func TestJWTSessionService_EmptyToken(t *testing.T) {
	svc := NewJWTSessionService(testJWTSecret, 24*time.Hour, "issuer")

	_, err := svc.Validate("")
	assert.Error(t, err)
}

package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"create2earn/internal/core/domain"
	"create2earn/internal/core/ports"
	"create2earn/pkg/apperror"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog"
)

// DefaultChallengeTTL is how long a sign-in nonce stays valid.
const DefaultChallengeTTL = 5 * time.Minute

// AuthServiceImpl implements ports.AuthService with EIP-191 personal-sign
// challenges.
type AuthServiceImpl struct {
	challenges ports.ChallengeStore
	sessionSvc ports.SessionService
	ttl        time.Duration
	log        zerolog.Logger
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	challenges ports.ChallengeStore,
	sessionSvc ports.SessionService,
	ttl time.Duration,
	log zerolog.Logger,
) *AuthServiceImpl {
	if ttl <= 0 {
		ttl = DefaultChallengeTTL
	}
	return &AuthServiceImpl{
		challenges: challenges,
		sessionSvc: sessionSvc,
		ttl:        ttl,
		log:        log,
	}
}

// ChallengeMessage is the text an account signs to log in.
func ChallengeMessage(account common.Address, nonce string) string {
	return fmt.Sprintf("Create2Earn sign-in\nAddress: %s\nNonce: %s", account.Hex(), nonce)
}

// Challenge issues a fresh nonce for account, replacing any pending one.
func (s *AuthServiceImpl) Challenge(ctx context.Context, account common.Address) (string, time.Time, error) {
	if domain.IsZero(account) {
		return "", time.Time{}, apperror.ErrInvalidAddress()
	}

	nonce, err := generateRandomHex(16)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate nonce: %w", err))
	}

	if err := s.challenges.Issue(ctx, domain.Lower(account), nonce, s.ttl); err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("store challenge: %w", err))
	}

	return ChallengeMessage(account, nonce), time.Now().Add(s.ttl), nil
}

// Login consumes the pending challenge, recovers the signer and returns a
// session token for it. A challenge is single-use even when the signature
// is wrong.
func (s *AuthServiceImpl) Login(ctx context.Context, account common.Address, signature []byte) (string, time.Time, error) {
	nonce, err := s.challenges.Consume(ctx, domain.Lower(account))
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("consume challenge: %w", err))
	}
	if nonce == "" {
		return "", time.Time{}, apperror.ErrChallengeNotFound()
	}

	signer, err := RecoverSigner(ChallengeMessage(account, nonce), signature)
	if err != nil || signer != account {
		s.log.Warn().Str("account", account.Hex()).Msg("sign-in rejected: signature mismatch")
		return "", time.Time{}, apperror.ErrInvalidSignature()
	}

	token, expiry, err := s.sessionSvc.Generate(account)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}
	return token, expiry, nil
}

// RecoverSigner returns the address that produced an EIP-191 personal-sign
// signature over message. Both v=0/1 and v=27/28 are accepted.
func RecoverSigner(message string, signature []byte) (common.Address, error) {
	if len(signature) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("signature must be %d bytes, got %d", crypto.SignatureLength, len(signature))
	}
	sig := make([]byte, len(signature))
	copy(sig, signature)
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("recover public key: %w", err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// generateRandomHex generates a random hex string of n bytes.
func generateRandomHex(n int) (string, error) {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

package ports

import (
	"context"
	"time"

	"create2earn/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
)

// SignatureService handles HMAC-SHA256 signing and verification of webhook bodies.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
}

// SessionService handles JWT session tokens.
type SessionService interface {
	Generate(account common.Address) (string, time.Time, error)
	Validate(tokenString string) (*SessionClaims, error)
}

// SessionClaims holds the parsed JWT claims.
type SessionClaims struct {
	Account common.Address
}

// IdempotencyCache is the Redis-layer idempotency check (fast path).
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// ChallengeStore keeps the pending sign-in nonce of each account.
type ChallengeStore interface {
	// Issue stores nonce for account, replacing any pending challenge.
	Issue(ctx context.Context, account string, nonce string, ttl time.Duration) error
	// Consume returns and deletes the pending nonce, or "" if none.
	Consume(ctx context.Context, account string) (string, error)
}

// --- Service Ports (Business Logic) ---

// LedgerService is the token surface: deployment, views, transfers and allowances.
type LedgerService interface {
	Deploy(ctx context.Context, req DeployRequest) (*domain.Token, error)
	Token(ctx context.Context) (*domain.Token, error)
	BalanceOf(ctx context.Context, account common.Address) (*uint256.Int, error)
	Allowance(ctx context.Context, owner, spender common.Address) (*uint256.Int, error)
	Approve(ctx context.Context, owner, spender common.Address, amount *uint256.Int) error
	Transfer(ctx context.Context, req TransferRequest) (*domain.Transfer, error)
	TransferFrom(ctx context.Context, req TransferRequest) (*domain.Transfer, error)
}

// DeployRequest holds the constructor arguments of the token.
type DeployRequest struct {
	Name     string
	Symbol   string
	Supply   *uint256.Int // base units
	Deployer common.Address
}

// TransferRequest holds validated input for transfer and transferFrom.
// From is ignored by Transfer, where the caller is the sender.
type TransferRequest struct {
	Caller         common.Address
	From           common.Address
	To             common.Address
	Amount         *uint256.Int
	IdempotencyKey string
	ClientIP       string
}

// Authorization is the typed outcome of a role check.
type Authorization struct {
	Granted bool
	Role    common.Hash
	Account common.Address
}

// AccessControlService owns role membership and the central authorize check.
type AccessControlService interface {
	Authorize(ctx context.Context, account common.Address, role common.Hash) (Authorization, error)
	HasRole(ctx context.Context, role common.Hash, account common.Address) (bool, error)
	GrantRole(ctx context.Context, caller common.Address, role common.Hash, account common.Address) error
	RevokeRole(ctx context.Context, caller common.Address, role common.Hash, account common.Address) error
	RenounceRole(ctx context.Context, caller common.Address, role common.Hash, account common.Address) error
	Members(ctx context.Context, role common.Hash) ([]common.Address, error)
}

// LastTaxIdentifier is the answer of getLastTaxIdentifier with an explicit
// emptiness signal.
type LastTaxIdentifier struct {
	Identifier uint32
	Count      int
	Empty      bool
}

// TaxService administers the fee-exclusion set and the tax registry.
type TaxService interface {
	ExcludeFromFee(ctx context.Context, caller, account common.Address) error
	IncludeInFee(ctx context.Context, caller, account common.Address) error
	ExcludedFromFee(ctx context.Context, account common.Address) (bool, error)
	AddTaxRecipient(ctx context.Context, caller common.Address, percentage uint8, recipient common.Address) (domain.TaxEntry, error)
	RemoveTaxRecipient(ctx context.Context, caller common.Address, identifier uint32, recipient common.Address) error
	SetNewTaxValue(ctx context.Context, caller common.Address, identifier uint32, recipient common.Address, percentage uint8) (domain.TaxEntry, error)
	SetNewRecipient(ctx context.Context, caller common.Address, identifier uint32, oldRecipient, newRecipient common.Address) (domain.TaxEntry, error)
	LastTaxIdentifier(ctx context.Context) (LastTaxIdentifier, error)
	Tax(ctx context.Context, identifier uint32) (domain.TaxEntry, error)
	Taxes(ctx context.Context) ([]domain.TaxEntry, error)
}

// AuthService implements wallet sign-in.
type AuthService interface {
	// Challenge returns the message the account must sign.
	Challenge(ctx context.Context, account common.Address) (string, time.Time, error)
	// Login verifies the signed challenge and returns a session token.
	Login(ctx context.Context, account common.Address, signature []byte) (string, time.Time, error)
}

// HistoryService serves transfer history and tax statistics.
type HistoryService interface {
	ListTransfers(ctx context.Context, filter domain.TransferFilter) ([]domain.Transfer, int64, error)
	GetTransfer(ctx context.Context, id uuid.UUID) (*domain.Transfer, error)
	Stats(ctx context.Context) (*domain.TaxStats, error)
}

// AuditService records audit entries asynchronously.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// EventPublisher delivers ledger events to subscribers. Publish never blocks
// on delivery.
type EventPublisher interface {
	Publish(ctx context.Context, eventType domain.EventType, data interface{})
}

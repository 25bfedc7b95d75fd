package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// IdempotencyLog stores the result of a transfer so a retried request
// with the same key returns it instead of moving tokens twice.
type IdempotencyLog struct {
	Key          string    `json:"key"` // Format: "<lower sender>:<client key>"
	TransferID   uuid.UUID `json:"transfer_id"`
	ResponseJSON []byte    `json:"response_json"`
	CreatedAt    time.Time `json:"created_at"`
}

// BuildIdempotencyKey scopes a client-supplied key to the calling account.
func BuildIdempotencyKey(caller common.Address, clientKey string) string {
	return Lower(caller) + ":" + clientKey
}

package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionDeploy             AuditAction = "DEPLOY"
	AuditActionLogin              AuditAction = "LOGIN"
	AuditActionTransfer           AuditAction = "TRANSFER"
	AuditActionApprove            AuditAction = "APPROVE"
	AuditActionGrantRole          AuditAction = "GRANT_ROLE"
	AuditActionRevokeRole         AuditAction = "REVOKE_ROLE"
	AuditActionRenounceRole       AuditAction = "RENOUNCE_ROLE"
	AuditActionExcludeFromFee     AuditAction = "EXCLUDE_FROM_FEE"
	AuditActionIncludeInFee       AuditAction = "INCLUDE_IN_FEE"
	AuditActionAddTaxRecipient    AuditAction = "ADD_TAX_RECIPIENT"
	AuditActionRemoveTaxRecipient AuditAction = "REMOVE_TAX_RECIPIENT"
	AuditActionSetTaxValue        AuditAction = "SET_TAX_VALUE"
	AuditActionSetTaxRecipient    AuditAction = "SET_TAX_RECIPIENT"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID       `json:"id"`
	Actor        *common.Address `json:"actor,omitempty"`
	Action       AuditAction     `json:"action"`
	ResourceType string          `json:"resource_type"`
	ResourceID   string          `json:"resource_id,omitempty"`
	Details      string          `json:"details,omitempty"` // JSON string
	IPAddress    string          `json:"ip_address"`
	CreatedAt    time.Time       `json:"created_at"`
}

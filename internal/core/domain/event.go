package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a ledger event delivered to the webhook subscriber.
type EventType string

const (
	EventTransfer            EventType = "TRANSFER"
	EventApproval            EventType = "APPROVAL"
	EventTaxRecipientAdded   EventType = "TAX_RECIPIENT_ADDED"
	EventTaxRecipientRemoved EventType = "TAX_RECIPIENT_REMOVED"
	EventTaxValueChanged     EventType = "TAX_VALUE_CHANGED"
	EventTaxRecipientChanged EventType = "TAX_RECIPIENT_CHANGED"
	EventFeeExclusionChanged EventType = "FEE_EXCLUSION_CHANGED"
	EventRoleGranted         EventType = "ROLE_GRANTED"
	EventRoleRevoked         EventType = "ROLE_REVOKED"
)

// Event is a ledger event. Data is already JSON-encodable.
type Event struct {
	ID         uuid.UUID   `json:"id"`
	Type       EventType   `json:"type"`
	Data       interface{} `json:"data"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// DeliveryStatus is the state of one webhook delivery.
type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "PENDING"
	DeliveryStatusDelivered DeliveryStatus = "DELIVERED"
	DeliveryStatusFailed    DeliveryStatus = "FAILED"
)

// EventDelivery records the outcome of delivering an event.
type EventDelivery struct {
	EventID    uuid.UUID      `json:"event_id"`
	EventType  EventType      `json:"event_type"`
	URL        string         `json:"url"`
	HTTPStatus *int           `json:"http_status"`
	Attempt    int            `json:"attempt"`
	Status     DeliveryStatus `json:"status"`
	LastError  *string        `json:"last_error"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

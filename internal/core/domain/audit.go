package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited operator action.
type AuditAction string

const (
	AuditActionRefund         AuditAction = "REFUND"
	AuditActionReturn         AuditAction = "RETURN"
	AuditActionCapture        AuditAction = "CAPTURE"
	AuditActionCancel         AuditAction = "CANCEL"
	AuditActionCODAttempt     AuditAction = "COD_ATTEMPT"
	AuditActionCODCollect     AuditAction = "COD_COLLECT"
	AuditActionCODReturn      AuditAction = "COD_RETURN"
	AuditActionUpdateSettings AuditAction = "UPDATE_GATEWAY_SETTINGS"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	ActorID      *string     `json:"actor_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}

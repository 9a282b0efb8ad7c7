package models

import (
	"time"

	"gorm.io/datatypes"
)

type EmailDeliveryLogStatus string

const (
	EmailDeliveryLogStatusReceived   EmailDeliveryLogStatus = "received"
	EmailDeliveryLogStatusSent       EmailDeliveryLogStatus = "sent"
	EmailDeliveryLogStatusSendFailed EmailDeliveryLogStatus = "send_failed"
)

// EmailDeliveryLog records each outbound notification attempt. Write-only:
// the service never queries it back.
type EmailDeliveryLog struct {
	ID            string                 `gorm:"column:id;type:uuid;primary_key" json:"id"`
	TraceID       string                 `gorm:"column:trace_id;type:varchar(128)" json:"trace_id"`
	TransactionID string                 `gorm:"column:transaction_id;type:varchar(128);not null" json:"transaction_id"`
	Recipient     string                 `gorm:"column:recipient;type:varchar(255);not null" json:"recipient"`
	Message       datatypes.JSON         `gorm:"column:message;type:jsonb" json:"message"`
	Result        *datatypes.JSON        `gorm:"column:result;type:jsonb" json:"result"`
	Status        EmailDeliveryLogStatus `gorm:"column:status;type:varchar(64);not null" json:"status"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

func (EmailDeliveryLog) TableName() string { return "email_delivery_log" }

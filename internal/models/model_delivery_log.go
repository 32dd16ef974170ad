package models

import (
	"time"

	"gorm.io/datatypes"
)

type DeliveryKind string

const (
	DeliveryKindReport         DeliveryKind = "report"
	DeliveryKindReferrerNotice DeliveryKind = "referrer_notice"
)

type DeliveryLogStatus string

const (
	DeliveryLogStatusSent       DeliveryLogStatus = "sent"
	DeliveryLogStatusSendFailed DeliveryLogStatus = "send_failed"
)

// DeliveryLog records each attempted email delivery from the notify queue.
// Failures are recorded here and logged; they never propagate to callers.
type DeliveryLog struct {
	ID        string            `gorm:"column:id;type:uuid;primary_key" json:"id"`
	DreamID   string            `gorm:"column:dream_id;type:uuid;not null;index" json:"dream_id"`
	Kind      DeliveryKind      `gorm:"column:kind;type:varchar(32);not null" json:"kind"`
	Recipient string            `gorm:"column:recipient;type:varchar(255);not null" json:"recipient"`
	TraceID   string            `gorm:"column:trace_id;type:varchar(128)" json:"trace_id"`
	Detail    datatypes.JSON    `gorm:"column:detail;type:jsonb" json:"detail"`
	Status    DeliveryLogStatus `gorm:"column:status;type:varchar(32);not null" json:"status"`
	Error     *string           `gorm:"column:error;type:text" json:"error"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func (DeliveryLog) TableName() string { return "delivery_log" }

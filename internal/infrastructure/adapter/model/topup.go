package model

import (
	"time"
)

// TopUp represents the database model for gateway top-ups. PaymentDetails
// stores the raw callback payload for audit.
type TopUp struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	AccountID      uint64    `gorm:"not null;index"`
	Amount         int64     `gorm:"not null"`
	Status         string    `gorm:"not null;size:20;default:pending;index"`
	TransactionID  string    `gorm:"uniqueIndex;not null;size:255"`
	PaymentDetails []byte    `gorm:"type:jsonb"`
	CreatedAt      time.Time `gorm:"not null"`
	ProcessedAt    *time.Time

	Account Account `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName specifies the table name for TopUp
func (TopUp) TableName() string {
	return "top_ups"
}

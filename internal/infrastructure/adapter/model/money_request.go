package model

import (
	"time"
)

// MoneyRequest represents the database model for manual top-up requests
type MoneyRequest struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement"`
	AccountID       uint64    `gorm:"not null;index"`
	Amount          int64     `gorm:"not null"`
	PaymentMethod   string    `gorm:"not null;size:20"`
	PaymentNumber   string    `gorm:"not null;size:50"`
	TransactionID   string    `gorm:"not null;size:255"`
	PaymentPhotoURL string    `gorm:"type:text"`
	Details         string    `gorm:"type:text"`
	Status          string    `gorm:"not null;size:20;default:pending;index"`
	ProcessedBy     *uint64
	ProcessedAt     *time.Time
	CreatedAt       time.Time `gorm:"not null"`

	Account Account `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName specifies the table name for MoneyRequest
func (MoneyRequest) TableName() string {
	return "money_requests"
}

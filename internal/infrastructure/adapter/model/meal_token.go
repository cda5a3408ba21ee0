package model

import (
	"time"
)

// MealToken represents the database model for meal tokens. The composite
// unique index enforces one token per account per day at the database level.
type MealToken struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	AccountID uint64    `gorm:"not null;uniqueIndex:idx_account_date"`
	Date      time.Time `gorm:"not null;uniqueIndex:idx_account_date;index"`
	Lunch     bool      `gorm:"not null"`
	Dinner    bool      `gorm:"not null"`
	Status    string    `gorm:"not null;size:20;default:active"`
	CreatedAt time.Time `gorm:"not null"`

	Account Account `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName specifies the table name for MealToken
func (MealToken) TableName() string {
	return "meal_tokens"
}

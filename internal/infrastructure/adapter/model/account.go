package model

import (
	"time"
)

// Account represents the database model for accounts
type Account struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	Name         string    `gorm:"not null;size:255"`
	Email        string    `gorm:"uniqueIndex;not null;size:255"`
	StudentID    string    `gorm:"uniqueIndex;not null;size:50"`
	PasswordHash string    `gorm:"not null;size:255"`
	Balance      int64     `gorm:"not null"` // Balance in whole Tk
	IsAdmin      bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}

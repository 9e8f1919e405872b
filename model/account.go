package model

import "time"

// Account represents a storefront user. Balance is stored in cents and is
// only ever mutated through the storefront ledger.
type Account struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"size:64;not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;size:128;not null" json:"email"`
	PasswordHash string    `gorm:"size:64;not null" json:"-"`
	Balance      int64     `gorm:"not null;default:0" json:"balance"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

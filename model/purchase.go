package model

import "time"

// PurchaseTransaction is an immutable record of a completed checkout.
type PurchaseTransaction struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	AccountID int64     `gorm:"index;not null" json:"account_id"`
	Total     int64     `gorm:"not null" json:"total"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// PurchaseItem records one title included in a transaction, with the
// unit price actually paid.
type PurchaseItem struct {
	ID            int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	TransactionID int64 `gorm:"uniqueIndex:idx_purchase_item;not null" json:"transaction_id"`
	TitleID       int64 `gorm:"uniqueIndex:idx_purchase_item;not null" json:"title_id"`
	Price         int64 `gorm:"not null" json:"price"`
}

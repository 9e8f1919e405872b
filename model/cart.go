package model

import "time"

// CartEntry is a pending intent to purchase. At most one row per
// (account, title); checkout deletes all of an account's rows.
type CartEntry struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	AccountID int64     `gorm:"uniqueIndex:idx_cart_account_title;not null" json:"account_id"`
	TitleID   int64     `gorm:"uniqueIndex:idx_cart_account_title;not null" json:"title_id"`
	AddedAt   time.Time `gorm:"autoCreateTime" json:"added_at"`
}

// WishlistEntry marks a title the account wants but has not bought.
type WishlistEntry struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	AccountID int64     `gorm:"uniqueIndex:idx_wishlist_account_title;not null" json:"account_id"`
	TitleID   int64     `gorm:"uniqueIndex:idx_wishlist_account_title;not null" json:"title_id"`
	AddedAt   time.Time `gorm:"autoCreateTime" json:"added_at"`
}

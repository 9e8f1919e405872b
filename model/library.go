package model

import "time"

// LibraryEntry is a permanent record of ownership. It is created by
// checkout and never deleted; PlayedMinutes only ever grows.
type LibraryEntry struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	AccountID     int64     `gorm:"uniqueIndex:idx_library_account_title;not null" json:"account_id"`
	TitleID       int64     `gorm:"uniqueIndex:idx_library_account_title;not null" json:"title_id"`
	PlayedMinutes int64     `gorm:"not null;default:0" json:"played_minutes"`
	AcquiredAt    time.Time `gorm:"autoCreateTime" json:"acquired_at"`
}

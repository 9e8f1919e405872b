package model

import "time"

// Review is a user's rating of an owned title. Text is a pointer so a
// NULL text ("never wrote one" / "cleared") stays distinct from "".
type Review struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	AccountID int64     `gorm:"uniqueIndex:idx_review_account_title;not null" json:"account_id"`
	TitleID   int64     `gorm:"uniqueIndex:idx_review_account_title;not null" json:"title_id"`
	Rating    float64   `gorm:"not null" json:"rating"`
	Text      *string   `gorm:"type:text" json:"text"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

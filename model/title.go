package model

import "time"

// Title is a purchasable catalog item. Price is in cents and is read at
// checkout time, so a price change between add-to-cart and checkout is
// honored at the new price.
type Title struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:128;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       int64     `gorm:"not null;default:0" json:"price"`
	ReleasedAt  time.Time `json:"released_at"`
	DeveloperID int64     `gorm:"index;not null" json:"developer_id"`
	PublisherID int64     `gorm:"index;not null" json:"publisher_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TitleGenre links a title to a genre.
type TitleGenre struct {
	ID      int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	TitleID int64 `gorm:"uniqueIndex:idx_title_genre;not null" json:"title_id"`
	GenreID int64 `gorm:"uniqueIndex:idx_title_genre;not null" json:"genre_id"`
}

// TitleTag links a title to a tag.
type TitleTag struct {
	ID      int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	TitleID int64 `gorm:"uniqueIndex:idx_title_tag;not null" json:"title_id"`
	TagID   int64 `gorm:"uniqueIndex:idx_title_tag;not null" json:"tag_id"`
}

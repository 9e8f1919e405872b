package model

// Developer is a studio that makes titles.
type Developer struct {
	ID      int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"size:128;not null" json:"name"`
	Country string `gorm:"size:64" json:"country"`
	Website string `gorm:"size:255" json:"website"`
}

// Publisher distributes titles.
type Publisher struct {
	ID      int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"size:128;not null" json:"name"`
	Country string `gorm:"size:64" json:"country"`
	Website string `gorm:"size:255" json:"website"`
}

// Genre is a catalog classification (RPG, strategy, ...).
type Genre struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"uniqueIndex;size:64;not null" json:"name"`
}

// Tag is a free-form catalog label (co-op, roguelike, ...).
type Tag struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"uniqueIndex;size:64;not null" json:"name"`
}

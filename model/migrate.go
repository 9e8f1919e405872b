package model

import "gorm.io/gorm"

// allModels lists every model to be auto-migrated.
var allModels = []interface{}{
	&Account{},
	&Developer{},
	&Publisher{},
	&Genre{},
	&Tag{},
	&Title{},
	&TitleGenre{},
	&TitleTag{},
	&CartEntry{},
	&WishlistEntry{},
	&LibraryEntry{},
	&PurchaseTransaction{},
	&PurchaseItem{},
	&Review{},
	&Friendship{},
	&AuditLog{},
}

// AutoMigrate creates or updates all tables in the given database.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(allModels...)
}

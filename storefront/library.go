package storefront

import (
	"context"
	"errors"

	"github.com/gamehub-br/server/model"
	"gorm.io/gorm"
)

// AddPlayedTime adds minutes to a library entry's played-time counter.
// The counter never decreases, so minutes must be positive.
func (s *Service) AddPlayedTime(ctx context.Context, accountID, titleID, minutes int64) (*model.LibraryEntry, error) {
	if minutes <= 0 {
		return nil, ErrInvalidAmount
	}

	var entry model.LibraryEntry
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("account_id = ? AND title_id = ?", accountID, titleID).
			First(&entry).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotOwned
		}
		if err != nil {
			return err
		}
		entry.PlayedMinutes += minutes
		return tx.Model(&entry).Update("played_minutes", entry.PlayedMinutes).Error
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

package storefront

import (
	"context"
	"errors"
	"fmt"

	"github.com/gamehub-br/server/model"
	"gorm.io/gorm"
)

// PostReview creates or amends a review. Reviews are a privilege of
// ownership: the account must hold a library entry for the title. On
// amendment the rating is always overwritten; the text only when one
// was supplied (nil leaves the stored text untouched, an empty string
// clears it).
func (s *Service) PostReview(ctx context.Context, titleID, accountID int64, rating float64, text *string) (*model.Review, error) {
	if rating < 0 || rating > 10 {
		return nil, ErrInvalidRating
	}

	var review model.Review
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owned model.LibraryEntry
		err := tx.Where("account_id = ? AND title_id = ?", accountID, titleID).
			First(&owned).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotOwned
		}
		if err != nil {
			return err
		}

		err = tx.Where("account_id = ? AND title_id = ?", accountID, titleID).
			First(&review).Error
		switch {
		case err == nil:
			review.Rating = rating
			if text != nil {
				review.Text = text
			}
			return tx.Save(&review).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			review = model.Review{
				AccountID: accountID,
				TitleID:   titleID,
				Rating:    rating,
				Text:      text,
			}
			return tx.Create(&review).Error
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, EventReview, accountID, fmt.Sprintf("title %d", titleID))
	return &review, nil
}

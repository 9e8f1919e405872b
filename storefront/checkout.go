package storefront

import (
	"context"
	"errors"
	"fmt"

	"github.com/gamehub-br/server/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Checkout converts an account's cart into a purchase transaction,
// library entries and a balance debit. The whole read-check-write
// sequence runs in one database transaction: any failed precondition
// or write rolls back with zero trace.
func (s *Service) Checkout(ctx context.Context, accountID int64) (*model.PurchaseTransaction, error) {
	var purchase model.PurchaseTransaction

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cart []model.CartEntry
		if err := tx.Where("account_id = ?", accountID).Find(&cart).Error; err != nil {
			return err
		}
		if len(cart) == 0 {
			return ErrEmptyCart
		}

		var acc model.Account
		if err := tx.First(&acc, accountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			}
			return err
		}

		// Validate every entry before writing anything. One conflicting
		// item rejects the whole checkout.
		var total int64
		titles := make([]model.Title, 0, len(cart))
		for _, entry := range cart {
			var title model.Title
			if err := tx.First(&title, entry.TitleID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: title %d", ErrTitleNotFound, entry.TitleID)
				}
				return err
			}
			var owned model.LibraryEntry
			err := tx.Where("account_id = ? AND title_id = ?", accountID, title.ID).
				First(&owned).Error
			if err == nil {
				return fmt.Errorf("%w: %s", ErrAlreadyOwned, title.Name)
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			total += title.Price
			titles = append(titles, title)
		}

		if total > acc.Balance {
			return ErrInsufficientBalance
		}

		purchase = model.PurchaseTransaction{AccountID: accountID, Total: total}
		if err := tx.Create(&purchase).Error; err != nil {
			return err
		}
		for _, title := range titles {
			item := model.PurchaseItem{
				TransactionID: purchase.ID,
				TitleID:       title.ID,
				Price:         title.Price,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			if err := tx.Create(&model.LibraryEntry{
				AccountID: accountID,
				TitleID:   title.ID,
			}).Error; err != nil {
				return err
			}
		}

		// Guarded debit: a racing checkout on the same account makes this
		// affect zero rows and the whole purchase rolls back.
		if err := debit(tx, accountID, total); err != nil {
			return err
		}

		return tx.Where("account_id = ?", accountID).Delete(&model.CartEntry{}).Error
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("checkout completed",
		zap.Int64("account_id", accountID),
		zap.Int64("transaction_id", purchase.ID),
		zap.Int64("total", purchase.Total))
	s.publish(ctx, EventPurchase, accountID,
		fmt.Sprintf("transaction %d", purchase.ID))
	return &purchase, nil
}

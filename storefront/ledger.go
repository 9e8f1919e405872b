package storefront

import (
	"context"
	"errors"

	"github.com/gamehub-br/server/model"
	"gorm.io/gorm"
)

// Credit adds cents to an account's balance. cents must be positive.
func (s *Service) Credit(ctx context.Context, accountID, cents int64) (*model.Account, error) {
	if cents <= 0 {
		return nil, ErrInvalidAmount
	}
	var acc model.Account
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&acc, accountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			}
			return err
		}
		if err := tx.Model(&acc).
			Update("balance", gorm.Expr("balance + ?", cents)).Error; err != nil {
			return err
		}
		return tx.First(&acc, accountID).Error
	})
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

// Debit removes cents from an account's balance, failing with
// ErrInsufficientBalance if the balance would go negative.
func (s *Service) Debit(ctx context.Context, accountID, cents int64) (*model.Account, error) {
	if cents <= 0 {
		return nil, ErrInvalidAmount
	}
	var acc model.Account
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&acc, accountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			}
			return err
		}
		if err := debit(tx, accountID, cents); err != nil {
			return err
		}
		return tx.First(&acc, accountID).Error
	})
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

// debit performs the guarded balance update inside tx. The sufficiency
// check and the subtraction are a single UPDATE, so no concurrent debit
// can slip between check and mutate.
func debit(tx *gorm.DB, accountID, cents int64) error {
	res := tx.Model(&model.Account{}).
		Where("id = ? AND balance >= ?", accountID, cents).
		Update("balance", gorm.Expr("balance - ?", cents))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientBalance
	}
	return nil
}

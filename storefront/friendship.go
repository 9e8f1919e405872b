package storefront

import (
	"context"
	"errors"
	"fmt"

	"github.com/gamehub-br/server/model"
	"gorm.io/gorm"
)

// friendshipBetween resolves the single row for an unordered account
// pair, whichever side initiated. Every friendship operation goes
// through this lookup so the symmetry rule lives in one place.
func friendshipBetween(tx *gorm.DB, a, b int64) (*model.Friendship, error) {
	var f model.Friendship
	err := tx.Where("(account_id = ? AND friend_id = ?) OR (account_id = ? AND friend_id = ?)",
		a, b, b, a).First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// AddFriend creates a pending friendship from accountID to targetID.
func (s *Service) AddFriend(ctx context.Context, accountID, targetID int64) (*model.Friendship, error) {
	if accountID == targetID {
		return nil, ErrSelfFriendship
	}

	var friendship model.Friendship
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := friendshipBetween(tx, accountID, targetID)
		if err == nil {
			return ErrDuplicateFriendship
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var count int64
		if err := tx.Model(&model.Account{}).
			Where("id IN ?", []int64{accountID, targetID}).
			Count(&count).Error; err != nil {
			return err
		}
		if count != 2 {
			return ErrAccountNotFound
		}

		friendship = model.Friendship{
			AccountID: accountID,
			FriendID:  targetID,
			Status:    model.FriendshipPending,
		}
		return tx.Create(&friendship).Error
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, EventFriendship, accountID, fmt.Sprintf("requested %d", targetID))
	return &friendship, nil
}

// AcceptFriend marks the friendship between the pair as accepted.
// Accepting an already-accepted friendship is a no-op success.
func (s *Service) AcceptFriend(ctx context.Context, accountID, otherID int64) (*model.Friendship, error) {
	f, err := s.setFriendshipStatus(ctx, accountID, otherID, model.FriendshipAccepted)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, EventFriendship, accountID, fmt.Sprintf("accepted %d", otherID))
	return f, nil
}

// RejectFriend marks the friendship between the pair as rejected.
func (s *Service) RejectFriend(ctx context.Context, accountID, otherID int64) (*model.Friendship, error) {
	return s.setFriendshipStatus(ctx, accountID, otherID, model.FriendshipRejected)
}

func (s *Service) setFriendshipStatus(ctx context.Context, accountID, otherID int64, status string) (*model.Friendship, error) {
	var friendship *model.Friendship
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		f, err := friendshipBetween(tx, accountID, otherID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFriendshipNotFound
		}
		if err != nil {
			return err
		}
		f.Status = status
		friendship = f
		return tx.Save(f).Error
	})
	if err != nil {
		return nil, err
	}
	return friendship, nil
}

// Friendships returns every relation the account appears in, on either
// side.
func (s *Service) Friendships(ctx context.Context, accountID int64) ([]model.Friendship, error) {
	var list []model.Friendship
	err := s.db.WithContext(ctx).
		Where("account_id = ? OR friend_id = ?", accountID, accountID).
		Find(&list).Error
	return list, err
}

// AcceptedFriends returns the accepted relations for the account; the
// caller resolves the other party with Friendship.OtherParty.
func (s *Service) AcceptedFriends(ctx context.Context, accountID int64) ([]model.Friendship, error) {
	var list []model.Friendship
	err := s.db.WithContext(ctx).
		Where("(account_id = ? OR friend_id = ?) AND status = ?",
			accountID, accountID, model.FriendshipAccepted).
		Find(&list).Error
	return list, err
}

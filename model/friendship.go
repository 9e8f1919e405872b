package model

import "time"

// Friendship statuses.
const (
	FriendshipPending  = "pending"
	FriendshipAccepted = "accepted"
	FriendshipRejected = "rejected"
)

// Friendship is a symmetric relation stored as a directed row: at most
// one row exists for any unordered pair, whichever side initiated.
type Friendship struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	AccountID int64     `gorm:"index:idx_friendship;not null" json:"account_id"`
	FriendID  int64     `gorm:"index:idx_friendship;not null" json:"friend_id"`
	Status    string    `gorm:"size:16;not null;default:pending" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// OtherParty returns the side of the relation that is not accountID.
func (f *Friendship) OtherParty(accountID int64) int64 {
	if f.AccountID == accountID {
		return f.FriendID
	}
	return f.AccountID
}

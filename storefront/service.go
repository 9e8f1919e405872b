// Package storefront holds the transactional business rules of the
// storefront: the balance ledger, cart checkout, the ownership-gated
// review flow, and the friendship lifecycle. Plain record CRUD lives in
// the REST handlers; everything here touches more than one record set
// and must either fully apply or leave no trace.
package storefront

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gamehub-br/server/cache"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Activity event channel and types, consumed by the SSE feed.
const EventChannel = "activity"

const (
	EventPurchase   = "purchase"
	EventReview     = "review"
	EventFriendship = "friendship"
)

// Event is one storefront activity notification.
type Event struct {
	Type      string    `json:"type"`
	AccountID int64     `json:"account_id"`
	Detail    string    `json:"detail,omitempty"`
	At        time.Time `json:"at"`
}

// Service implements the storefront core over a GORM database.
type Service struct {
	db     *gorm.DB
	events cache.PubSub
	logger *zap.Logger
}

// New creates a storefront Service. events may be nil; activity
// notifications are then skipped.
func New(db *gorm.DB, events cache.PubSub, logger *zap.Logger) *Service {
	return &Service{db: db, events: events, logger: logger}
}

// publish emits an activity event after a successful commit. Delivery is
// best-effort; a full subscriber or broken broker never fails the
// operation that triggered it.
func (s *Service) publish(ctx context.Context, evtType string, accountID int64, detail string) {
	if s.events == nil {
		return
	}
	payload, err := json.Marshal(Event{
		Type:      evtType,
		AccountID: accountID,
		Detail:    detail,
		At:        time.Now(),
	})
	if err != nil {
		return
	}
	if err := s.events.Publish(ctx, EventChannel, string(payload)); err != nil {
		s.logger.Warn("activity publish failed",
			zap.String("type", evtType), zap.Error(err))
	}
}

package rest

import (
	"context"
	"net/http"

	"github.com/gamehub-br/server/audit"
	mw "github.com/gamehub-br/server/middleware"
	"github.com/gamehub-br/server/model"
	"github.com/gamehub-br/server/storefront"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SocialHandler handles friendship REST endpoints.
type SocialHandler struct {
	db    *gorm.DB
	store *storefront.Service
	aud   *audit.Service
}

// NewSocialHandler creates a new SocialHandler.
func NewSocialHandler(db *gorm.DB, store *storefront.Service, aud *audit.Service) *SocialHandler {
	return &SocialHandler{db: db, store: store, aud: aud}
}

// List handles GET /api/accounts/:id/friendships.
func (h *SocialHandler) List(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	list, err := h.store.Friendships(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"friendships": list})
}

// ListAccepted handles GET /api/accounts/:id/friendships/accepted.
// Each row is returned with the resolved other party, whichever side
// initiated the relation.
func (h *SocialHandler) ListAccepted(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	list, err := h.store.AcceptedFriends(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	type friendInfo struct {
		model.Friendship
		FriendAccountID int64 `json:"friend_account_id"`
	}
	result := make([]friendInfo, len(list))
	for i, f := range list {
		result[i] = friendInfo{
			Friendship:      f,
			FriendAccountID: f.OtherParty(id),
		}
	}
	c.JSON(http.StatusOK, gin.H{"friends": result})
}

type addFriendRequest struct {
	TargetID int64 `json:"target_id" binding:"required"`
}

// Add handles POST /api/accounts/:id/friendships.
func (h *SocialHandler) Add(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req addFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	friendship, err := h.store.AddFriend(c.Request.Context(), id, req.TargetID)
	if err != nil {
		respondStoreErr(c, err)
		return
	}

	h.aud.Log(audit.Entry{
		TraceID:   mw.GetTraceID(c),
		AccountID: &id,
		Action:    "friend_request",
		Detail:    friendship,
		IP:        c.ClientIP(),
	})
	c.JSON(http.StatusCreated, friendship)
}

// Accept handles PATCH /api/accounts/:id/friendships/:friendId/accept.
func (h *SocialHandler) Accept(c *gin.Context) {
	h.transition(c, h.store.AcceptFriend)
}

// Reject handles PATCH /api/accounts/:id/friendships/:friendId/reject.
func (h *SocialHandler) Reject(c *gin.Context) {
	h.transition(c, h.store.RejectFriend)
}

// Delete handles DELETE /api/accounts/:id/friendships/:friendId.
func (h *SocialHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	friendID, ok := paramID(c, "friendId")
	if !ok {
		return
	}
	res := h.db.Where("(account_id = ? AND friend_id = ?) OR (account_id = ? AND friend_id = ?)",
		id, friendID, friendID, id).Delete(&model.Friendship{})
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "friendship not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "friendship deleted"})
}

func (h *SocialHandler) transition(c *gin.Context, fn func(ctx context.Context, a, b int64) (*model.Friendship, error)) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	friendID, ok := paramID(c, "friendId")
	if !ok {
		return
	}

	friendship, err := fn(c.Request.Context(), id, friendID)
	if err != nil {
		respondStoreErr(c, err)
		return
	}

	h.aud.Log(audit.Entry{
		TraceID:   mw.GetTraceID(c),
		AccountID: &id,
		Action:    "friend_" + friendship.Status,
		Detail:    friendship,
		IP:        c.ClientIP(),
	})
	c.JSON(http.StatusOK, friendship)
}

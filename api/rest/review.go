package rest

import (
	"net/http"

	"github.com/gamehub-br/server/audit"
	mw "github.com/gamehub-br/server/middleware"
	"github.com/gamehub-br/server/model"
	"github.com/gamehub-br/server/storefront"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReviewHandler handles review REST endpoints.
type ReviewHandler struct {
	db    *gorm.DB
	store *storefront.Service
	aud   *audit.Service
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(db *gorm.DB, store *storefront.Service, aud *audit.Service) *ReviewHandler {
	return &ReviewHandler{db: db, store: store, aud: aud}
}

// ListByTitle handles GET /api/titles/:id/reviews.
func (h *ReviewHandler) ListByTitle(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var reviews []model.Review
	if err := h.db.Where("title_id = ?", id).Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// ListByAccount handles GET /api/accounts/:id/reviews.
func (h *ReviewHandler) ListByAccount(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var reviews []model.Review
	if err := h.db.Where("account_id = ?", id).Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// Get handles GET /api/titles/:id/reviews/:accountId.
func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	accountID, ok := paramID(c, "accountId")
	if !ok {
		return
	}
	var review model.Review
	err := h.db.Where("title_id = ? AND account_id = ?", id, accountID).First(&review).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
		return
	}
	c.JSON(http.StatusOK, review)
}

type postReviewRequest struct {
	AccountID int64   `json:"account_id" binding:"required"`
	Rating    float64 `json:"rating"`
	// Text is a pointer: absent leaves an existing text untouched,
	// an explicit empty string clears it.
	Text *string `json:"text"`
}

// Post handles POST /api/titles/:id/reviews. It creates a review or
// amends the caller's existing one.
func (h *ReviewHandler) Post(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req postReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.store.PostReview(c.Request.Context(), id, req.AccountID, req.Rating, req.Text)
	if err != nil {
		respondStoreErr(c, err)
		return
	}

	h.aud.Log(audit.Entry{
		TraceID:   mw.GetTraceID(c),
		AccountID: &req.AccountID,
		Action:    "review_post",
		Detail:    review,
		IP:        c.ClientIP(),
	})
	c.JSON(http.StatusCreated, review)
}

// Delete handles DELETE /api/titles/:id/reviews/:accountId.
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	accountID, ok := paramID(c, "accountId")
	if !ok {
		return
	}
	res := h.db.Where("title_id = ? AND account_id = ?", id, accountID).Delete(&model.Review{})
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "review deleted"})
}

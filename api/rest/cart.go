package rest

import (
	"net/http"
	"time"

	"github.com/gamehub-br/server/audit"
	mw "github.com/gamehub-br/server/middleware"
	"github.com/gamehub-br/server/model"
	"github.com/gamehub-br/server/storefront"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CartHandler handles cart REST endpoints, including checkout.
type CartHandler struct {
	db    *gorm.DB
	store *storefront.Service
	aud   *audit.Service
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(db *gorm.DB, store *storefront.Service, aud *audit.Service) *CartHandler {
	return &CartHandler{db: db, store: store, aud: aud}
}

// List handles GET /api/accounts/:id/cart.
func (h *CartHandler) List(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var entries []model.CartEntry
	if err := h.db.Where("account_id = ?", id).Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": entries})
}

type addCartRequest struct {
	TitleID int64 `json:"title_id" binding:"required"`
}

// Add handles POST /api/accounts/:id/cart. Adding a title the account
// already owns is rejected up front instead of failing at checkout.
func (h *CartHandler) Add(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req addCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var count int64
	h.db.Model(&model.Title{}).Where("id = ?", req.TitleID).Count(&count)
	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "title not found"})
		return
	}
	h.db.Model(&model.LibraryEntry{}).
		Where("account_id = ? AND title_id = ?", id, req.TitleID).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "title already in library"})
		return
	}

	entry := model.CartEntry{AccountID: id, TitleID: req.TitleID}
	if err := h.db.Create(&entry).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "title already in cart"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// Remove handles DELETE /api/accounts/:id/cart/:titleId.
func (h *CartHandler) Remove(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	titleID, ok := paramID(c, "titleId")
	if !ok {
		return
	}
	res := h.db.Where("account_id = ? AND title_id = ?", id, titleID).Delete(&model.CartEntry{})
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "title not in cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "removed from cart"})
}

// Checkout handles POST /api/accounts/:id/cart/checkout.
func (h *CartHandler) Checkout(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	start := time.Now()
	purchase, err := h.store.Checkout(c.Request.Context(), id)

	entry := audit.Entry{
		TraceID:    mw.GetTraceID(c),
		AccountID:  &id,
		Action:     "checkout",
		IP:         c.ClientIP(),
		DurationMs: int(time.Since(start).Milliseconds()),
	}
	if err != nil {
		entry.Error = err.Error()
		h.aud.Log(entry)
		respondStoreErr(c, err)
		return
	}
	entry.Detail = purchase
	h.aud.Log(entry)

	c.JSON(http.StatusCreated, purchase)
}

package rest

import (
	"net/http"

	"github.com/gamehub-br/server/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// WishlistHandler handles wishlist REST endpoints.
type WishlistHandler struct {
	db *gorm.DB
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(db *gorm.DB) *WishlistHandler {
	return &WishlistHandler{db: db}
}

// List handles GET /api/accounts/:id/wishlist.
func (h *WishlistHandler) List(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var entries []model.WishlistEntry
	if err := h.db.Where("account_id = ?", id).Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"wishlist": entries})
}

type addWishlistRequest struct {
	TitleID int64 `json:"title_id" binding:"required"`
}

// Add handles POST /api/accounts/:id/wishlist.
func (h *WishlistHandler) Add(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req addWishlistRequest
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

	entry := model.WishlistEntry{AccountID: id, TitleID: req.TitleID}
	if err := h.db.Create(&entry).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "title already in wishlist"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// Remove handles DELETE /api/accounts/:id/wishlist/:titleId.
func (h *WishlistHandler) Remove(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	titleID, ok := paramID(c, "titleId")
	if !ok {
		return
	}
	res := h.db.Where("account_id = ? AND title_id = ?", id, titleID).Delete(&model.WishlistEntry{})
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "title not in wishlist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "removed from wishlist"})
}

package rest

import (
	"net/http"

	"github.com/gamehub-br/server/model"
	"github.com/gamehub-br/server/storefront"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// LibraryHandler handles library REST endpoints. There is no delete:
// library entries are permanent.
type LibraryHandler struct {
	db    *gorm.DB
	store *storefront.Service
}

// NewLibraryHandler creates a new LibraryHandler.
func NewLibraryHandler(db *gorm.DB, store *storefront.Service) *LibraryHandler {
	return &LibraryHandler{db: db, store: store}
}

// List handles GET /api/accounts/:id/library.
func (h *LibraryHandler) List(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var count int64
	h.db.Model(&model.Account{}).Where("id = ?", id).Count(&count)
	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		return
	}
	var entries []model.LibraryEntry
	if err := h.db.Where("account_id = ?", id).Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"library": entries})
}

// Get handles GET /api/accounts/:id/library/:titleId.
func (h *LibraryHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	titleID, ok := paramID(c, "titleId")
	if !ok {
		return
	}
	var entry model.LibraryEntry
	err := h.db.Where("account_id = ? AND title_id = ?", id, titleID).First(&entry).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not in library"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

type playedTimeRequest struct {
	Minutes int64 `json:"minutes" binding:"required"`
}

// AddPlayedTime handles POST /api/accounts/:id/library/:titleId/played-time.
func (h *LibraryHandler) AddPlayedTime(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	titleID, ok := paramID(c, "titleId")
	if !ok {
		return
	}
	var req playedTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.store.AddPlayedTime(c.Request.Context(), id, titleID, req.Minutes)
	if err != nil {
		respondStoreErr(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

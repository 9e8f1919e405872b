package rest

import (
	"net/http"

	"github.com/gamehub-br/server/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PurchaseHandler exposes the purchase history. Transactions are only
// created by checkout; this handler is read-only.
type PurchaseHandler struct {
	db *gorm.DB
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(db *gorm.DB) *PurchaseHandler {
	return &PurchaseHandler{db: db}
}

// ListByAccount handles GET /api/accounts/:id/transactions.
func (h *PurchaseHandler) ListByAccount(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var txs []model.PurchaseTransaction
	if err := h.db.Where("account_id = ?", id).
		Order("created_at DESC").Find(&txs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": txs})
}

// Get handles GET /api/transactions/:id and includes the line items with
// their price snapshots.
func (h *PurchaseHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var tx model.PurchaseTransaction
	if err := h.db.First(&tx, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "transaction not found"})
		return
	}
	var items []model.PurchaseItem
	if err := h.db.Where("transaction_id = ?", id).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": tx, "items": items})
}

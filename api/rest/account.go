package rest

import (
	"net/http"

	"github.com/gamehub-br/server/audit"
	"github.com/gamehub-br/server/config"
	mw "github.com/gamehub-br/server/middleware"
	"github.com/gamehub-br/server/model"
	"github.com/gamehub-br/server/storefront"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AccountHandler handles account REST endpoints.
type AccountHandler struct {
	db    *gorm.DB
	store *storefront.Service
	aud   *audit.Service
	sec   config.SecurityConfig
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(db *gorm.DB, store *storefront.Service, aud *audit.Service, sec config.SecurityConfig) *AccountHandler {
	return &AccountHandler{db: db, store: store, aud: aud, sec: sec}
}

// List handles GET /api/accounts.
func (h *AccountHandler) List(c *gin.Context) {
	var accounts []model.Account
	if err := h.db.Find(&accounts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}

// Get handles GET /api/accounts/:id.
func (h *AccountHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var acc model.Account
	if err := h.db.First(&acc, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		return
	}
	c.JSON(http.StatusOK, acc)
}

type createAccountRequest struct {
	Name     string `json:"name"     binding:"required,min=2,max=64"`
	Email    string `json:"email"    binding:"required,email,max=128"`
	Password string `json:"password" binding:"required,min=6,max=64"`
}

// Create handles POST /api/accounts.
func (h *AccountHandler) Create(c *gin.Context) {
	var req createAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cost := h.sec.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), cost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	acc := model.Account{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := h.db.Create(&acc).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}
	c.JSON(http.StatusCreated, acc)
}

type updateAccountRequest struct {
	Name     string `json:"name"     binding:"omitempty,min=2,max=64"`
	Email    string `json:"email"    binding:"omitempty,email,max=128"`
	Password string `json:"password" binding:"omitempty,min=6,max=64"`
}

// Update handles PUT /api/accounts/:id. Balance is deliberately not
// updatable here; it only moves through the ledger.
func (h *AccountHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req updateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var acc model.Account
	if err := h.db.First(&acc, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		return
	}

	if req.Name != "" {
		acc.Name = req.Name
	}
	if req.Email != "" {
		acc.Email = req.Email
	}
	if req.Password != "" {
		cost := h.sec.BcryptCost
		if cost == 0 {
			cost = bcrypt.DefaultCost
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), cost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		acc.PasswordHash = string(hash)
	}

	if err := h.db.Save(&acc).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}
	c.JSON(http.StatusOK, acc)
}

// Delete handles DELETE /api/accounts/:id.
func (h *AccountHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	res := h.db.Delete(&model.Account{}, id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}

type creditRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

// Credit handles POST /api/accounts/:id/balance. Amount is in cents.
func (h *AccountHandler) Credit(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req creditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	acc, err := h.store.Credit(c.Request.Context(), id, req.Amount)
	if err != nil {
		respondStoreErr(c, err)
		return
	}

	h.aud.Log(audit.Entry{
		TraceID:   mw.GetTraceID(c),
		AccountID: &id,
		Action:    "balance_credit",
		Detail:    req,
		IP:        c.ClientIP(),
	})
	c.JSON(http.StatusOK, acc)
}

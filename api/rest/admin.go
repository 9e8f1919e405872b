package rest

import (
	"net/http"

	"github.com/gamehub-br/server/model"
	"github.com/gamehub-br/server/scheduler"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminAuth returns a middleware that checks the X-Admin-Key header.
// An empty adminKey disables the admin endpoints entirely (503) so the
// server cannot be deployed without protection by accident.
func AdminAuth(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminKey == "" {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable,
				gin.H{"error": "admin endpoints disabled: set server.admin_key in config"})
			return
		}
		if c.GetHeader("X-Admin-Key") != adminKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

// AdminHandler serves operational endpoints behind AdminAuth.
type AdminHandler struct {
	db    *gorm.DB
	sched *scheduler.Scheduler
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(db *gorm.DB, sched *scheduler.Scheduler) *AdminHandler {
	return &AdminHandler{db: db, sched: sched}
}

// Metrics handles GET /api/admin/metrics with row counts per entity.
func (h *AdminHandler) Metrics(c *gin.Context) {
	counts := gin.H{}
	for name, m := range map[string]interface{}{
		"accounts":     &model.Account{},
		"titles":       &model.Title{},
		"reviews":      &model.Review{},
		"transactions": &model.PurchaseTransaction{},
		"friendships":  &model.Friendship{},
		"audit_logs":   &model.AuditLog{},
	} {
		var n int64
		if err := h.db.Model(m).Count(&n).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		counts[name] = n
	}
	c.JSON(http.StatusOK, counts)
}

// ListSchedulerTasks handles GET /api/admin/scheduler/tasks.
func (h *AdminHandler) ListSchedulerTasks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tasks": h.sched.ListTickers()})
}

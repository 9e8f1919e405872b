package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gamehub-br/server/cache"
	"github.com/gamehub-br/server/config"
	"github.com/gamehub-br/server/model"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const rankingKey = "ranking:top_rated"

// RankingHandler serves the top-rated titles ranking. The ranking lives
// in a cache sorted set and is rebuilt on a schedule; a cold cache falls
// back to a direct aggregate query.
type RankingHandler struct {
	db     *gorm.DB
	cache  cache.Cache
	cfg    config.StoreConfig
	logger *zap.Logger
}

// NewRankingHandler creates a new RankingHandler.
func NewRankingHandler(db *gorm.DB, ca cache.Cache, cfg config.StoreConfig, logger *zap.Logger) *RankingHandler {
	return &RankingHandler{db: db, cache: ca, cfg: cfg, logger: logger}
}

type rankedTitle struct {
	Title     model.Title `json:"title"`
	AvgRating float64     `json:"avg_rating"`
}

// TopRated handles GET /api/rankings/top-rated.
func (h *RankingHandler) TopRated(c *gin.Context) {
	ctx := c.Request.Context()

	members, err := h.cache.ZRevRange(ctx, rankingKey, 0, int64(h.cfg.RankingSize)-1)
	if err != nil || len(members) == 0 {
		// Cold cache: rebuild synchronously and retry once.
		if err := h.Refresh(ctx); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		members, _ = h.cache.ZRevRange(ctx, rankingKey, 0, int64(h.cfg.RankingSize)-1)
	}

	ranking := make([]rankedTitle, 0, len(members))
	for _, member := range members {
		titleID, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			continue
		}
		var title model.Title
		if err := h.db.First(&title, titleID).Error; err != nil {
			// Title deleted since the last refresh; skip until the next rebuild.
			continue
		}
		score, err := h.cache.ZScore(ctx, rankingKey, member)
		if err != nil {
			continue
		}
		ranking = append(ranking, rankedTitle{Title: title, AvgRating: score})
	}
	c.JSON(http.StatusOK, gin.H{"ranking": ranking})
}

// RefreshNow handles POST /api/admin/ranking/refresh for an on-demand
// rebuild without waiting for the scheduler.
func (h *RankingHandler) RefreshNow(c *gin.Context) {
	if err := h.Refresh(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ranking refreshed"})
}

// Refresh recomputes the ranking sorted set from review aggregates.
// It is registered with the scheduler and also used as the cold-cache
// fallback.
func (h *RankingHandler) Refresh(ctx context.Context) error {
	type row struct {
		TitleID int64
		Avg     float64
	}
	var rows []row
	err := h.db.WithContext(ctx).Model(&model.Review{}).
		Select("title_id, AVG(rating) AS avg").
		Group("title_id").
		Having("COUNT(*) >= ?", h.cfg.RankingMinReviews).
		Scan(&rows).Error
	if err != nil {
		return err
	}

	for _, r := range rows {
		member := strconv.FormatInt(r.TitleID, 10)
		if err := h.cache.ZAdd(ctx, rankingKey, r.Avg, member); err != nil {
			h.logger.Warn("ranking refresh: zadd failed",
				zap.Int64("title_id", r.TitleID), zap.Error(err))
		}
	}
	h.logger.Debug("ranking refreshed", zap.Int("titles", len(rows)))
	return nil
}

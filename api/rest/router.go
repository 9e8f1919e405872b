package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/gamehub-br/server/audit"
	"github.com/gamehub-br/server/cache"
	"github.com/gamehub-br/server/config"
	"github.com/gamehub-br/server/middleware"
	"github.com/gamehub-br/server/scheduler"
	"github.com/gamehub-br/server/storefront"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// Deps holds everything the REST layer needs wired in.
type Deps struct {
	Config *config.Config
	DB     *gorm.DB
	Cache  cache.Cache
	Store  *storefront.Service
	Audit  *audit.Service
	Sched  *scheduler.Scheduler
	Logger *zap.Logger
}

// NewRouter builds the gin engine with all REST routes and middleware.
func NewRouter(d Deps) *gin.Engine {
	if !d.Config.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.TraceID())
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Recovery(d.Logger))
	if d.Config.Security.RateLimitRPS > 0 {
		r.Use(middleware.RateLimit(
			rate.Limit(d.Config.Security.RateLimitRPS),
			d.Config.Security.RateLimitBurst))
	}

	accounts := NewAccountHandler(d.DB, d.Store, d.Audit, d.Config.Security)
	catalog := NewCatalogHandler(d.DB)
	titles := NewTitleHandler(d.DB, d.Cache)
	carts := NewCartHandler(d.DB, d.Store, d.Audit)
	wishlists := NewWishlistHandler(d.DB)
	libraries := NewLibraryHandler(d.DB, d.Store)
	reviews := NewReviewHandler(d.DB, d.Store, d.Audit)
	social := NewSocialHandler(d.DB, d.Store, d.Audit)
	purchases := NewPurchaseHandler(d.DB)
	rankings := NewRankingHandler(d.DB, d.Cache, d.Config.Store, d.Logger)
	admin := NewAdminHandler(d.DB, d.Sched)

	if d.Sched != nil && d.Config.Store.RankingRefreshS > 0 {
		d.Sched.AddTicker("ranking_refresh",
			time.Duration(d.Config.Store.RankingRefreshS)*time.Second,
			func() {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()
				if err := rankings.Refresh(ctx); err != nil {
					d.Logger.Error("ranking refresh failed", zap.Error(err))
				}
			})
	}

	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := d.DB.DB()
		if err != nil || sqlDB.Ping() != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		acc := api.Group("/accounts")
		{
			acc.GET("", accounts.List)
			acc.POST("", accounts.Create)
			acc.GET("/:id", accounts.Get)
			acc.PUT("/:id", accounts.Update)
			acc.DELETE("/:id", accounts.Delete)
			acc.POST("/:id/balance", accounts.Credit)

			acc.GET("/:id/cart", carts.List)
			acc.POST("/:id/cart", carts.Add)
			acc.DELETE("/:id/cart/:titleId", carts.Remove)
			acc.POST("/:id/cart/checkout", carts.Checkout)

			acc.GET("/:id/wishlist", wishlists.List)
			acc.POST("/:id/wishlist", wishlists.Add)
			acc.DELETE("/:id/wishlist/:titleId", wishlists.Remove)

			acc.GET("/:id/library", libraries.List)
			acc.GET("/:id/library/:titleId", libraries.Get)
			acc.POST("/:id/library/:titleId/played-time", libraries.AddPlayedTime)

			acc.GET("/:id/reviews", reviews.ListByAccount)
			acc.GET("/:id/transactions", purchases.ListByAccount)

			acc.GET("/:id/friendships", social.List)
			acc.GET("/:id/friendships/accepted", social.ListAccepted)
			acc.POST("/:id/friendships", social.Add)
			acc.PATCH("/:id/friendships/:friendId/accept", social.Accept)
			acc.PATCH("/:id/friendships/:friendId/reject", social.Reject)
			acc.DELETE("/:id/friendships/:friendId", social.Delete)
		}

		for name, h := range map[string]struct {
			list, get, create, update, del gin.HandlerFunc
		}{
			"/developers": {catalog.ListDevelopers, catalog.GetDeveloper, catalog.CreateDeveloper, catalog.UpdateDeveloper, catalog.DeleteDeveloper},
			"/publishers": {catalog.ListPublishers, catalog.GetPublisher, catalog.CreatePublisher, catalog.UpdatePublisher, catalog.DeletePublisher},
			"/genres":     {catalog.ListGenres, catalog.GetGenre, catalog.CreateGenre, catalog.UpdateGenre, catalog.DeleteGenre},
			"/tags":       {catalog.ListTags, catalog.GetTag, catalog.CreateTag, catalog.UpdateTag, catalog.DeleteTag},
		} {
			g := api.Group(name)
			g.GET("", h.list)
			g.GET("/:id", h.get)
			g.POST("", h.create)
			g.PUT("/:id", h.update)
			g.DELETE("/:id", h.del)
		}

		t := api.Group("/titles")
		{
			t.GET("", titles.List)
			t.POST("", titles.Create)
			t.GET("/:id", titles.Get)
			t.PUT("/:id", titles.Update)
			t.DELETE("/:id", titles.Delete)

			t.GET("/:id/genres", titles.ListGenres)
			t.POST("/:id/genres", titles.AddGenre)
			t.DELETE("/:id/genres/:genreId", titles.RemoveGenre)
			t.GET("/:id/tags", titles.ListTags)
			t.POST("/:id/tags", titles.AddTag)
			t.DELETE("/:id/tags/:tagId", titles.RemoveTag)

			t.GET("/:id/reviews", reviews.ListByTitle)
			t.POST("/:id/reviews", reviews.Post)
			t.GET("/:id/reviews/:accountId", reviews.Get)
			t.DELETE("/:id/reviews/:accountId", reviews.Delete)
		}

		api.GET("/transactions/:id", purchases.Get)
		api.GET("/rankings/top-rated", rankings.TopRated)

		adm := api.Group("/admin",
			middleware.IPWhitelist(d.Config.Security.AdminAllowedIPs),
			AdminAuth(d.Config.Server.AdminKey))
		{
			adm.GET("/metrics", admin.Metrics)
			adm.GET("/scheduler/tasks", admin.ListSchedulerTasks)
			adm.POST("/ranking/refresh", rankings.RefreshNow)
		}
	}

	return r
}

package http

import (
	"time"

	"bitrush_backend/internal/config"
	"bitrush_backend/internal/http/handlers"
	"bitrush_backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, version string, cfg *config.Config) {
	h := handlers.NewHandler(db)
	healthHandler := handlers.NewHealthHandler(db, version)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	apiRateLimit := 600
	apiRateWindow := time.Minute
	authRateLimit := 10
	authRateWindow := time.Minute
	actionRateLimit := 600
	actionRateWindow := time.Minute
	if cfg != nil {
		actionRateLimit = cfg.ActionRateLimit
		actionRateWindow = time.Duration(cfg.ActionRateWindow) * time.Second
	}

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RedisRateLimit(apiRateLimit, apiRateWindow))

	// Auth; the in-process limiter keeps it bounded even without Redis
	v1.POST("/auth",
		middleware.SimpleRateLimit(authRateLimit, authRateWindow),
		h.Auth)

	// Public catalog
	v1.GET("/catalog/cards", h.CardCatalog)
	v1.GET("/wheel/info", h.WheelInfo)

	auth := v1.Group("")
	auth.Use(middleware.JWT())

	auth.GET("/me/state", h.State)
	auth.GET("/me/transactions", h.Transactions)

	// Game actions share one per-player limit
	action := auth.Group("")
	action.Use(middleware.ActionRateLimit(actionRateLimit, actionRateWindow))

	action.POST("/game/tap", h.Tap)
	action.POST("/cards/upgrade", h.UpgradeCard)
	action.POST("/cards/skip-timer", h.SkipCardTimer)
	action.POST("/floating-cards/claim", h.ClaimFloatingCard)
	action.POST("/floating-cards/purchase", h.PurchaseFloatingCard)
	action.POST("/wheel/spin", h.SpinWheel)
	action.POST("/missions/:name/claim", h.ClaimMission)
	action.POST("/achievements/:name/claim", h.ClaimAchievement)
	action.POST("/daily-rewards/claim", h.ClaimDailyReward)
	action.POST("/shop/purchase", h.PurchaseShopItem)

	auth.GET("/cards", h.Cards)
	auth.GET("/floating-cards", h.FloatingCards)
	auth.GET("/wheel", h.Wheel)
	auth.GET("/missions", h.Missions)
	auth.GET("/achievements", h.Achievements)
	auth.GET("/daily-rewards", h.DailyRewards)
	auth.GET("/shop", h.Shop)
}

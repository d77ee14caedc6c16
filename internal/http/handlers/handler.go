package handlers

import (
	"errors"
	"net/http"

	"bitrush_backend/internal/logger"
	"bitrush_backend/internal/repository"
	"bitrush_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	DB              *pgxpool.Pool
	AuthService     *service.AuthService
	MiningService   *service.MiningService
	CardService     *service.CardService
	FloatingService *service.FloatingCardService
	WheelService    *service.WheelService
	MissionService  *service.MissionService
	DailyService    *service.DailyRewardService
	ShopService     *service.ShopService
	TransactionRepo *repository.TransactionRepository
}

func NewHandler(db *pgxpool.Pool) *Handler {
	progress := service.NewProgressService(db)
	mining := service.NewMiningService(db, progress)
	return &Handler{
		DB:              db,
		AuthService:     service.NewAuthService(db, mining),
		MiningService:   mining,
		CardService:     service.NewCardService(db, progress),
		FloatingService: service.NewFloatingCardService(db, progress),
		WheelService:    service.NewWheelService(db, progress, nil),
		MissionService:  service.NewMissionService(db),
		DailyService:    service.NewDailyRewardService(db, progress),
		ShopService:     service.NewShopService(db, progress),
		TransactionRepo: repository.NewTransactionRepository(db),
	}
}

// getUserID pulls the player id stashed by the JWT middleware.
func getUserID(c *gin.Context) (int64, bool) {
	uidVal, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	switch v := uidVal.(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}

// requireUserID aborts with 401 when the JWT middleware left no player id.
func requireUserID(c *gin.Context) (int64, bool) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
	}
	return userID, ok
}

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrInsufficientFunds):
		c.JSON(http.StatusBadRequest, gin.H{"error": "insufficient funds"})
	case errors.Is(err, service.ErrNoEnergy):
		c.JSON(http.StatusBadRequest, gin.H{"error": "no energy"})
	case errors.Is(err, service.ErrNoSpinsAvailable):
		c.JSON(http.StatusBadRequest, gin.H{"error": "no spins available"})
	case errors.Is(err, service.ErrNotCompleted):
		c.JSON(http.StatusBadRequest, gin.H{"error": "not completed"})
	case errors.Is(err, service.ErrInvalidState):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid state"})
	case errors.Is(err, service.ErrAlreadyClaimed):
		c.JSON(http.StatusConflict, gin.H{"error": "already claimed"})
	case errors.Is(err, service.ErrCooldownActive):
		c.JSON(http.StatusConflict, gin.H{"error": "cooldown active"})
	default:
		logger.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

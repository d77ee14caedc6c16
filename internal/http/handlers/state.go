package handlers

import (
	"net/http"
	"strconv"

	"bitrush_backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// State returns the player's full snapshot after settling lazy energy regen.
func (h *Handler) State(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	state, err := h.MiningService.GetState(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Tap mines one tap.
func (h *Handler) Tap(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	stats, err := h.MiningService.Tap(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// Transactions lists the player's recent ledger entries.
func (h *Handler) Transactions(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	limit := 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	ctx := c.Request.Context()
	var (
		entries []*domain.Transaction
		err     error
	)
	if txType := c.Query("type"); txType != "" {
		entries, err = h.TransactionRepo.GetByUserIDAndType(ctx, userID, txType, limit)
	} else {
		entries, err = h.TransactionRepo.GetByUserID(ctx, userID, limit)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": entries})
}

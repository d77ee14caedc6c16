package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DailyRewards lists the 7-day login reward track.
func (h *Handler) DailyRewards(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	rewards, err := h.DailyService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"daily_rewards": rewards})
}

// ClaimDailyReward collects the next day of the track.
func (h *Handler) ClaimDailyReward(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	stats, day, err := h.DailyService.Claim(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats, "reward": day})
}

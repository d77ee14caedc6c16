package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Missions lists the player's daily missions after re-arming expired ones.
func (h *Handler) Missions(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	missions, err := h.MissionService.ListMissions(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"missions": missions})
}

// ClaimMission pays out a completed mission.
func (h *Handler) ClaimMission(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	name := c.Param("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mission name required"})
		return
	}

	stats, err := h.MissionService.ClaimMission(c.Request.Context(), userID, name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// Achievements lists the player's achievements.
func (h *Handler) Achievements(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	achievements, err := h.MissionService.ListAchievements(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"achievements": achievements})
}

// ClaimAchievement pays out a completed achievement, once.
func (h *Handler) ClaimAchievement(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	name := c.Param("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "achievement name required"})
		return
	}

	stats, err := h.MissionService.ClaimAchievement(c.Request.Context(), userID, name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

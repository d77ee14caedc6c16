package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Wheel returns the player's lifetime spin counters.
func (h *Handler) Wheel(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	state, err := h.WheelService.State(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"wheel": state})
}

// WheelInfo is the public prize table.
func (h *Handler) WheelInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"prizes": h.WheelService.Info()})
}

// SpinWheel spends one spin token on the wheel.
func (h *Handler) SpinWheel(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.WheelService.Spin(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

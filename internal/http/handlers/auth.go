package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthRequest struct {
	AccountID string `json:"account_id"`
	Username  string `json:"username"`
}

// Auth exchanges an external account id for a player and a bearer token.
// First contact creates the player and seeds every starting row.
func (h *Handler) Auth(c *gin.Context) {
	var req AuthRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	if req.AccountID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "account_id required"})
		return
	}

	player, token, err := h.AuthService.Authenticate(c.Request.Context(), req.AccountID, req.Username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"player": gin.H{
			"id":         player.ID,
			"account_id": player.AccountID,
			"username":   player.Username,
			"created_at": player.CreatedAt,
		},
	})
}

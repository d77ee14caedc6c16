package handlers

import (
	"net/http"

	"bitrush_backend/internal/game"

	"github.com/gin-gonic/gin"
)

type CardRequest struct {
	CardName string `json:"card_name"`
}

// Cards lists the player's owned cards.
func (h *Handler) Cards(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	cards, err := h.CardService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cards": cards})
}

// CardCatalog is the public list of purchasable cards.
func (h *Handler) CardCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"mining": game.MiningCards(),
		"elite":  game.EliteCards(),
	})
}

// UpgradeCard buys or levels up a card.
func (h *Handler) UpgradeCard(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req CardRequest
	if err := c.BindJSON(&req); err != nil || req.CardName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "card_name required"})
		return
	}

	stats, card, err := h.CardService.Upgrade(c.Request.Context(), userID, req.CardName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats, "card": card})
}

// SkipCardTimer clears a running card cooldown for stars.
func (h *Handler) SkipCardTimer(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req CardRequest
	if err := c.BindJSON(&req); err != nil || req.CardName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "card_name required"})
		return
	}

	stats, card, err := h.CardService.SkipCooldown(c.Request.Context(), userID, req.CardName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats, "card": card})
}

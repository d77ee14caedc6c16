package handlers

import (
	"net/http"

	"bitrush_backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type FloatingClaimRequest struct {
	Collection string `json:"collection"`
	Position   int    `json:"position"`
}

type FloatingPurchaseRequest struct {
	Collection string `json:"collection"`
}

// FloatingCards lists a collection's slots; defaults to the first one.
func (h *Handler) FloatingCards(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	collection := c.DefaultQuery("collection", domain.CollectionExplorerStash)
	cards, err := h.FloatingService.List(c.Request.Context(), userID, collection)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"collection": collection, "cards": cards})
}

// ClaimFloatingCard collects an unlocked slot's reward.
func (h *Handler) ClaimFloatingCard(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req FloatingClaimRequest
	if err := c.BindJSON(&req); err != nil || req.Collection == "" || req.Position < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "collection and position required"})
		return
	}

	stats, err := h.FloatingService.Claim(c.Request.Context(), userID, req.Collection, req.Position)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// PurchaseFloatingCard buys the gateway slot, unlocking the rest of the grid.
func (h *Handler) PurchaseFloatingCard(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req FloatingPurchaseRequest
	if err := c.BindJSON(&req); err != nil || req.Collection == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "collection required"})
		return
	}

	stats, err := h.FloatingService.PurchaseGateway(c.Request.Context(), userID, req.Collection)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

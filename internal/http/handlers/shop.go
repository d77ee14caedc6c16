package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ShopPurchaseRequest struct {
	ItemName string `json:"item_name"`
}

// Shop lists the player's store with current escalated prices.
func (h *Handler) Shop(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	items, err := h.ShopService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// PurchaseShopItem buys an item at its current price.
func (h *Handler) PurchaseShopItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req ShopPurchaseRequest
	if err := c.BindJSON(&req); err != nil || req.ItemName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item_name required"})
		return
	}

	stats, item, err := h.ShopService.Purchase(c.Request.Context(), userID, req.ItemName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats, "item": item})
}

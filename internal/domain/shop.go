package domain

import "time"

// ShopItem is a player-scoped store entry. Prices escalate 10% per purchase,
// so each player carries their own current price alongside the base.
type ShopItem struct {
	ID                int64      `db:"id" json:"id"`
	UserID            int64      `db:"user_id" json:"user_id"`
	ItemName          string     `db:"item_name" json:"item_name"`
	ItemType          string     `db:"item_type" json:"item_type"`
	BasePriceStars    int64      `db:"base_price_stars" json:"base_price_stars"`
	BasePriceTonUnits int64      `db:"base_price_ton_units" json:"base_price_ton_units"`
	CurrentPriceStars int64      `db:"current_price_stars" json:"current_price_stars"`
	CurrentPriceTon   int64      `db:"current_price_ton_units" json:"current_price_ton_units"`
	PurchaseCount     int        `db:"purchase_count" json:"purchase_count"`
	RewardType        RewardType `db:"reward_type" json:"reward_type"`
	RewardAmount      int64      `db:"reward_amount" json:"reward_amount"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`
}

func (s *ShopItem) Reward() Reward {
	return Reward{Type: s.RewardType, Amount: s.RewardAmount}
}

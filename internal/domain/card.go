package domain

import "time"

// Card is a player's owned upgrade card. Level starts at 1 on first purchase
// and increments on every repurchase; MiningBonus accumulates the bonus of
// each purchase. UnlockTimer non-nil means the card is cooling down.
type Card struct {
	ID            int64      `db:"id" json:"id"`
	UserID        int64      `db:"user_id" json:"user_id"`
	CardType      string     `db:"card_type" json:"card_type"`
	CardName      string     `db:"card_name" json:"card_name"`
	Level         int        `db:"level" json:"level"`
	MiningBonus   int64      `db:"mining_bonus" json:"mining_bonus"`
	PriceCoins    int64      `db:"price_coins" json:"price_coins"`
	PriceTonUnits int64      `db:"price_ton_units" json:"price_ton_units"`
	UnlockTimer   *time.Time `db:"unlock_timer" json:"unlock_timer"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

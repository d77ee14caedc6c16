package domain

import "time"

// Floating card collections shipped with the game.
const (
	CollectionExplorerStash = "explorer_stash"
	CollectionCryptoCavern  = "crypto_cavern"
)

// FloatingCard is one slot of a player's 3x3 reward grid. Positions 1-3 start
// unlocked, position 4 is the paid TON gateway, 5-9 unlock when 4 is bought.
type FloatingCard struct {
	ID            int64      `db:"id" json:"id"`
	UserID        int64      `db:"user_id" json:"user_id"`
	Collection    string     `db:"collection" json:"collection"`
	Position      int        `db:"position" json:"position"`
	IsUnlocked    bool       `db:"is_unlocked" json:"is_unlocked"`
	IsClaimed     bool       `db:"is_claimed" json:"is_claimed"`
	RewardType    RewardType `db:"reward_type" json:"reward_type"`
	RewardAmount  int64      `db:"reward_amount" json:"reward_amount"`
	PriceTonUnits int64      `db:"price_ton_units" json:"price_ton_units"`
	PurchaseDate  *time.Time `db:"purchase_date" json:"purchase_date"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

func (fc *FloatingCard) Reward() Reward {
	return Reward{Type: fc.RewardType, Amount: fc.RewardAmount}
}

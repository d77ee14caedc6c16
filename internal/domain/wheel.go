package domain

import "time"

// WheelState tracks a player's lifetime reward-wheel counters.
type WheelState struct {
	ID                  int64      `db:"id" json:"id"`
	UserID              int64      `db:"user_id" json:"user_id"`
	SpinsUsed           int64      `db:"spins_used" json:"spins_used"`
	TotalRewardsClaimed int64      `db:"total_rewards_claimed" json:"total_rewards_claimed"`
	LastSpin            *time.Time `db:"last_spin" json:"last_spin"`
	UpdatedAt           time.Time  `db:"updated_at" json:"updated_at"`
}

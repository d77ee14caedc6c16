package domain

import "time"

// DailyReward is one day of a player's 7-day login reward track.
type DailyReward struct {
	ID            int64      `db:"id" json:"id"`
	UserID        int64      `db:"user_id" json:"user_id"`
	Day           int        `db:"day" json:"day"`
	RewardType    RewardType `db:"reward_type" json:"reward_type"`
	RewardAmount  int64      `db:"reward_amount" json:"reward_amount"`
	IsClaimed     bool       `db:"is_claimed" json:"is_claimed"`
	LastClaimDate *time.Time `db:"last_claim_date" json:"last_claim_date"`
	StreakCount   int        `db:"streak_count" json:"streak_count"`
}

func (d *DailyReward) Reward() Reward {
	return Reward{Type: d.RewardType, Amount: d.RewardAmount}
}

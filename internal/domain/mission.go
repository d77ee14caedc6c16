package domain

import "time"

// MissionType is the counter a mission tracks.
type MissionType string

const (
	MissionTaps          MissionType = "taps"
	MissionCoinsEarned   MissionType = "coins_earned"
	MissionCardsUpgraded MissionType = "cards_upgraded"
	MissionSpinsUsed     MissionType = "spins_used"
)

// Mission is a player's progress row for one repeatable daily mission.
// Claiming starts a cooldown; once the cooldown expires the mission resets
// lazily on next read.
type Mission struct {
	ID           int64       `db:"id" json:"id"`
	UserID       int64       `db:"user_id" json:"user_id"`
	MissionName  string      `db:"mission_name" json:"mission_name"`
	MissionType  MissionType `db:"mission_type" json:"mission_type"`
	CurrentValue int64       `db:"current_value" json:"current_value"`
	TargetValue  int64       `db:"target_value" json:"target_value"`
	IsCompleted  bool        `db:"is_completed" json:"is_completed"`
	IsClaimed    bool        `db:"is_claimed" json:"is_claimed"`
	UnlockTimer  *time.Time  `db:"unlock_timer" json:"unlock_timer"`
	RewardType   RewardType  `db:"reward_type" json:"reward_type"`
	RewardAmount int64       `db:"reward_amount" json:"reward_amount"`
	UpdatedAt    time.Time   `db:"updated_at" json:"updated_at"`
}

func (m *Mission) Reward() Reward {
	return Reward{Type: m.RewardType, Amount: m.RewardAmount}
}

package domain

import "time"

// AchievementMetric is the stat an achievement watches. Progress is
// absolute: the current value is the highest observed metric, not a sum.
type AchievementMetric string

const (
	MetricLevel      AchievementMetric = "level"
	MetricCoins      AchievementMetric = "coins"
	MetricMiningRate AchievementMetric = "mining_rate"
	MetricCardsOwned AchievementMetric = "cards_owned"
)

// Achievement is a one-shot reward: once claimed it stays claimed.
type Achievement struct {
	ID           int64             `db:"id" json:"id"`
	UserID       int64             `db:"user_id" json:"user_id"`
	Name         string            `db:"achievement_name" json:"achievement_name"`
	Description  string            `db:"achievement_description" json:"achievement_description"`
	Metric       AchievementMetric `db:"metric" json:"metric"`
	CurrentValue int64             `db:"current_value" json:"current_value"`
	TargetValue  int64             `db:"target_value" json:"target_value"`
	IsCompleted  bool              `db:"is_completed" json:"is_completed"`
	IsClaimed    bool              `db:"is_claimed" json:"is_claimed"`
	RewardType   RewardType        `db:"reward_type" json:"reward_type"`
	RewardAmount int64             `db:"reward_amount" json:"reward_amount"`
	UpdatedAt    time.Time         `db:"updated_at" json:"updated_at"`
}

func (a *Achievement) Reward() Reward {
	return Reward{Type: a.RewardType, Amount: a.RewardAmount}
}

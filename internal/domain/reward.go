package domain

// RewardType identifies which balance-sheet field a reward credits.
type RewardType string

const (
	RewardCoins  RewardType = "coins"
	RewardStars  RewardType = "stars"
	RewardSpins  RewardType = "spins"
	RewardEnergy RewardType = "energy"
	RewardTon    RewardType = "ton"
)

// Valid reports whether t is one of the known reward types.
func (t RewardType) Valid() bool {
	switch t {
	case RewardCoins, RewardStars, RewardSpins, RewardEnergy, RewardTon:
		return true
	}
	return false
}

// Reward is a typed payout: what to credit and how much. Amounts for
// RewardTon are in 0.0001 TON units.
type Reward struct {
	Type   RewardType `json:"type"`
	Amount int64      `json:"amount"`
}

// WellFormed reports whether the reward can be paid out.
func (r Reward) WellFormed() bool {
	return r.Type.Valid() && r.Amount > 0
}

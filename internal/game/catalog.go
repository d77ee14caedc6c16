package game

import "bitrush_backend/internal/domain"

// CardSpec is a catalog entry for a mining card at its base tier.
type CardSpec struct {
	Name          string
	Type          string
	MiningBonus   int64
	PriceCoins    int64
	PriceTonUnits int64
}

// MiningCards are the coin-priced cards every player can buy.
func MiningCards() []CardSpec {
	return []CardSpec{
		{Name: "Basic Miner", Type: "mining", MiningBonus: 2, PriceCoins: 1_000},
		{Name: "Advanced Drill", Type: "mining", MiningBonus: 5, PriceCoins: 5_000},
		{Name: "Quantum Extractor", Type: "mining", MiningBonus: 10, PriceCoins: 25_000},
		{Name: "Nano Processor", Type: "mining", MiningBonus: 25, PriceCoins: 100_000},
	}
}

// EliteCards are TON-priced cards. Prices are in 0.0001 TON units.
func EliteCards() []CardSpec {
	return []CardSpec{
		{Name: "Cyber Core", Type: "elite", MiningBonus: 50, PriceTonUnits: 5_000},
		{Name: "Matrix Engine", Type: "elite", MiningBonus: 100, PriceTonUnits: 10_000},
		{Name: "Neural Net", Type: "elite", MiningBonus: 200, PriceTonUnits: 20_000},
		{Name: "Quantum Mind", Type: "elite", MiningBonus: 500, PriceTonUnits: 50_000},
	}
}

// CardByName looks a card up across both catalogs.
func CardByName(name string) (CardSpec, bool) {
	for _, c := range MiningCards() {
		if c.Name == name {
			return c, true
		}
	}
	for _, c := range EliteCards() {
		if c.Name == name {
			return c, true
		}
	}
	return CardSpec{}, false
}

// WheelPrizes is the default 8-segment wheel, uniform weight.
func WheelPrizes() []Prize {
	return []Prize{
		{Label: "1000 Coins", Reward: domain.Reward{Type: domain.RewardCoins, Amount: 1_000}, Weight: 1},
		{Label: "Free Spin", Reward: domain.Reward{Type: domain.RewardSpins, Amount: 1}, Weight: 1},
		{Label: "5000 Coins", Reward: domain.Reward{Type: domain.RewardCoins, Amount: 5_000}, Weight: 1},
		{Label: "10 Stars", Reward: domain.Reward{Type: domain.RewardStars, Amount: 10}, Weight: 1},
		{Label: "2000 Coins", Reward: domain.Reward{Type: domain.RewardCoins, Amount: 2_000}, Weight: 1},
		{Label: "50 Energy", Reward: domain.Reward{Type: domain.RewardEnergy, Amount: 50}, Weight: 1},
		{Label: "10000 Coins", Reward: domain.Reward{Type: domain.RewardCoins, Amount: 10_000}, Weight: 1},
		{Label: "25 Stars", Reward: domain.Reward{Type: domain.RewardStars, Amount: 25}, Weight: 1},
	}
}

// MissionTemplate seeds a player's repeatable daily missions.
type MissionTemplate struct {
	Name   string
	Type   domain.MissionType
	Target int64
	Reward domain.Reward
}

func DailyMissions() []MissionTemplate {
	return []MissionTemplate{
		{Name: "Tap Frenzy", Type: domain.MissionTaps, Target: 500, Reward: domain.Reward{Type: domain.RewardCoins, Amount: 2_500}},
		{Name: "Coin Collector", Type: domain.MissionCoinsEarned, Target: 10_000, Reward: domain.Reward{Type: domain.RewardStars, Amount: 5}},
		{Name: "Upgrade Pusher", Type: domain.MissionCardsUpgraded, Target: 3, Reward: domain.Reward{Type: domain.RewardSpins, Amount: 2}},
		{Name: "Wheel Addict", Type: domain.MissionSpinsUsed, Target: 5, Reward: domain.Reward{Type: domain.RewardCoins, Amount: 5_000}},
	}
}

// AchievementTemplate seeds a player's one-shot achievements. Progress is
// measured against an absolute stat value, not an accumulator.
type AchievementTemplate struct {
	Name        string
	Description string
	Metric      domain.AchievementMetric
	Target      int64
	Reward      domain.Reward
}

func Achievements() []AchievementTemplate {
	return []AchievementTemplate{
		{Name: "Getting Serious", Description: "Reach level 5", Metric: domain.MetricLevel, Target: 5, Reward: domain.Reward{Type: domain.RewardStars, Amount: 10}},
		{Name: "Veteran Miner", Description: "Reach level 20", Metric: domain.MetricLevel, Target: 20, Reward: domain.Reward{Type: domain.RewardStars, Amount: 50}},
		{Name: "First Million", Description: "Hold 1,000,000 coins", Metric: domain.MetricCoins, Target: 1_000_000, Reward: domain.Reward{Type: domain.RewardSpins, Amount: 10}},
		{Name: "Industrial Scale", Description: "Reach a mining rate of 100", Metric: domain.MetricMiningRate, Target: 100, Reward: domain.Reward{Type: domain.RewardCoins, Amount: 50_000}},
		{Name: "Full Deck", Description: "Own all eight cards", Metric: domain.MetricCardsOwned, Target: 8, Reward: domain.Reward{Type: domain.RewardStars, Amount: 25}},
	}
}

// DailyRewardTable is the 7-day streak calendar, indexed by day 1..7.
func DailyRewardTable() []domain.Reward {
	return []domain.Reward{
		{Type: domain.RewardCoins, Amount: 1_000},
		{Type: domain.RewardCoins, Amount: 2_500},
		{Type: domain.RewardSpins, Amount: 2},
		{Type: domain.RewardCoins, Amount: 5_000},
		{Type: domain.RewardStars, Amount: 5},
		{Type: domain.RewardCoins, Amount: 10_000},
		{Type: domain.RewardStars, Amount: 15},
	}
}

// ShopItemSpec is a catalog entry for the star/TON shop. Prices escalate
// 10% per purchase from the base price.
type ShopItemSpec struct {
	Name           string
	Type           string
	BasePriceStars int64
	BasePriceTon   int64
	Reward         domain.Reward
}

func ShopItems() []ShopItemSpec {
	return []ShopItemSpec{
		{Name: "Energy Pack", Type: "booster", BasePriceStars: 20, Reward: domain.Reward{Type: domain.RewardEnergy, Amount: 100}},
		{Name: "Spin Bundle", Type: "booster", BasePriceStars: 50, Reward: domain.Reward{Type: domain.RewardSpins, Amount: 5}},
		{Name: "Coin Crate", Type: "booster", BasePriceStars: 100, Reward: domain.Reward{Type: domain.RewardCoins, Amount: 25_000}},
		{Name: "Star Vault", Type: "premium", BasePriceTon: 10_000, Reward: domain.Reward{Type: domain.RewardStars, Amount: 200}},
	}
}

// EscalatedPrice applies the 10% per-purchase markup to a base price.
func EscalatedPrice(base int64, purchases int) int64 {
	price := base
	for i := 0; i < purchases; i++ {
		price = price * 110 / 100
	}
	return price
}

// SlotSpec describes one floating card slot template for a collection.
type SlotSpec struct {
	Position      int
	Reward        domain.Reward
	PriceTonUnits int64
	Unlocked      bool
}

// GatewayPriceTonUnits is the TON price of the gateway slot (2.0 TON).
const GatewayPriceTonUnits = 20_000

// FloatingGrid returns the 9-slot template for a collection. Slots 1..3
// start unlocked, slot 4 is the paid gateway, slots 5..9 open once the
// gateway is purchased.
func FloatingGrid(collection string) ([]SlotSpec, bool) {
	switch collection {
	case domain.CollectionExplorerStash:
		return buildGrid([]domain.Reward{
			{Type: domain.RewardCoins, Amount: 2_000},
			{Type: domain.RewardCoins, Amount: 3_000},
			{Type: domain.RewardSpins, Amount: 1},
			{Type: domain.RewardStars, Amount: 20},
			{Type: domain.RewardCoins, Amount: 10_000},
			{Type: domain.RewardEnergy, Amount: 50},
			{Type: domain.RewardSpins, Amount: 3},
			{Type: domain.RewardCoins, Amount: 20_000},
			{Type: domain.RewardStars, Amount: 30},
		}), true
	case domain.CollectionCryptoCavern:
		return buildGrid([]domain.Reward{
			{Type: domain.RewardCoins, Amount: 5_000},
			{Type: domain.RewardSpins, Amount: 2},
			{Type: domain.RewardStars, Amount: 10},
			{Type: domain.RewardStars, Amount: 40},
			{Type: domain.RewardCoins, Amount: 25_000},
			{Type: domain.RewardTon, Amount: 1_000},
			{Type: domain.RewardEnergy, Amount: 100},
			{Type: domain.RewardCoins, Amount: 50_000},
			{Type: domain.RewardTon, Amount: 2_500},
		}), true
	}
	return nil, false
}

func buildGrid(rewards []domain.Reward) []SlotSpec {
	slots := make([]SlotSpec, 0, GridSize)
	for i, r := range rewards {
		pos := i + 1
		s := SlotSpec{Position: pos, Reward: r, Unlocked: pos <= FreeSlots}
		if pos == GatewayPosition {
			s.PriceTonUnits = GatewayPriceTonUnits
		}
		slots = append(slots, s)
	}
	return slots
}

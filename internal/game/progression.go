package game

// MaxLevel caps the progression curve; XP keeps accumulating past it.
const MaxLevel = 50

// PurchaseXP is the experience granted for spending on a card upgrade:
// 15% of the coin price, or 15% of the TON price in 0.0001 TON units when
// the card is priced in TON.
func PurchaseXP(priceCoins, priceTonUnits int64) int64 {
	if priceCoins > 0 {
		return priceCoins * 15 / 100
	}
	return priceTonUnits * 15 / 100
}

// TapXP is the experience granted per tap at the given mining rate.
func TapXP(miningRate int64) int64 {
	return miningRate / 10
}

// LevelThreshold returns the total XP needed to advance past lvl. The first
// level-up costs 100,000 XP and every further level adds 50,000 plus 25,000
// per level reached.
func LevelThreshold(lvl int) int64 {
	req := int64(100_000)
	for l := 2; l <= lvl; l++ {
		req += 50_000 + int64(l)*25_000
	}
	return req
}

// ApplyXP adds gain to xp and walks the level forward while the running
// total clears each threshold, stopping at MaxLevel.
func ApplyXP(xp int64, level int, gain int64) (int64, int) {
	newXP := xp + gain
	newLevel := level
	if newLevel < 1 {
		newLevel = 1
	}
	for newLevel < MaxLevel && newXP >= LevelThreshold(newLevel) {
		newLevel++
	}
	return newXP, newLevel
}

// LevelForXP re-derives the level implied by a raw XP total.
func LevelForXP(xp int64) int {
	_, lvl := ApplyXP(0, 1, xp)
	return lvl
}

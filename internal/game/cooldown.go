package game

import "time"

const (
	// CardCooldown locks a card after an upgrade.
	CardCooldown = 3 * time.Hour
	// MissionCooldown is the wait before a claimed mission resets.
	MissionCooldown = 12 * time.Hour
	// SkipCooldownStars is the star price of clearing a card cooldown early.
	SkipCooldownStars = 10
	// EnergyRegenInterval restores one energy point.
	EnergyRegenInterval = time.Minute
)

// StartCooldown returns the unlock timestamp for a cooldown beginning now.
func StartCooldown(now time.Time, d time.Duration) *time.Time {
	t := now.Add(d)
	return &t
}

// Locked reports whether the cooldown is still running. A nil timer or a
// timer at or before now reads as unlocked.
func Locked(unlock *time.Time, now time.Time) bool {
	return unlock != nil && now.Before(*unlock)
}

// Remaining returns how long until the cooldown clears, zero if unlocked.
func Remaining(unlock *time.Time, now time.Time) time.Duration {
	if !Locked(unlock, now) {
		return 0
	}
	return unlock.Sub(now)
}

// RegenEnergy applies lazy energy regeneration: one point per elapsed
// interval since last, clamped at max. It returns the new energy and the
// timestamp regeneration has been accounted up to.
func RegenEnergy(energy, maxEnergy int, last, now time.Time) (int, time.Time) {
	if energy >= maxEnergy || !now.After(last) {
		return energy, last
	}
	ticks := int(now.Sub(last) / EnergyRegenInterval)
	if ticks <= 0 {
		return energy, last
	}
	if energy+ticks >= maxEnergy {
		return maxEnergy, now
	}
	return energy + ticks, last.Add(time.Duration(ticks) * EnergyRegenInterval)
}

package game

import (
	"errors"

	"bitrush_backend/internal/domain"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidState      = errors.New("invalid state")
)

// Balance mirrors the currency fields of a player's stats row.
type Balance struct {
	Coins     int64
	Stars     int64
	TonUnits  int64
	Spins     int64
	Energy    int
	MaxEnergy int
}

// Delta is a signed per-currency change applied as a whole.
type Delta struct {
	Coins    int64
	Stars    int64
	TonUnits int64
	Spins    int64
	Energy   int
}

// Cost lists required amounts per currency (all non-negative).
type Cost struct {
	Coins    int64
	Stars    int64
	TonUnits int64
	Spins    int64
	Energy   int
}

// Delta converts a cost into the debit that pays it.
func (c Cost) Delta() Delta {
	return Delta{
		Coins:    -c.Coins,
		Stars:    -c.Stars,
		TonUnits: -c.TonUnits,
		Spins:    -c.Spins,
		Energy:   -c.Energy,
	}
}

// CanAfford reports whether every required currency is covered.
func CanAfford(b Balance, c Cost) bool {
	return b.Coins >= c.Coins &&
		b.Stars >= c.Stars &&
		b.TonUnits >= c.TonUnits &&
		b.Spins >= c.Spins &&
		int64(b.Energy) >= int64(c.Energy)
}

// Apply adds d to b all-or-nothing: if any resulting currency would go
// negative nothing is applied and ErrInsufficientFunds is returned. Energy
// credits clamp at MaxEnergy.
func Apply(b Balance, d Delta) (Balance, error) {
	next := Balance{
		Coins:     b.Coins + d.Coins,
		Stars:     b.Stars + d.Stars,
		TonUnits:  b.TonUnits + d.TonUnits,
		Spins:     b.Spins + d.Spins,
		Energy:    b.Energy + d.Energy,
		MaxEnergy: b.MaxEnergy,
	}
	if next.Coins < 0 || next.Stars < 0 || next.TonUnits < 0 || next.Spins < 0 || next.Energy < 0 {
		return b, ErrInsufficientFunds
	}
	if next.Energy > next.MaxEnergy {
		next.Energy = next.MaxEnergy
	}
	return next, nil
}

// RewardDelta maps a typed reward onto the credit that pays it out.
func RewardDelta(r domain.Reward) Delta {
	switch r.Type {
	case domain.RewardCoins:
		return Delta{Coins: r.Amount}
	case domain.RewardStars:
		return Delta{Stars: r.Amount}
	case domain.RewardSpins:
		return Delta{Spins: r.Amount}
	case domain.RewardEnergy:
		return Delta{Energy: int(r.Amount)}
	case domain.RewardTon:
		return Delta{TonUnits: r.Amount}
	}
	return Delta{}
}

package game

import (
	"errors"
	"testing"

	"bitrush_backend/internal/domain"
)

func TestApplyAllOrNothing(t *testing.T) {
	start := Balance{Coins: 100, Stars: 5, Energy: 10, MaxEnergy: 100}

	got, err := Apply(start, Delta{Coins: -50, Stars: -10})
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if got != start {
		t.Errorf("failed apply mutated balance: %+v", got)
	}

	got, err = Apply(start, Delta{Coins: -50, Stars: -5})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got.Coins != 50 || got.Stars != 0 {
		t.Errorf("got coins=%d stars=%d, want 50/0", got.Coins, got.Stars)
	}
}

func TestApplyEnergyClamp(t *testing.T) {
	b := Balance{Energy: 90, MaxEnergy: 100}
	got, err := Apply(b, Delta{Energy: 50})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got.Energy != 100 {
		t.Errorf("energy = %d, want clamp at 100", got.Energy)
	}

	if _, err := Apply(b, Delta{Energy: -91}); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("expected ErrInsufficientFunds on energy debit, got %v", err)
	}
}

func TestCanAfford(t *testing.T) {
	b := Balance{Coins: 1_000, Stars: 10, TonUnits: 5_000, Spins: 1, Energy: 20, MaxEnergy: 100}
	cases := []struct {
		name string
		cost Cost
		want bool
	}{
		{"free", Cost{}, true},
		{"exact coins", Cost{Coins: 1_000}, true},
		{"over coins", Cost{Coins: 1_001}, false},
		{"mixed ok", Cost{Stars: 10, Spins: 1}, true},
		{"ton short", Cost{TonUnits: 5_001}, false},
		{"energy short", Cost{Energy: 21}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanAfford(b, tc.cost); got != tc.want {
				t.Errorf("CanAfford(%+v) = %v, want %v", tc.cost, got, tc.want)
			}
		})
	}
}

func TestRewardDelta(t *testing.T) {
	cases := []struct {
		reward domain.Reward
		want   Delta
	}{
		{domain.Reward{Type: domain.RewardCoins, Amount: 500}, Delta{Coins: 500}},
		{domain.Reward{Type: domain.RewardStars, Amount: 10}, Delta{Stars: 10}},
		{domain.Reward{Type: domain.RewardSpins, Amount: 2}, Delta{Spins: 2}},
		{domain.Reward{Type: domain.RewardEnergy, Amount: 50}, Delta{Energy: 50}},
		{domain.Reward{Type: domain.RewardTon, Amount: 1_000}, Delta{TonUnits: 1_000}},
		{domain.Reward{Type: "bogus", Amount: 9}, Delta{}},
	}
	for _, tc := range cases {
		if got := RewardDelta(tc.reward); got != tc.want {
			t.Errorf("RewardDelta(%+v) = %+v, want %+v", tc.reward, got, tc.want)
		}
	}
}

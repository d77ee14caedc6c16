package game

import (
	"math/rand"
	"testing"

	"bitrush_backend/internal/domain"
)

func TestWheelDeterministicWithSeed(t *testing.T) {
	a := NewWheel(WheelPrizes(), rand.New(rand.NewSource(42)))
	b := NewWheel(WheelPrizes(), rand.New(rand.NewSource(42)))
	for i := 0; i < 100; i++ {
		pa, pb := a.Spin(), b.Spin()
		if pa.Label != pb.Label {
			t.Fatalf("spin %d diverged: %q vs %q", i, pa.Label, pb.Label)
		}
	}
}

func TestWheelCoversAllSegments(t *testing.T) {
	w := NewWheel(WheelPrizes(), rand.New(rand.NewSource(1)))
	seen := make(map[string]int)
	for i := 0; i < 10_000; i++ {
		seen[w.Spin().Label]++
	}
	for _, p := range w.Prizes() {
		if seen[p.Label] == 0 {
			t.Errorf("segment %q never drawn", p.Label)
		}
	}
	if len(seen) != len(w.Prizes()) {
		t.Errorf("drew %d distinct segments, want %d", len(seen), len(w.Prizes()))
	}
}

func TestWheelWeightedBias(t *testing.T) {
	prizes := []Prize{
		{Label: "common", Reward: domain.Reward{Type: domain.RewardCoins, Amount: 1}, Weight: 9},
		{Label: "rare", Reward: domain.Reward{Type: domain.RewardStars, Amount: 1}, Weight: 1},
	}
	w := NewWheel(prizes, rand.New(rand.NewSource(7)))
	counts := make(map[string]int)
	for i := 0; i < 10_000; i++ {
		counts[w.Spin().Label]++
	}
	if counts["common"] < 8_000 {
		t.Errorf("common drawn %d times out of 10000, expected around 9000", counts["common"])
	}
}

func TestWheelPrizeTable(t *testing.T) {
	prizes := WheelPrizes()
	if len(prizes) != 8 {
		t.Fatalf("wheel has %d segments, want 8", len(prizes))
	}
	for _, p := range prizes {
		if !p.Reward.WellFormed() {
			t.Errorf("segment %q has malformed reward %+v", p.Label, p.Reward)
		}
		if p.Weight != 1 {
			t.Errorf("segment %q weight = %d, default wheel is uniform", p.Label, p.Weight)
		}
	}
}

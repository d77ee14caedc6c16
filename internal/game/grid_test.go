package game

import (
	"errors"
	"testing"

	"bitrush_backend/internal/domain"
)

func TestStateOf(t *testing.T) {
	cases := []struct {
		name string
		card domain.FloatingCard
		want SlotState
	}{
		{"locked", domain.FloatingCard{}, SlotLocked},
		{"unlocked", domain.FloatingCard{IsUnlocked: true}, SlotUnlocked},
		{"claimed", domain.FloatingCard{IsUnlocked: true, IsClaimed: true}, SlotClaimed},
		{"claimed wins over locked", domain.FloatingCard{IsClaimed: true}, SlotClaimed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StateOf(tc.card); got != tc.want {
				t.Errorf("StateOf = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCanClaim(t *testing.T) {
	ok := domain.FloatingCard{
		IsUnlocked:   true,
		RewardType:   domain.RewardCoins,
		RewardAmount: 1_000,
	}
	if err := CanClaim(ok); err != nil {
		t.Errorf("CanClaim on unlocked slot: %v", err)
	}

	locked := ok
	locked.IsUnlocked = false
	if err := CanClaim(locked); !errors.Is(err, ErrInvalidState) {
		t.Errorf("locked slot: got %v, want ErrInvalidState", err)
	}

	claimed := ok
	claimed.IsClaimed = true
	if err := CanClaim(claimed); !errors.Is(err, ErrInvalidState) {
		t.Errorf("claimed slot: got %v, want ErrInvalidState", err)
	}

	malformed := ok
	malformed.RewardAmount = 0
	if err := CanClaim(malformed); !errors.Is(err, ErrInvalidState) {
		t.Errorf("malformed reward: got %v, want ErrInvalidState", err)
	}
}

func TestCascadePositions(t *testing.T) {
	got := CascadePositions()
	want := []int{5, 6, 7, 8, 9}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestFloatingGridTemplates(t *testing.T) {
	for _, col := range []string{domain.CollectionExplorerStash, domain.CollectionCryptoCavern} {
		slots, ok := FloatingGrid(col)
		if !ok {
			t.Fatalf("missing grid for %s", col)
		}
		if len(slots) != GridSize {
			t.Fatalf("%s: %d slots, want %d", col, len(slots), GridSize)
		}
		for _, s := range slots {
			if !s.Reward.WellFormed() {
				t.Errorf("%s slot %d has malformed reward %+v", col, s.Position, s.Reward)
			}
			if wantFree := s.Position <= FreeSlots; s.Unlocked != wantFree {
				t.Errorf("%s slot %d unlocked=%v, want %v", col, s.Position, s.Unlocked, wantFree)
			}
			if s.Position == GatewayPosition && s.PriceTonUnits != GatewayPriceTonUnits {
				t.Errorf("%s gateway price = %d, want %d", col, s.PriceTonUnits, GatewayPriceTonUnits)
			}
			if s.Position != GatewayPosition && s.PriceTonUnits != 0 {
				t.Errorf("%s slot %d has a price, only the gateway should", col, s.Position)
			}
		}
	}

	if _, ok := FloatingGrid("no_such_collection"); ok {
		t.Error("unknown collection should not resolve")
	}
}

package game

import "testing"

func TestPurchaseXP(t *testing.T) {
	cases := []struct {
		name       string
		priceCoins int64
		priceTon   int64
		want       int64
	}{
		{"coin card", 1_000, 0, 150},
		{"large coin card", 100_000, 0, 15_000},
		{"ton card half", 0, 5_000, 750},
		{"ton card two", 0, 20_000, 3_000},
		{"coin price wins when both set", 1_000, 20_000, 150},
		{"floors down", 9, 0, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PurchaseXP(tc.priceCoins, tc.priceTon)
			if got != tc.want {
				t.Errorf("PurchaseXP(%d, %d) = %d, want %d", tc.priceCoins, tc.priceTon, got, tc.want)
			}
		})
	}
}

func TestTapXP(t *testing.T) {
	if got := TapXP(3); got != 0 {
		t.Errorf("TapXP(3) = %d, want 0", got)
	}
	if got := TapXP(25); got != 2 {
		t.Errorf("TapXP(25) = %d, want 2", got)
	}
}

func TestLevelThreshold(t *testing.T) {
	cases := []struct {
		lvl  int
		want int64
	}{
		{1, 100_000},
		{2, 200_000},
		{3, 325_000},
		{4, 475_000},
	}
	for _, tc := range cases {
		if got := LevelThreshold(tc.lvl); got != tc.want {
			t.Errorf("LevelThreshold(%d) = %d, want %d", tc.lvl, got, tc.want)
		}
	}
}

func TestApplyXP(t *testing.T) {
	cases := []struct {
		name      string
		xp        int64
		level     int
		gain      int64
		wantXP    int64
		wantLevel int
	}{
		{"no level up", 0, 1, 150, 150, 1},
		{"exact threshold levels", 99_999, 1, 1, 100_000, 2},
		{"multi level jump", 0, 1, 325_000, 325_000, 3},
		{"xp keeps counting at cap", 0, MaxLevel, 1_000_000, 1_000_000, MaxLevel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			xp, lvl := ApplyXP(tc.xp, tc.level, tc.gain)
			if xp != tc.wantXP || lvl != tc.wantLevel {
				t.Errorf("ApplyXP(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tc.xp, tc.level, tc.gain, xp, lvl, tc.wantXP, tc.wantLevel)
			}
		})
	}
}

func TestLevelForXP(t *testing.T) {
	if got := LevelForXP(0); got != 1 {
		t.Errorf("LevelForXP(0) = %d, want 1", got)
	}
	if got := LevelForXP(200_000); got != 3 {
		t.Errorf("LevelForXP(200000) = %d, want 3", got)
	}
}

// Walked end to end: a player with 5000 coins and rate 1 buys a 1000 coin
// card with +2 bonus, leaving 4000 coins, rate 3, 150 xp, still level 1.
func TestUpgradePurchaseFlow(t *testing.T) {
	bal := Balance{Coins: 5_000, Energy: 100, MaxEnergy: 100}
	cost := Cost{Coins: 1_000}
	if !CanAfford(bal, cost) {
		t.Fatal("expected purchase to be affordable")
	}
	bal, err := Apply(bal, cost.Delta())
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	rate := int64(1) + 2
	xp, lvl := ApplyXP(0, 1, PurchaseXP(1_000, 0))
	if bal.Coins != 4_000 || rate != 3 || xp != 150 || lvl != 1 {
		t.Errorf("got coins=%d rate=%d xp=%d level=%d, want 4000/3/150/1",
			bal.Coins, rate, xp, lvl)
	}
}

package game

import (
	"testing"
	"time"
)

func TestLocked(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	if Locked(nil, now) {
		t.Error("nil timer should read unlocked")
	}
	if !Locked(&future, now) {
		t.Error("future timer should read locked")
	}
	if Locked(&past, now) {
		t.Error("past timer should read unlocked")
	}
	// The boundary itself is unlocked.
	if Locked(&now, now) {
		t.Error("timer equal to now should read unlocked")
	}
}

func TestRemaining(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	unlock := StartCooldown(now, CardCooldown)
	if got := Remaining(unlock, now); got != 3*time.Hour {
		t.Errorf("Remaining = %v, want 3h", got)
	}
	if got := Remaining(unlock, now.Add(4*time.Hour)); got != 0 {
		t.Errorf("Remaining after expiry = %v, want 0", got)
	}
	if got := Remaining(nil, now); got != 0 {
		t.Errorf("Remaining with nil timer = %v, want 0", got)
	}
}

func TestRegenEnergy(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name     string
		energy   int
		elapsed  time.Duration
		wantE    int
		wantLast time.Duration
	}{
		{"no time passed", 50, 0, 50, 0},
		{"under a minute", 50, 59 * time.Second, 50, 0},
		{"one tick", 50, time.Minute, 51, time.Minute},
		{"partial tick kept", 50, 150 * time.Second, 52, 2 * time.Minute},
		{"clamps at max", 95, time.Hour, 100, time.Hour},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, last := RegenEnergy(tc.energy, 100, base, base.Add(tc.elapsed))
			if e != tc.wantE {
				t.Errorf("energy = %d, want %d", e, tc.wantE)
			}
			if want := base.Add(tc.wantLast); !last.Equal(want) {
				t.Errorf("last = %v, want %v", last, want)
			}
		})
	}

	// Full energy never advances the marker.
	e, last := RegenEnergy(100, 100, base, base.Add(time.Hour))
	if e != 100 || !last.Equal(base) {
		t.Errorf("full energy regen = (%d, %v), want (100, %v)", e, last, base)
	}
}

package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestEntityJSONKeysAreSnakeCase(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	cases := []struct {
		name string
		v    interface{}
		keys []string
	}{
		{"stats", Stats{UserID: 7, LastEnergyUpdate: ts},
			[]string{"user_id", "coins", "ton_units", "spins", "energy", "max_energy", "last_energy_update", "xp", "level", "mining_rate"}},
		{"card", Card{CardName: "Basic Miner", UnlockTimer: &ts},
			[]string{"card_name", "card_type", "mining_bonus", "price_coins", "price_ton_units", "unlock_timer"}},
		{"floating card", FloatingCard{Position: 4},
			[]string{"collection", "position", "is_unlocked", "is_claimed", "reward_type", "reward_amount"}},
		{"mission", Mission{MissionName: "Tap Frenzy"},
			[]string{"mission_name", "mission_type", "current_value", "target_value", "is_completed", "is_claimed"}},
	}

	for _, tc := range cases {
		b, err := json.Marshal(tc.v)
		if err != nil {
			t.Fatalf("%s: marshal: %v", tc.name, err)
		}
		var m map[string]interface{}
		if err := json.Unmarshal(b, &m); err != nil {
			t.Fatalf("%s: unmarshal: %v", tc.name, err)
		}
		for _, key := range tc.keys {
			if _, ok := m[key]; !ok {
				t.Errorf("%s: missing key %q in %s", tc.name, key, b)
			}
		}
		for key := range m {
			if key[0] >= 'A' && key[0] <= 'Z' {
				t.Errorf("%s: untagged field %q leaked into JSON", tc.name, key)
			}
		}
	}
}

func TestTonDecimal(t *testing.T) {
	cases := []struct {
		units int64
		want  string
	}{
		{0, "0.0000"},
		{1, "0.0001"},
		{20_000, "2.0000"},
		{12_345, "1.2345"},
		{-5_000, "-0.5000"},
	}
	for _, tc := range cases {
		if got := TonDecimal(tc.units); got != tc.want {
			t.Errorf("TonDecimal(%d) = %q, want %q", tc.units, got, tc.want)
		}
	}
}

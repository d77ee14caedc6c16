package domain

import (
	"fmt"
	"time"
)

// Stats is a player's balance sheet plus progression. TON is tracked in
// integer units of 0.0001 TON so ledger math stays exact.
type Stats struct {
	ID               int64     `db:"id" json:"id"`
	UserID           int64     `db:"user_id" json:"user_id"`
	Coins            int64     `db:"coins" json:"coins"`
	Stars            int64     `db:"stars" json:"stars"`
	TonUnits         int64     `db:"ton_units" json:"ton_units"`
	Spins            int64     `db:"spins" json:"spins"`
	Energy           int       `db:"energy" json:"energy"`
	MaxEnergy        int       `db:"max_energy" json:"max_energy"`
	LastEnergyUpdate time.Time `db:"last_energy_update" json:"last_energy_update"`
	XP               int64     `db:"xp" json:"xp"`
	Level            int       `db:"level" json:"level"`
	MiningRate       int64     `db:"mining_rate" json:"mining_rate"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// TonDecimal formats TonUnits as a TON amount string with 4 decimals.
func TonDecimal(units int64) string {
	sign := ""
	if units < 0 {
		sign = "-"
		units = -units
	}
	return fmt.Sprintf("%s%d.%04d", sign, units/10000, units%10000)
}

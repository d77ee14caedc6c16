package repository

import (
	"context"

	"bitrush_backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const statsColumns = `id, user_id, coins, stars, ton_units, spins, energy, max_energy,
	last_energy_update, xp, level, mining_rate, updated_at`

type StatsRepository struct {
	db *pgxpool.Pool
}

func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

func scanStats(row pgx.Row) (*domain.Stats, error) {
	var s domain.Stats
	if err := row.Scan(
		&s.ID, &s.UserID, &s.Coins, &s.Stars, &s.TonUnits, &s.Spins,
		&s.Energy, &s.MaxEnergy, &s.LastEnergyUpdate, &s.XP, &s.Level,
		&s.MiningRate, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetByUserID returns nil without error when the player has no stats row.
func (r *StatsRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Stats, error) {
	s, err := scanStats(r.db.QueryRow(ctx,
		`SELECT `+statsColumns+` FROM user_stats WHERE user_id = $1`, userID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return s, err
}

// GetForUpdate locks the player's stats row inside dbTx. Every balance
// mutation goes through this lock so writes per player are serial.
func (r *StatsRepository) GetForUpdate(ctx context.Context, dbTx pgx.Tx, userID int64) (*domain.Stats, error) {
	return scanStats(dbTx.QueryRow(ctx,
		`SELECT `+statsColumns+` FROM user_stats WHERE user_id = $1 FOR UPDATE`, userID))
}

// Create inserts a fresh stats row with the starting balances.
func (r *StatsRepository) Create(ctx context.Context, userID int64) (*domain.Stats, error) {
	const (
		initialCoins  = 1000
		initialSpins  = 3
		initialEnergy = 100
	)
	return scanStats(r.db.QueryRow(ctx,
		`INSERT INTO user_stats (user_id, coins, spins, energy, max_energy, mining_rate)
		 VALUES ($1, $2, $3, $4, $4, 1)
		 ON CONFLICT (user_id) DO NOTHING
		 RETURNING `+statsColumns,
		userID, initialCoins, initialSpins, initialEnergy,
	))
}

// UpdateTx writes back every mutable stats field inside dbTx.
func (r *StatsRepository) UpdateTx(ctx context.Context, dbTx pgx.Tx, s *domain.Stats) error {
	return dbTx.QueryRow(ctx,
		`UPDATE user_stats
		 SET coins = $2, stars = $3, ton_units = $4, spins = $5,
		     energy = $6, max_energy = $7, last_energy_update = $8,
		     xp = $9, level = $10, mining_rate = $11, updated_at = NOW()
		 WHERE user_id = $1
		 RETURNING updated_at`,
		s.UserID, s.Coins, s.Stars, s.TonUnits, s.Spins,
		s.Energy, s.MaxEnergy, s.LastEnergyUpdate,
		s.XP, s.Level, s.MiningRate,
	).Scan(&s.UpdatedAt)
}

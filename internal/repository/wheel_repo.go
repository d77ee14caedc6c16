package repository

import (
	"context"

	"bitrush_backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WheelRepository struct {
	db *pgxpool.Pool
}

func NewWheelRepository(db *pgxpool.Pool) *WheelRepository {
	return &WheelRepository{db: db}
}

// Get returns nil without error when the player has no wheel row yet.
func (r *WheelRepository) Get(ctx context.Context, userID int64) (*domain.WheelState, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, spins_used, total_rewards_claimed, last_spin, updated_at
		 FROM rewards_wheel
		 WHERE user_id = $1`,
		userID)

	var w domain.WheelState
	if err := row.Scan(&w.ID, &w.UserID, &w.SpinsUsed, &w.TotalRewardsClaimed, &w.LastSpin, &w.UpdatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

func (r *WheelRepository) Create(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO rewards_wheel (user_id)
		 VALUES ($1)
		 ON CONFLICT (user_id) DO NOTHING`,
		userID)
	return err
}

// RecordSpinTx bumps the lifetime counters inside dbTx.
func (r *WheelRepository) RecordSpinTx(ctx context.Context, dbTx pgx.Tx, userID int64) error {
	_, err := dbTx.Exec(ctx,
		`UPDATE rewards_wheel
		 SET spins_used = spins_used + 1,
		     total_rewards_claimed = total_rewards_claimed + 1,
		     last_spin = NOW(),
		     updated_at = NOW()
		 WHERE user_id = $1`,
		userID)
	return err
}

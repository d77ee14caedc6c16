package repository

import (
	"context"
	"time"

	"bitrush_backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dailyColumns = `id, user_id, day, reward_type, reward_amount,
	is_claimed, last_claim_date, streak_count`

type DailyRewardRepository struct {
	db *pgxpool.Pool
}

func NewDailyRewardRepository(db *pgxpool.Pool) *DailyRewardRepository {
	return &DailyRewardRepository{db: db}
}

func scanDaily(row pgx.Row) (*domain.DailyReward, error) {
	var d domain.DailyReward
	if err := row.Scan(
		&d.ID, &d.UserID, &d.Day, &d.RewardType, &d.RewardAmount,
		&d.IsClaimed, &d.LastClaimDate, &d.StreakCount,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DailyRewardRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.DailyReward, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+dailyColumns+` FROM daily_rewards WHERE user_id = $1 ORDER BY day`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.DailyReward
	for rows.Next() {
		d, err := scanDaily(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ListByUserTx reads the full track inside dbTx so streak decisions are
// serialized by the caller's row lock.
func (r *DailyRewardRepository) ListByUserTx(ctx context.Context, dbTx pgx.Tx, userID int64) ([]*domain.DailyReward, error) {
	rows, err := dbTx.Query(ctx,
		`SELECT `+dailyColumns+` FROM daily_rewards WHERE user_id = $1 ORDER BY day`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.DailyReward
	for rows.Next() {
		d, err := scanDaily(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DailyRewardRepository) Create(ctx context.Context, d *domain.DailyReward) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO daily_rewards (user_id, day, reward_type, reward_amount)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, day) DO NOTHING
		 RETURNING id`,
		d.UserID, d.Day, d.RewardType, d.RewardAmount,
	).Scan(&d.ID)
}

// ClaimTx stamps the day claimed with the new streak count.
func (r *DailyRewardRepository) ClaimTx(ctx context.Context, dbTx pgx.Tx, id int64, claimedAt time.Time, streak int) (bool, error) {
	tag, err := dbTx.Exec(ctx,
		`UPDATE daily_rewards
		 SET is_claimed = TRUE, last_claim_date = $2, streak_count = $3
		 WHERE id = $1 AND is_claimed = FALSE`,
		id, claimedAt, streak)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ResetTrackTx clears the whole 7-day track so a new cycle can start.
func (r *DailyRewardRepository) ResetTrackTx(ctx context.Context, dbTx pgx.Tx, userID int64) error {
	_, err := dbTx.Exec(ctx,
		`UPDATE daily_rewards
		 SET is_claimed = FALSE, streak_count = 0
		 WHERE user_id = $1`,
		userID)
	return err
}

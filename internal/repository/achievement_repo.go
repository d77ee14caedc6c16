package repository

import (
	"context"

	"bitrush_backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const achievementColumns = `id, user_id, achievement_name, COALESCE(achievement_description, ''),
	metric, current_value, target_value, is_completed, is_claimed,
	reward_type, reward_amount, updated_at`

type AchievementRepository struct {
	db *pgxpool.Pool
}

func NewAchievementRepository(db *pgxpool.Pool) *AchievementRepository {
	return &AchievementRepository{db: db}
}

func scanAchievement(row pgx.Row) (*domain.Achievement, error) {
	var a domain.Achievement
	if err := row.Scan(
		&a.ID, &a.UserID, &a.Name, &a.Description, &a.Metric, &a.CurrentValue, &a.TargetValue,
		&a.IsCompleted, &a.IsClaimed, &a.RewardType, &a.RewardAmount, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AchievementRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Achievement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+achievementColumns+` FROM achievements WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Achievement
	for rows.Next() {
		a, err := scanAchievement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// GetByName returns nil without error when the achievement row is missing.
func (r *AchievementRepository) GetByName(ctx context.Context, userID int64, name string) (*domain.Achievement, error) {
	a, err := scanAchievement(r.db.QueryRow(ctx,
		`SELECT `+achievementColumns+` FROM achievements WHERE user_id = $1 AND achievement_name = $2`,
		userID, name))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return a, err
}

func (r *AchievementRepository) Create(ctx context.Context, a *domain.Achievement) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO achievements
		     (user_id, achievement_name, achievement_description, metric,
		      current_value, target_value, reward_type, reward_amount)
		 VALUES ($1, $2, $3, $4, 0, $5, $6, $7)
		 ON CONFLICT (user_id, achievement_name) DO NOTHING
		 RETURNING id, updated_at`,
		a.UserID, a.Name, a.Description, a.Metric, a.TargetValue, a.RewardType, a.RewardAmount,
	).Scan(&a.ID, &a.UpdatedAt)
}

// SetProgress records the absolute metric value. Progress only moves
// forward and completion is never un-set.
func (r *AchievementRepository) SetProgress(ctx context.Context, userID int64, metric domain.AchievementMetric, value int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE achievements
		 SET current_value = GREATEST(current_value, LEAST($3, target_value)),
		     is_completed = is_completed OR $3 >= target_value,
		     updated_at = NOW()
		 WHERE user_id = $1 AND metric = $2 AND is_claimed = FALSE`,
		userID, metric, value)
	return err
}

// ClaimTx marks a completed achievement claimed, permanently.
func (r *AchievementRepository) ClaimTx(ctx context.Context, dbTx pgx.Tx, id int64) (bool, error) {
	tag, err := dbTx.Exec(ctx,
		`UPDATE achievements
		 SET is_claimed = TRUE, updated_at = NOW()
		 WHERE id = $1 AND is_completed = TRUE AND is_claimed = FALSE`,
		id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

package repository

import (
	"context"
	"time"

	"bitrush_backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const missionColumns = `id, user_id, mission_name, mission_type, current_value, target_value,
	is_completed, is_claimed, unlock_timer, reward_type, reward_amount, updated_at`

type MissionRepository struct {
	db *pgxpool.Pool
}

func NewMissionRepository(db *pgxpool.Pool) *MissionRepository {
	return &MissionRepository{db: db}
}

func scanMission(row pgx.Row) (*domain.Mission, error) {
	var m domain.Mission
	if err := row.Scan(
		&m.ID, &m.UserID, &m.MissionName, &m.MissionType, &m.CurrentValue, &m.TargetValue,
		&m.IsCompleted, &m.IsClaimed, &m.UnlockTimer, &m.RewardType, &m.RewardAmount, &m.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MissionRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Mission, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+missionColumns+` FROM daily_missions WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var missions []*domain.Mission
	for rows.Next() {
		m, err := scanMission(rows)
		if err != nil {
			return nil, err
		}
		missions = append(missions, m)
	}
	return missions, rows.Err()
}

// GetByName returns nil without error when the mission row does not exist.
func (r *MissionRepository) GetByName(ctx context.Context, userID int64, name string) (*domain.Mission, error) {
	m, err := scanMission(r.db.QueryRow(ctx,
		`SELECT `+missionColumns+` FROM daily_missions WHERE user_id = $1 AND mission_name = $2`,
		userID, name))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return m, err
}

func (r *MissionRepository) Create(ctx context.Context, m *domain.Mission) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO daily_missions
		     (user_id, mission_name, mission_type, current_value, target_value,
		      reward_type, reward_amount)
		 VALUES ($1, $2, $3, 0, $4, $5, $6)
		 ON CONFLICT (user_id, mission_name) DO NOTHING
		 RETURNING id, updated_at`,
		m.UserID, m.MissionName, m.MissionType, m.TargetValue, m.RewardType, m.RewardAmount,
	).Scan(&m.ID, &m.UpdatedAt)
}

// AddProgress bumps every unclaimed, unlocked mission of the given type and
// flips completion when the target is reached.
func (r *MissionRepository) AddProgress(ctx context.Context, userID int64, mtype domain.MissionType, delta int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE daily_missions
		 SET current_value = LEAST(current_value + $3, target_value),
		     is_completed = is_completed OR current_value + $3 >= target_value,
		     updated_at = NOW()
		 WHERE user_id = $1 AND mission_type = $2 AND is_claimed = FALSE`,
		userID, mtype, delta)
	return err
}

// ClaimTx marks a completed mission claimed and starts its reset cooldown.
func (r *MissionRepository) ClaimTx(ctx context.Context, dbTx pgx.Tx, id int64, unlockAt time.Time) (bool, error) {
	tag, err := dbTx.Exec(ctx,
		`UPDATE daily_missions
		 SET is_claimed = TRUE, unlock_timer = $2, updated_at = NOW()
		 WHERE id = $1 AND is_completed = TRUE AND is_claimed = FALSE`,
		id, unlockAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ResetExpired re-arms claimed missions whose cooldown has passed.
func (r *MissionRepository) ResetExpired(ctx context.Context, userID int64, now time.Time) error {
	_, err := r.db.Exec(ctx,
		`UPDATE daily_missions
		 SET current_value = 0, is_completed = FALSE, is_claimed = FALSE,
		     unlock_timer = NULL, updated_at = NOW()
		 WHERE user_id = $1 AND is_claimed = TRUE AND unlock_timer <= $2`,
		userID, now)
	return err
}

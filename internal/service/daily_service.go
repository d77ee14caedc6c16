package service

import (
	"context"
	"time"

	"bitrush_backend/internal/domain"
	"bitrush_backend/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// streakGrace is how long a streak survives past the last claim before the
// 7-day track resets to day one.
const streakGrace = 48 * time.Hour

// DailyRewardService runs the 7-day login reward track.
type DailyRewardService struct {
	db       *pgxpool.Pool
	stats    *repository.StatsRepository
	daily    *repository.DailyRewardRepository
	txRepo   *repository.TransactionRepository
	progress *ProgressService
}

func NewDailyRewardService(db *pgxpool.Pool, progress *ProgressService) *DailyRewardService {
	return &DailyRewardService{
		db:       db,
		stats:    repository.NewStatsRepository(db),
		daily:    repository.NewDailyRewardRepository(db),
		txRepo:   repository.NewTransactionRepository(db),
		progress: progress,
	}
}

func (s *DailyRewardService) List(ctx context.Context, userID int64) ([]*domain.DailyReward, error) {
	return s.daily.ListByUser(ctx, userID)
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// Claim collects the next day of the track. One claim per calendar day; a
// gap of more than two days breaks the streak and the track starts over.
func (s *DailyRewardService) Claim(ctx context.Context, userID int64) (*domain.Stats, *domain.DailyReward, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	st, err := s.stats.GetForUpdate(ctx, tx, userID)
	if err != nil {
		return nil, nil, err
	}

	// The track is read under the stats lock, so two concurrent claims see
	// each other's flags and only one can decide to reset the streak.
	rows, err := s.daily.ListByUserTx(ctx, tx, userID)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, ErrNotFound
	}

	now := time.Now()
	var lastClaimed *domain.DailyReward
	for _, d := range rows {
		if d.IsClaimed && (lastClaimed == nil || d.Day > lastClaimed.Day) {
			lastClaimed = d
		}
	}

	reset := false
	nextDay := 1
	if lastClaimed != nil && lastClaimed.LastClaimDate != nil {
		if sameCalendarDay(*lastClaimed.LastClaimDate, now) {
			return nil, nil, ErrAlreadyClaimed
		}
		switch {
		case now.Sub(*lastClaimed.LastClaimDate) > streakGrace:
			reset = true
		case lastClaimed.Day >= len(rows):
			reset = true
		default:
			nextDay = lastClaimed.Day + 1
		}
	}

	if reset {
		if err := s.daily.ResetTrackTx(ctx, tx, userID); err != nil {
			return nil, nil, err
		}
	}

	var target *domain.DailyReward
	for _, d := range rows {
		if d.Day == nextDay {
			target = d
			break
		}
	}
	if target == nil {
		return nil, nil, ErrInvalidState
	}

	claimed, err := s.daily.ClaimTx(ctx, tx, target.ID, now, nextDay)
	if err != nil {
		return nil, nil, err
	}
	if !claimed && !reset {
		return nil, nil, ErrAlreadyClaimed
	}

	if err := creditReward(st, target.Reward()); err != nil {
		return nil, nil, err
	}
	if err := s.stats.UpdateTx(ctx, tx, st); err != nil {
		return nil, nil, err
	}
	entry := &domain.Transaction{
		UserID: userID,
		Type:   "daily_reward",
		Amount: target.RewardAmount,
		Meta: map[string]interface{}{
			"day":         nextDay,
			"reward_type": string(target.RewardType),
		},
	}
	if err := s.txRepo.CreateWithTx(ctx, tx, entry); err != nil {
		return nil, nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, nil, err
	}

	target.IsClaimed = true
	target.LastClaimDate = &now
	target.StreakCount = nextDay

	s.progress.AfterReward(userID, st)
	return st, target, nil
}

package service

import (
	"context"
	"errors"
	"math/rand"

	"bitrush_backend/internal/domain"
	"bitrush_backend/internal/game"
	"bitrush_backend/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// WheelService spends spin tokens on the reward wheel.
type WheelService struct {
	db       *pgxpool.Pool
	stats    *repository.StatsRepository
	wheel    *repository.WheelRepository
	txRepo   *repository.TransactionRepository
	progress *ProgressService
	picker   *game.Wheel
}

// NewWheelService builds the service over the default prize table. A nil
// rng keeps the wheel random; tests pass a seeded source.
func NewWheelService(db *pgxpool.Pool, progress *ProgressService, rng *rand.Rand) *WheelService {
	return &WheelService{
		db:       db,
		stats:    repository.NewStatsRepository(db),
		wheel:    repository.NewWheelRepository(db),
		txRepo:   repository.NewTransactionRepository(db),
		progress: progress,
		picker:   game.NewWheel(game.WheelPrizes(), rng),
	}
}

// Info returns the prize table in wheel order.
func (s *WheelService) Info() []game.Prize {
	return s.picker.Prizes()
}

// State returns the player's lifetime wheel counters.
func (s *WheelService) State(ctx context.Context, userID int64) (*domain.WheelState, error) {
	w, err := s.wheel.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrNotFound
	}
	return w, nil
}

// SpinResult is what one wheel spin settled to.
type SpinResult struct {
	Prize game.Prize    `json:"prize"`
	Stats *domain.Stats `json:"stats"`
}

// Spin consumes one spin token, draws a prize and credits it, all in one
// transaction. A "spins" prize nets the token back plus the prize amount.
func (s *WheelService) Spin(ctx context.Context, userID int64) (*SpinResult, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	st, err := s.stats.GetForUpdate(ctx, tx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if st.Spins <= 0 {
		return nil, ErrNoSpinsAvailable
	}

	prize := s.picker.Spin()

	delta := game.RewardDelta(prize.Reward)
	delta.Spins-- // the token spent on this draw
	bal, err := game.Apply(balanceOf(st), delta)
	if err != nil {
		return nil, err
	}
	applyBalance(st, bal)

	if err := s.wheel.RecordSpinTx(ctx, tx, userID); err != nil {
		return nil, err
	}
	if err := s.stats.UpdateTx(ctx, tx, st); err != nil {
		return nil, err
	}
	entry := &domain.Transaction{
		UserID: userID,
		Type:   "wheel_prize",
		Amount: prize.Reward.Amount,
		Meta: map[string]interface{}{
			"prize":       prize.Label,
			"reward_type": string(prize.Reward.Type),
		},
	}
	if err := s.txRepo.CreateWithTx(ctx, tx, entry); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	s.progress.AfterSpin(userID, st)
	return &SpinResult{Prize: prize, Stats: st}, nil
}

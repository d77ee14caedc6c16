package service

import (
	"context"
	"errors"
	"time"

	"bitrush_backend/internal/domain"
	"bitrush_backend/internal/game"
	"bitrush_backend/internal/logger"
	"bitrush_backend/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MissionService claims missions and achievements.
type MissionService struct {
	db           *pgxpool.Pool
	stats        *repository.StatsRepository
	missions     *repository.MissionRepository
	achievements *repository.AchievementRepository
	txRepo       *repository.TransactionRepository
}

func NewMissionService(db *pgxpool.Pool) *MissionService {
	return &MissionService{
		db:           db,
		stats:        repository.NewStatsRepository(db),
		missions:     repository.NewMissionRepository(db),
		achievements: repository.NewAchievementRepository(db),
		txRepo:       repository.NewTransactionRepository(db),
	}
}

func (s *MissionService) ListMissions(ctx context.Context, userID int64) ([]*domain.Mission, error) {
	if err := s.missions.ResetExpired(ctx, userID, time.Now()); err != nil {
		return nil, err
	}
	return s.missions.ListByUser(ctx, userID)
}

func (s *MissionService) ListAchievements(ctx context.Context, userID int64) ([]*domain.Achievement, error) {
	return s.achievements.ListByUser(ctx, userID)
}

// ClaimMission pays out a completed mission and arms its 12 hour reset.
func (s *MissionService) ClaimMission(ctx context.Context, userID int64, name string) (*domain.Stats, error) {
	if err := s.missions.ResetExpired(ctx, userID, time.Now()); err != nil {
		return nil, err
	}
	m, err := s.missions.GetByName(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNotFound
	}
	if m.IsClaimed {
		return nil, ErrAlreadyClaimed
	}
	if !m.IsCompleted {
		return nil, ErrNotCompleted
	}
	if !m.Reward().WellFormed() {
		return nil, ErrInvalidState
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	st, err := s.stats.GetForUpdate(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	claimed, err := s.missions.ClaimTx(ctx, tx, m.ID, time.Now().Add(game.MissionCooldown))
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, ErrAlreadyClaimed
	}

	if err := creditReward(st, m.Reward()); err != nil {
		return nil, err
	}
	if err := s.stats.UpdateTx(ctx, tx, st); err != nil {
		return nil, err
	}
	entry := &domain.Transaction{
		UserID: userID,
		Type:   "mission_reward",
		Amount: m.RewardAmount,
		Meta:   map[string]interface{}{"mission": m.MissionName, "reward_type": string(m.RewardType)},
	}
	if err := s.txRepo.CreateWithTx(ctx, tx, entry); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return st, nil
}

// ClaimAchievement pays out a completed achievement. One shot: the claimed
// flag never resets.
func (s *MissionService) ClaimAchievement(ctx context.Context, userID int64, name string) (*domain.Stats, error) {
	a, err := s.achievements.GetByName(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}
	if a.IsClaimed {
		return nil, ErrAlreadyClaimed
	}
	if !a.IsCompleted {
		return nil, ErrNotCompleted
	}
	if !a.Reward().WellFormed() {
		return nil, ErrInvalidState
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	st, err := s.stats.GetForUpdate(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	claimed, err := s.achievements.ClaimTx(ctx, tx, a.ID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, ErrAlreadyClaimed
	}

	if err := creditReward(st, a.Reward()); err != nil {
		return nil, err
	}
	if err := s.stats.UpdateTx(ctx, tx, st); err != nil {
		return nil, err
	}
	entry := &domain.Transaction{
		UserID: userID,
		Type:   "achievement_reward",
		Amount: a.RewardAmount,
		Meta:   map[string]interface{}{"achievement": a.Name, "reward_type": string(a.RewardType)},
	}
	if err := s.txRepo.CreateWithTx(ctx, tx, entry); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return st, nil
}

// creditReward applies a reward onto locked stats, clamping energy.
func creditReward(st *domain.Stats, r domain.Reward) error {
	bal, err := game.Apply(balanceOf(st), game.RewardDelta(r))
	if err != nil {
		if errors.Is(err, game.ErrInsufficientFunds) {
			return ErrInsufficientFunds
		}
		return err
	}
	applyBalance(st, bal)
	return nil
}

func balanceOf(st *domain.Stats) game.Balance {
	return game.Balance{
		Coins:     st.Coins,
		Stars:     st.Stars,
		TonUnits:  st.TonUnits,
		Spins:     st.Spins,
		Energy:    st.Energy,
		MaxEnergy: st.MaxEnergy,
	}
}

func applyBalance(st *domain.Stats, b game.Balance) {
	st.Coins = b.Coins
	st.Stars = b.Stars
	st.TonUnits = b.TonUnits
	st.Spins = b.Spins
	st.Energy = b.Energy
}

// ProgressService fans game actions out into mission counters and
// achievement metrics. Calls run after the action commits, on a short
// deadline, and only log on failure.
type ProgressService struct {
	missions     *repository.MissionRepository
	achievements *repository.AchievementRepository
	cards        *repository.CardRepository
}

func NewProgressService(db *pgxpool.Pool) *ProgressService {
	return &ProgressService{
		missions:     repository.NewMissionRepository(db),
		achievements: repository.NewAchievementRepository(db),
		cards:        repository.NewCardRepository(db),
	}
}

const progressTimeout = 5 * time.Second

func (s *ProgressService) async(name string, userID int64, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), progressTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			logger.Get().Warn("progress update failed", "op", name, "user_id", userID, "error", err)
		}
	}()
}

// AfterTap records tap and coin counters plus the stat metrics.
func (s *ProgressService) AfterTap(userID int64, coinsGained int64, st *domain.Stats) {
	snapshot := *st
	s.async("tap", userID, func(ctx context.Context) error {
		if err := s.missions.AddProgress(ctx, userID, domain.MissionTaps, 1); err != nil {
			return err
		}
		if err := s.missions.AddProgress(ctx, userID, domain.MissionCoinsEarned, coinsGained); err != nil {
			return err
		}
		return s.syncMetrics(ctx, userID, &snapshot)
	})
}

// AfterUpgrade records the upgrade counter and the stat metrics.
func (s *ProgressService) AfterUpgrade(userID int64, st *domain.Stats) {
	snapshot := *st
	s.async("upgrade", userID, func(ctx context.Context) error {
		if err := s.missions.AddProgress(ctx, userID, domain.MissionCardsUpgraded, 1); err != nil {
			return err
		}
		return s.syncMetrics(ctx, userID, &snapshot)
	})
}

// AfterSpin records the wheel counter and the stat metrics.
func (s *ProgressService) AfterSpin(userID int64, st *domain.Stats) {
	snapshot := *st
	s.async("spin", userID, func(ctx context.Context) error {
		if err := s.missions.AddProgress(ctx, userID, domain.MissionSpinsUsed, 1); err != nil {
			return err
		}
		return s.syncMetrics(ctx, userID, &snapshot)
	})
}

// AfterReward refreshes achievement metrics after any payout.
func (s *ProgressService) AfterReward(userID int64, st *domain.Stats) {
	snapshot := *st
	s.async("reward", userID, func(ctx context.Context) error {
		return s.syncMetrics(ctx, userID, &snapshot)
	})
}

func (s *ProgressService) syncMetrics(ctx context.Context, userID int64, st *domain.Stats) error {
	if err := s.achievements.SetProgress(ctx, userID, domain.MetricLevel, int64(st.Level)); err != nil {
		return err
	}
	if err := s.achievements.SetProgress(ctx, userID, domain.MetricCoins, st.Coins); err != nil {
		return err
	}
	if err := s.achievements.SetProgress(ctx, userID, domain.MetricMiningRate, st.MiningRate); err != nil {
		return err
	}
	owned, err := s.cards.CountByUser(ctx, userID)
	if err != nil {
		return err
	}
	return s.achievements.SetProgress(ctx, userID, domain.MetricCardsOwned, owned)
}

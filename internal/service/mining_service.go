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

// MiningService owns the tap loop and the aggregate player snapshot.
type MiningService struct {
	db           *pgxpool.Pool
	users        *repository.UserRepository
	stats        *repository.StatsRepository
	cards        *repository.CardRepository
	floating     *repository.FloatingCardRepository
	missions     *repository.MissionRepository
	achievements *repository.AchievementRepository
	daily        *repository.DailyRewardRepository
	shop         *repository.ShopRepository
	wheel        *repository.WheelRepository
	progress     *ProgressService
}

func NewMiningService(db *pgxpool.Pool, progress *ProgressService) *MiningService {
	return &MiningService{
		db:           db,
		users:        repository.NewUserRepository(db),
		stats:        repository.NewStatsRepository(db),
		cards:        repository.NewCardRepository(db),
		floating:     repository.NewFloatingCardRepository(db),
		missions:     repository.NewMissionRepository(db),
		achievements: repository.NewAchievementRepository(db),
		daily:        repository.NewDailyRewardRepository(db),
		shop:         repository.NewShopRepository(db),
		wheel:        repository.NewWheelRepository(db),
		progress:     progress,
	}
}

// PlayerState is the full snapshot handed to the client on load.
type PlayerState struct {
	Player        *domain.Player         `json:"player"`
	Stats         *domain.Stats          `json:"stats"`
	Cards         []*domain.Card         `json:"cards"`
	FloatingCards []*domain.FloatingCard `json:"floating_cards"`
	Missions      []*domain.Mission      `json:"missions"`
	Achievements  []*domain.Achievement  `json:"achievements"`
	DailyRewards  []*domain.DailyReward  `json:"daily_rewards"`
	ShopItems     []*domain.ShopItem     `json:"shop_items"`
	Wheel         *domain.WheelState     `json:"wheel"`
	TonDisplay    string                 `json:"ton_display"`
}

// GetState seeds any missing rows, settles lazy energy regen, and returns
// the whole player snapshot.
func (s *MiningService) GetState(ctx context.Context, userID int64) (*PlayerState, error) {
	player, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, ErrNotFound
	}

	if err := s.EnsureSeeded(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.settleStats(ctx, userID); err != nil {
		return nil, err
	}

	state := &PlayerState{Player: player}
	if state.Stats, err = s.stats.GetByUserID(ctx, userID); err != nil {
		return nil, err
	}
	state.TonDisplay = domain.TonDecimal(state.Stats.TonUnits)
	if state.Cards, err = s.cards.ListByUser(ctx, userID); err != nil {
		return nil, err
	}
	for _, col := range []string{domain.CollectionExplorerStash, domain.CollectionCryptoCavern} {
		cards, err := s.floating.ListByCollection(ctx, userID, col)
		if err != nil {
			return nil, err
		}
		state.FloatingCards = append(state.FloatingCards, cards...)
	}
	if err := s.missions.ResetExpired(ctx, userID, time.Now()); err != nil {
		return nil, err
	}
	if state.Missions, err = s.missions.ListByUser(ctx, userID); err != nil {
		return nil, err
	}
	if state.Achievements, err = s.achievements.ListByUser(ctx, userID); err != nil {
		return nil, err
	}
	if state.DailyRewards, err = s.daily.ListByUser(ctx, userID); err != nil {
		return nil, err
	}
	if state.ShopItems, err = s.shop.ListByUser(ctx, userID); err != nil {
		return nil, err
	}
	if state.Wheel, err = s.wheel.Get(ctx, userID); err != nil {
		return nil, err
	}
	return state, nil
}

// Tap mines one tap: coins grow by the mining rate, XP by a tenth of it,
// and one energy point is spent. Fails with ErrNoEnergy on an empty bar.
func (s *MiningService) Tap(ctx context.Context, userID int64) (*domain.Stats, error) {
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

	now := time.Now()
	st.Energy, st.LastEnergyUpdate = game.RegenEnergy(st.Energy, st.MaxEnergy, st.LastEnergyUpdate, now)
	if st.Energy <= 0 {
		return nil, ErrNoEnergy
	}

	st.Coins += st.MiningRate
	st.XP, st.Level = game.ApplyXP(st.XP, st.Level, game.TapXP(st.MiningRate))
	st.Energy--

	if err := s.stats.UpdateTx(ctx, tx, st); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	s.progress.AfterTap(userID, st.MiningRate, st)
	return st, nil
}

// settleStats persists lazy energy regeneration and repairs a stored level
// that fell behind its XP total, for example after a threshold rebalance.
func (s *MiningService) settleStats(ctx context.Context, userID int64) error {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	st, err := s.stats.GetForUpdate(ctx, tx, userID)
	if err != nil {
		return err
	}

	energy, last := game.RegenEnergy(st.Energy, st.MaxEnergy, st.LastEnergyUpdate, time.Now())
	level := st.Level
	if derived := game.LevelForXP(st.XP); derived > level {
		level = derived
	}
	if energy == st.Energy && last.Equal(st.LastEnergyUpdate) && level == st.Level {
		return nil
	}
	st.Energy, st.LastEnergyUpdate, st.Level = energy, last, level

	if err := s.stats.UpdateTx(ctx, tx, st); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// EnsureSeeded creates every per-player row the catalogs call for. Inserts
// are idempotent so re-running for an existing player is harmless.
func (s *MiningService) EnsureSeeded(ctx context.Context, userID int64) error {
	st, err := s.stats.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if st == nil {
		if _, err := s.stats.Create(ctx, userID); err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
	}

	for _, col := range []string{domain.CollectionExplorerStash, domain.CollectionCryptoCavern} {
		slots, _ := game.FloatingGrid(col)
		for _, slot := range slots {
			fc := &domain.FloatingCard{
				UserID:        userID,
				Collection:    col,
				Position:      slot.Position,
				IsUnlocked:    slot.Unlocked,
				RewardType:    slot.Reward.Type,
				RewardAmount:  slot.Reward.Amount,
				PriceTonUnits: slot.PriceTonUnits,
			}
			if err := s.floating.Create(ctx, fc); err != nil && !errors.Is(err, pgx.ErrNoRows) {
				return err
			}
		}
	}

	for _, tpl := range game.DailyMissions() {
		m := &domain.Mission{
			UserID:       userID,
			MissionName:  tpl.Name,
			MissionType:  tpl.Type,
			TargetValue:  tpl.Target,
			RewardType:   tpl.Reward.Type,
			RewardAmount: tpl.Reward.Amount,
		}
		if err := s.missions.Create(ctx, m); err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
	}

	for _, tpl := range game.Achievements() {
		a := &domain.Achievement{
			UserID:       userID,
			Name:         tpl.Name,
			Description:  tpl.Description,
			Metric:       tpl.Metric,
			TargetValue:  tpl.Target,
			RewardType:   tpl.Reward.Type,
			RewardAmount: tpl.Reward.Amount,
		}
		if err := s.achievements.Create(ctx, a); err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
	}

	for day, reward := range game.DailyRewardTable() {
		d := &domain.DailyReward{
			UserID:       userID,
			Day:          day + 1,
			RewardType:   reward.Type,
			RewardAmount: reward.Amount,
		}
		if err := s.daily.Create(ctx, d); err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
	}

	for _, item := range game.ShopItems() {
		si := &domain.ShopItem{
			UserID:            userID,
			ItemName:          item.Name,
			ItemType:          item.Type,
			BasePriceStars:    item.BasePriceStars,
			BasePriceTonUnits: item.BasePriceTon,
			RewardType:        item.Reward.Type,
			RewardAmount:      item.Reward.Amount,
		}
		if err := s.shop.Create(ctx, si); err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
	}

	if err := s.wheel.Create(ctx, userID); err != nil {
		logger.Get().Warn("seed wheel row", "user_id", userID, "error", err)
	}
	return nil
}

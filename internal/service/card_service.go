package service

import (
	"context"
	"errors"
	"time"

	"bitrush_backend/internal/domain"
	"bitrush_backend/internal/game"
	"bitrush_backend/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CardService buys and upgrades mining cards.
type CardService struct {
	db       *pgxpool.Pool
	stats    *repository.StatsRepository
	cards    *repository.CardRepository
	txRepo   *repository.TransactionRepository
	progress *ProgressService
}

func NewCardService(db *pgxpool.Pool, progress *ProgressService) *CardService {
	return &CardService{
		db:       db,
		stats:    repository.NewStatsRepository(db),
		cards:    repository.NewCardRepository(db),
		txRepo:   repository.NewTransactionRepository(db),
		progress: progress,
	}
}

func (s *CardService) List(ctx context.Context, userID int64) ([]*domain.Card, error) {
	return s.cards.ListByUser(ctx, userID)
}

// Upgrade buys the named card, or levels it up when already owned. The
// purchase price raises the mining rate by the card's bonus, grants XP at
// 15% of the price, and starts a 3 hour cooldown on the card.
func (s *CardService) Upgrade(ctx context.Context, userID int64, cardName string) (*domain.Stats, *domain.Card, error) {
	spec, ok := game.CardByName(cardName)
	if !ok {
		return nil, nil, ErrNotFound
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	st, err := s.stats.GetForUpdate(ctx, tx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	// Read the card only after the stats lock is held, so two concurrent
	// upgrades cannot both see the pre-upgrade level or a spent cooldown.
	now := time.Now()
	owned, err := s.cards.GetByNameTx(ctx, tx, userID, cardName)
	if err != nil {
		return nil, nil, err
	}
	if owned != nil && game.Locked(owned.UnlockTimer, now) {
		return nil, nil, ErrCooldownActive
	}

	cost := game.Cost{Coins: spec.PriceCoins, TonUnits: spec.PriceTonUnits}
	bal, err := game.Apply(balanceOf(st), cost.Delta())
	if err != nil {
		return nil, nil, ErrInsufficientFunds
	}
	applyBalance(st, bal)

	st.MiningRate += spec.MiningBonus
	st.XP, st.Level = game.ApplyXP(st.XP, st.Level, game.PurchaseXP(spec.PriceCoins, spec.PriceTonUnits))

	unlock := game.StartCooldown(now, game.CardCooldown)
	if owned == nil {
		owned = &domain.Card{
			UserID:        userID,
			CardType:      spec.Type,
			CardName:      spec.Name,
			Level:         1,
			MiningBonus:   spec.MiningBonus,
			PriceCoins:    spec.PriceCoins,
			PriceTonUnits: spec.PriceTonUnits,
			UnlockTimer:   unlock,
		}
		if err := s.cards.CreateTx(ctx, tx, owned); err != nil {
			return nil, nil, err
		}
	} else {
		owned.Level++
		owned.MiningBonus += spec.MiningBonus
		owned.UnlockTimer = unlock
		if err := s.cards.UpdateTx(ctx, tx, owned); err != nil {
			return nil, nil, err
		}
	}

	if err := s.stats.UpdateTx(ctx, tx, st); err != nil {
		return nil, nil, err
	}

	amount := spec.PriceCoins
	if amount == 0 {
		amount = spec.PriceTonUnits
	}
	entry := &domain.Transaction{
		UserID: userID,
		Type:   "card_upgrade",
		Amount: -amount,
		Meta: map[string]interface{}{
			"card":  spec.Name,
			"level": owned.Level,
		},
	}
	if err := s.txRepo.CreateWithTx(ctx, tx, entry); err != nil {
		return nil, nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, nil, err
	}

	s.progress.AfterUpgrade(userID, st)
	return st, owned, nil
}

// SkipCooldown clears a running card cooldown for 10 stars.
func (s *CardService) SkipCooldown(ctx context.Context, userID int64, cardName string) (*domain.Stats, *domain.Card, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	st, err := s.stats.GetForUpdate(ctx, tx, userID)
	if err != nil {
		return nil, nil, err
	}

	owned, err := s.cards.GetByNameTx(ctx, tx, userID, cardName)
	if err != nil {
		return nil, nil, err
	}
	if owned == nil {
		return nil, nil, ErrNotFound
	}
	if !game.Locked(owned.UnlockTimer, time.Now()) {
		return nil, nil, ErrInvalidState
	}

	bal, err := game.Apply(balanceOf(st), game.Cost{Stars: game.SkipCooldownStars}.Delta())
	if err != nil {
		return nil, nil, ErrInsufficientFunds
	}
	applyBalance(st, bal)

	owned.UnlockTimer = nil
	if err := s.cards.UpdateTx(ctx, tx, owned); err != nil {
		return nil, nil, err
	}
	if err := s.stats.UpdateTx(ctx, tx, st); err != nil {
		return nil, nil, err
	}
	entry := &domain.Transaction{
		UserID: userID,
		Type:   "cooldown_skip",
		Amount: -int64(game.SkipCooldownStars),
		Meta:   map[string]interface{}{"card": owned.CardName},
	}
	if err := s.txRepo.CreateWithTx(ctx, tx, entry); err != nil {
		return nil, nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, nil, err
	}
	return st, owned, nil
}

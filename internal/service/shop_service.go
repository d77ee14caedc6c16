package service

import (
	"context"

	"bitrush_backend/internal/domain"
	"bitrush_backend/internal/game"
	"bitrush_backend/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ShopService sells boosters for stars and TON with escalating prices.
type ShopService struct {
	db       *pgxpool.Pool
	stats    *repository.StatsRepository
	shop     *repository.ShopRepository
	txRepo   *repository.TransactionRepository
	progress *ProgressService
}

func NewShopService(db *pgxpool.Pool, progress *ProgressService) *ShopService {
	return &ShopService{
		db:       db,
		stats:    repository.NewStatsRepository(db),
		shop:     repository.NewShopRepository(db),
		txRepo:   repository.NewTransactionRepository(db),
		progress: progress,
	}
}

func (s *ShopService) List(ctx context.Context, userID int64) ([]*domain.ShopItem, error) {
	return s.shop.ListByUser(ctx, userID)
}

// Purchase pays the item's current price, credits its reward, and bumps the
// price 10% for the next purchase.
func (s *ShopService) Purchase(ctx context.Context, userID int64, itemName string) (*domain.Stats, *domain.ShopItem, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	st, err := s.stats.GetForUpdate(ctx, tx, userID)
	if err != nil {
		return nil, nil, err
	}

	// The item is read under the stats lock so concurrent purchases each
	// see the price the previous one escalated to.
	item, err := s.shop.GetByNameTx(ctx, tx, userID, itemName)
	if err != nil {
		return nil, nil, err
	}
	if item == nil {
		return nil, nil, ErrNotFound
	}
	if !item.Reward().WellFormed() {
		return nil, nil, ErrInvalidState
	}

	cost := game.Cost{Stars: item.CurrentPriceStars, TonUnits: item.CurrentPriceTon}
	bal, err := game.Apply(balanceOf(st), cost.Delta())
	if err != nil {
		return nil, nil, ErrInsufficientFunds
	}
	applyBalance(st, bal)

	if err := creditReward(st, item.Reward()); err != nil {
		return nil, nil, err
	}

	nextCount := item.PurchaseCount + 1
	nextStars := game.EscalatedPrice(item.BasePriceStars, nextCount)
	nextTon := game.EscalatedPrice(item.BasePriceTonUnits, nextCount)
	if err := s.shop.RecordPurchaseTx(ctx, tx, item.ID, nextStars, nextTon); err != nil {
		return nil, nil, err
	}
	if err := s.stats.UpdateTx(ctx, tx, st); err != nil {
		return nil, nil, err
	}

	amount := item.CurrentPriceStars
	if amount == 0 {
		amount = item.CurrentPriceTon
	}
	entry := &domain.Transaction{
		UserID: userID,
		Type:   "shop_purchase",
		Amount: -amount,
		Meta: map[string]interface{}{
			"item":        item.ItemName,
			"reward_type": string(item.RewardType),
		},
	}
	if err := s.txRepo.CreateWithTx(ctx, tx, entry); err != nil {
		return nil, nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, nil, err
	}

	item.PurchaseCount = nextCount
	item.CurrentPriceStars = nextStars
	item.CurrentPriceTon = nextTon

	s.progress.AfterReward(userID, st)
	return st, item, nil
}

package service

import (
	"context"

	"bitrush_backend/internal/domain"
	"bitrush_backend/internal/game"
	"bitrush_backend/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FloatingCardService runs the 9-slot bonus card grids.
type FloatingCardService struct {
	db       *pgxpool.Pool
	stats    *repository.StatsRepository
	floating *repository.FloatingCardRepository
	txRepo   *repository.TransactionRepository
	progress *ProgressService
}

func NewFloatingCardService(db *pgxpool.Pool, progress *ProgressService) *FloatingCardService {
	return &FloatingCardService{
		db:       db,
		stats:    repository.NewStatsRepository(db),
		floating: repository.NewFloatingCardRepository(db),
		txRepo:   repository.NewTransactionRepository(db),
		progress: progress,
	}
}

func (s *FloatingCardService) List(ctx context.Context, userID int64, collection string) ([]*domain.FloatingCard, error) {
	if _, ok := game.FloatingGrid(collection); !ok {
		return nil, ErrNotFound
	}
	return s.floating.ListByCollection(ctx, userID, collection)
}

// Claim collects an unlocked slot's reward. The claim flag flips in the
// same transaction that credits the reward, so a double claim pays nothing.
func (s *FloatingCardService) Claim(ctx context.Context, userID int64, collection string, position int) (*domain.Stats, error) {
	fc, err := s.floating.GetSlot(ctx, userID, collection, position)
	if err != nil {
		return nil, err
	}
	if fc == nil {
		return nil, ErrNotFound
	}
	if fc.IsClaimed {
		return nil, ErrAlreadyClaimed
	}
	if err := game.CanClaim(*fc); err != nil {
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

	claimed, err := s.floating.ClaimTx(ctx, tx, fc.ID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, ErrAlreadyClaimed
	}

	if err := creditReward(st, fc.Reward()); err != nil {
		return nil, err
	}
	if err := s.stats.UpdateTx(ctx, tx, st); err != nil {
		return nil, err
	}
	entry := &domain.Transaction{
		UserID: userID,
		Type:   "floating_claim",
		Amount: fc.RewardAmount,
		Meta: map[string]interface{}{
			"collection":  fc.Collection,
			"position":    fc.Position,
			"reward_type": string(fc.RewardType),
		},
	}
	if err := s.txRepo.CreateWithTx(ctx, tx, entry); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	s.progress.AfterReward(userID, st)
	return st, nil
}

// PurchaseGateway buys the paid slot with TON. The purchase claims the slot
// itself and cascades an unlock across the remaining slots of the grid.
func (s *FloatingCardService) PurchaseGateway(ctx context.Context, userID int64, collection string) (*domain.Stats, error) {
	fc, err := s.floating.GetSlot(ctx, userID, collection, game.GatewayPosition)
	if err != nil {
		return nil, err
	}
	if fc == nil {
		return nil, ErrNotFound
	}
	if fc.IsClaimed {
		return nil, ErrAlreadyClaimed
	}
	if fc.PriceTonUnits <= 0 {
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

	bal, err := game.Apply(balanceOf(st), game.Cost{TonUnits: fc.PriceTonUnits}.Delta())
	if err != nil {
		return nil, ErrInsufficientFunds
	}
	applyBalance(st, bal)

	bought, err := s.floating.PurchaseGatewayTx(ctx, tx, fc.ID)
	if err != nil {
		return nil, err
	}
	if !bought {
		return nil, ErrAlreadyClaimed
	}

	// Buying the gateway also pays out its own reward.
	if fc.Reward().WellFormed() {
		if err := creditReward(st, fc.Reward()); err != nil {
			return nil, err
		}
	}
	if err := s.floating.UnlockPositionsTx(ctx, tx, userID, collection, game.CascadePositions()); err != nil {
		return nil, err
	}
	if err := s.stats.UpdateTx(ctx, tx, st); err != nil {
		return nil, err
	}
	entry := &domain.Transaction{
		UserID: userID,
		Type:   "gateway_purchase",
		Amount: -fc.PriceTonUnits,
		Meta: map[string]interface{}{
			"collection": fc.Collection,
			"position":   fc.Position,
		},
	}
	if err := s.txRepo.CreateWithTx(ctx, tx, entry); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	s.progress.AfterReward(userID, st)
	return st, nil
}

package repository

import (
	"context"

	"bitrush_backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const floatingColumns = `id, user_id, collection, position, is_unlocked, is_claimed,
	reward_type, reward_amount, price_ton_units, purchase_date, updated_at`

type FloatingCardRepository struct {
	db *pgxpool.Pool
}

func NewFloatingCardRepository(db *pgxpool.Pool) *FloatingCardRepository {
	return &FloatingCardRepository{db: db}
}

func scanFloating(row pgx.Row) (*domain.FloatingCard, error) {
	var fc domain.FloatingCard
	if err := row.Scan(
		&fc.ID, &fc.UserID, &fc.Collection, &fc.Position, &fc.IsUnlocked, &fc.IsClaimed,
		&fc.RewardType, &fc.RewardAmount, &fc.PriceTonUnits, &fc.PurchaseDate, &fc.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &fc, nil
}

func (r *FloatingCardRepository) ListByCollection(ctx context.Context, userID int64, collection string) ([]*domain.FloatingCard, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+floatingColumns+`
		 FROM floating_cards
		 WHERE user_id = $1 AND collection = $2
		 ORDER BY position`,
		userID, collection)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []*domain.FloatingCard
	for rows.Next() {
		fc, err := scanFloating(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, fc)
	}
	return cards, rows.Err()
}

// GetSlot returns nil without error when the slot row does not exist.
func (r *FloatingCardRepository) GetSlot(ctx context.Context, userID int64, collection string, position int) (*domain.FloatingCard, error) {
	fc, err := scanFloating(r.db.QueryRow(ctx,
		`SELECT `+floatingColumns+`
		 FROM floating_cards
		 WHERE user_id = $1 AND collection = $2 AND position = $3`,
		userID, collection, position))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return fc, err
}

func (r *FloatingCardRepository) Create(ctx context.Context, fc *domain.FloatingCard) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO floating_cards
		     (user_id, collection, position, is_unlocked, is_claimed,
		      reward_type, reward_amount, price_ton_units)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (user_id, collection, position) DO NOTHING
		 RETURNING id, updated_at`,
		fc.UserID, fc.Collection, fc.Position, fc.IsUnlocked, fc.IsClaimed,
		fc.RewardType, fc.RewardAmount, fc.PriceTonUnits,
	).Scan(&fc.ID, &fc.UpdatedAt)
}

// ClaimTx marks the slot claimed inside dbTx. The WHERE guard makes a
// double claim report zero rows instead of paying twice.
func (r *FloatingCardRepository) ClaimTx(ctx context.Context, dbTx pgx.Tx, id int64) (bool, error) {
	tag, err := dbTx.Exec(ctx,
		`UPDATE floating_cards
		 SET is_claimed = TRUE, updated_at = NOW()
		 WHERE id = $1 AND is_unlocked = TRUE AND is_claimed = FALSE`,
		id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// PurchaseGatewayTx marks the gateway slot bought and claimed, stamping the
// purchase date.
func (r *FloatingCardRepository) PurchaseGatewayTx(ctx context.Context, dbTx pgx.Tx, id int64) (bool, error) {
	tag, err := dbTx.Exec(ctx,
		`UPDATE floating_cards
		 SET is_unlocked = TRUE, is_claimed = TRUE, purchase_date = NOW(), updated_at = NOW()
		 WHERE id = $1 AND is_claimed = FALSE`,
		id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// UnlockPositionsTx opens the given slots of one collection inside dbTx.
func (r *FloatingCardRepository) UnlockPositionsTx(ctx context.Context, dbTx pgx.Tx, userID int64, collection string, positions []int) error {
	_, err := dbTx.Exec(ctx,
		`UPDATE floating_cards
		 SET is_unlocked = TRUE, updated_at = NOW()
		 WHERE user_id = $1 AND collection = $2 AND position = ANY($3) AND is_unlocked = FALSE`,
		userID, collection, positions)
	return err
}

package repository

import (
	"context"

	"bitrush_backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const shopColumns = `id, user_id, item_name, item_type,
	base_price_stars, base_price_ton_units,
	current_price_stars, current_price_ton_units,
	purchase_count, reward_type, reward_amount, updated_at`

type ShopRepository struct {
	db *pgxpool.Pool
}

func NewShopRepository(db *pgxpool.Pool) *ShopRepository {
	return &ShopRepository{db: db}
}

func scanShopItem(row pgx.Row) (*domain.ShopItem, error) {
	var s domain.ShopItem
	if err := row.Scan(
		&s.ID, &s.UserID, &s.ItemName, &s.ItemType,
		&s.BasePriceStars, &s.BasePriceTonUnits,
		&s.CurrentPriceStars, &s.CurrentPriceTon,
		&s.PurchaseCount, &s.RewardType, &s.RewardAmount, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ShopRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.ShopItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+shopColumns+` FROM shop_items WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.ShopItem
	for rows.Next() {
		s, err := scanShopItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

// GetByName returns nil without error when the item row does not exist.
func (r *ShopRepository) GetByName(ctx context.Context, userID int64, name string) (*domain.ShopItem, error) {
	s, err := scanShopItem(r.db.QueryRow(ctx,
		`SELECT `+shopColumns+` FROM shop_items WHERE user_id = $1 AND item_name = $2`,
		userID, name))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return s, err
}

// GetByNameTx reads the item inside dbTx so the price and purchase count
// seen are the ones the purchase will update. Returns nil when absent.
func (r *ShopRepository) GetByNameTx(ctx context.Context, dbTx pgx.Tx, userID int64, name string) (*domain.ShopItem, error) {
	s, err := scanShopItem(dbTx.QueryRow(ctx,
		`SELECT `+shopColumns+` FROM shop_items WHERE user_id = $1 AND item_name = $2`,
		userID, name))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return s, err
}

func (r *ShopRepository) Create(ctx context.Context, s *domain.ShopItem) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO shop_items
		     (user_id, item_name, item_type,
		      base_price_stars, base_price_ton_units,
		      current_price_stars, current_price_ton_units,
		      reward_type, reward_amount)
		 VALUES ($1, $2, $3, $4, $5, $4, $5, $6, $7)
		 ON CONFLICT (user_id, item_name) DO NOTHING
		 RETURNING id, updated_at`,
		s.UserID, s.ItemName, s.ItemType,
		s.BasePriceStars, s.BasePriceTonUnits,
		s.RewardType, s.RewardAmount,
	).Scan(&s.ID, &s.UpdatedAt)
}

// RecordPurchaseTx bumps the purchase count and stores the next escalated
// prices inside dbTx.
func (r *ShopRepository) RecordPurchaseTx(ctx context.Context, dbTx pgx.Tx, id int64, nextStars, nextTon int64) error {
	_, err := dbTx.Exec(ctx,
		`UPDATE shop_items
		 SET purchase_count = purchase_count + 1,
		     current_price_stars = $2,
		     current_price_ton_units = $3,
		     updated_at = NOW()
		 WHERE id = $1`,
		id, nextStars, nextTon)
	return err
}

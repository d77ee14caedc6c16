package repository

import (
	"context"

	"bitrush_backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const cardColumns = `id, user_id, card_type, card_name, level, mining_bonus,
	price_coins, price_ton_units, unlock_timer, updated_at`

type CardRepository struct {
	db *pgxpool.Pool
}

func NewCardRepository(db *pgxpool.Pool) *CardRepository {
	return &CardRepository{db: db}
}

func scanCard(row pgx.Row) (*domain.Card, error) {
	var c domain.Card
	if err := row.Scan(
		&c.ID, &c.UserID, &c.CardType, &c.CardName, &c.Level, &c.MiningBonus,
		&c.PriceCoins, &c.PriceTonUnits, &c.UnlockTimer, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CardRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Card, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+cardColumns+` FROM user_cards WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []*domain.Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

// GetByName returns nil without error when the player does not own the card.
func (r *CardRepository) GetByName(ctx context.Context, userID int64, name string) (*domain.Card, error) {
	c, err := scanCard(r.db.QueryRow(ctx,
		`SELECT `+cardColumns+` FROM user_cards WHERE user_id = $1 AND card_name = $2`,
		userID, name))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return c, err
}

// GetByNameTx reads the card inside dbTx so checks against it are
// serialized by the caller's row lock. Returns nil when not owned.
func (r *CardRepository) GetByNameTx(ctx context.Context, dbTx pgx.Tx, userID int64, name string) (*domain.Card, error) {
	c, err := scanCard(dbTx.QueryRow(ctx,
		`SELECT `+cardColumns+` FROM user_cards WHERE user_id = $1 AND card_name = $2`,
		userID, name))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return c, err
}

func (r *CardRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM user_cards WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}

// CreateTx inserts the player's first copy of a card inside dbTx.
func (r *CardRepository) CreateTx(ctx context.Context, dbTx pgx.Tx, c *domain.Card) error {
	return dbTx.QueryRow(ctx,
		`INSERT INTO user_cards (user_id, card_type, card_name, level, mining_bonus,
		                         price_coins, price_ton_units, unlock_timer)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, updated_at`,
		c.UserID, c.CardType, c.CardName, c.Level, c.MiningBonus,
		c.PriceCoins, c.PriceTonUnits, c.UnlockTimer,
	).Scan(&c.ID, &c.UpdatedAt)
}

// UpdateTx writes back the card's level, bonus, prices and cooldown.
func (r *CardRepository) UpdateTx(ctx context.Context, dbTx pgx.Tx, c *domain.Card) error {
	return dbTx.QueryRow(ctx,
		`UPDATE user_cards
		 SET level = $2, mining_bonus = $3, price_coins = $4,
		     price_ton_units = $5, unlock_timer = $6, updated_at = NOW()
		 WHERE id = $1
		 RETURNING updated_at`,
		c.ID, c.Level, c.MiningBonus, c.PriceCoins, c.PriceTonUnits, c.UnlockTimer,
	).Scan(&c.UpdatedAt)
}

package repository

import (
	"context"

	"bitrush_backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// GetByAccountID looks a player up by external account id. Returns nil
// without error when the player does not exist yet.
func (r *UserRepository) GetByAccountID(ctx context.Context, accountID string) (*domain.Player, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, account_id, COALESCE(username, ''), created_at
		 FROM users
		 WHERE account_id = $1`,
		accountID,
	)

	var p domain.Player
	if err := row.Scan(&p.ID, &p.AccountID, &p.Username, &p.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.Player, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, account_id, COALESCE(username, ''), created_at
		 FROM users
		 WHERE id = $1`,
		id,
	)

	var p domain.Player
	if err := row.Scan(&p.ID, &p.AccountID, &p.Username, &p.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *UserRepository) Create(ctx context.Context, p *domain.Player) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO users (account_id, username)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		p.AccountID, p.Username,
	).Scan(&p.ID, &p.CreatedAt)
}

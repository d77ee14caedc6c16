package service

import (
	"context"

	"bitrush_backend/internal/domain"
	"bitrush_backend/internal/logger"
	"bitrush_backend/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AuthService exchanges an external account id for a player and a token.
type AuthService struct {
	users  *repository.UserRepository
	mining *MiningService
}

func NewAuthService(db *pgxpool.Pool, mining *MiningService) *AuthService {
	return &AuthService{
		users:  repository.NewUserRepository(db),
		mining: mining,
	}
}

// Authenticate gets or creates the player for accountID and returns a
// signed token. New players are seeded with their starting rows.
func (s *AuthService) Authenticate(ctx context.Context, accountID, username string) (*domain.Player, string, error) {
	player, err := s.users.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, "", err
	}
	if player == nil {
		player = &domain.Player{AccountID: accountID, Username: username}
		if err := s.users.Create(ctx, player); err != nil {
			return nil, "", err
		}
		logger.Info("new player registered", "user_id", player.ID)
	}

	if err := s.mining.EnsureSeeded(ctx, player.ID); err != nil {
		return nil, "", err
	}

	token, err := GenerateJWT(player.ID)
	if err != nil {
		return nil, "", err
	}
	return player, token, nil
}

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"salon-backend/internal/auth"
	"salon-backend/internal/models"
	"salon-backend/internal/repositories"
)

// UserService authenticates the two fixed accounts (admin, clerk) and lets
// an admin rotate either account's credentials.
type UserService struct {
	repo *repositories.UserRepository
	jwt  *auth.JWTManager
}

func NewUserService(repo *repositories.UserRepository, jwt *auth.JWTManager) *UserService {
	return &UserService{repo: repo, jwt: jwt}
}

// SeedDefaults creates the admin and clerk accounts from configuration.
// Called once at startup.
func (s *UserService) SeedDefaults(ctx context.Context, adminUsername, adminPassword, clerkUsername, clerkPassword string) error {
	adminHash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	clerkHash, err := auth.HashPassword(clerkPassword)
	if err != nil {
		return fmt.Errorf("hash clerk password: %w", err)
	}
	s.repo.Seed(ctx, models.RoleAdmin, adminUsername, adminHash)
	s.repo.Seed(ctx, models.RoleClerk, clerkUsername, clerkHash)
	log.Info().Str("admin", adminUsername).Str("clerk", clerkUsername).Msg("seeded user accounts")
	return nil
}

// Login verifies a username/password pair and issues a JWT. Unknown users
// and wrong passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.repo.Get(ctx, id)
}

// UpdateCredentials rotates the username and password of the account holding
// the given role. Admin-only at the route level.
func (s *UserService) UpdateCredentials(ctx context.Context, req *models.UpdateCredentialsRequest) (*models.User, error) {
	if req.Role != models.RoleAdmin && req.Role != models.RoleClerk {
		return nil, fmt.Errorf("unknown role %q", req.Role)
	}
	if req.Username == "" || req.Password == "" {
		return nil, errors.New("username and password are required")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user, err := s.repo.UpdateCredentials(ctx, req.Role, req.Username, hash)
	if err != nil {
		return nil, err
	}
	log.Info().Str("role", string(req.Role)).Str("username", req.Username).Msg("credentials updated")
	return user, nil
}

package usecase

import (
	"errors"
	"fmt"

	"microblog/internal/entity"
	"microblog/internal/repo/persistent"
	"microblog/pkg/logger"
)

type AuthUseCase interface {
	Login(username, password string) (*entity.User, error)
	ResolveToken(token string) (*entity.User, error)
	GetUser(userID string) (*entity.User, error)
}

type authUseCase struct {
	userRepo persistent.UserRepository
	logger   *logger.Logger
}

func NewAuthUseCase(userRepo persistent.UserRepository, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *authUseCase) Login(username, password string) (*entity.User, error) {
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, entity.ErrInvalidCredentials
		}
		uc.logger.Error("Failed to fetch user %s: %v", username, err)
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	// Demo accounts only; the password is stored and compared as-is.
	if user.Password != password {
		return nil, entity.ErrInvalidCredentials
	}

	return user, nil
}

// ResolveToken interprets the bearer token as a username. The token has
// no structure beyond that.
func (uc *authUseCase) ResolveToken(token string) (*entity.User, error) {
	return uc.userRepo.GetByUsername(token)
}

func (uc *authUseCase) GetUser(userID string) (*entity.User, error) {
	return uc.userRepo.GetByID(userID)
}

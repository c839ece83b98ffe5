package service

import (
	"context"
	"errors"

	"blogql/internal/apperrors"
	"blogql/internal/models"
	"blogql/internal/repository"
	"blogql/internal/validation"
)

type UserService interface {
	CreateUser(ctx context.Context, email, password, name string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, string, error)
	GetStatus(ctx context.Context, identity Identity) (string, error)
	UpdateStatus(ctx context.Context, identity Identity, status string) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	auth     AuthService
}

func NewUserService(userRepo repository.UserRepository, auth AuthService) UserService {
	return &userService{
		userRepo: userRepo,
		auth:     auth,
	}
}

func (s *userService) CreateUser(ctx context.Context, email, password, name string) (*models.User, error) {
	if fieldErrs := validation.UserInput(email, password); len(fieldErrs) > 0 {
		return nil, apperrors.InvalidInput("Invalid input", fieldErrs)
	}

	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return nil, apperrors.Internal("failed to hash password", err)
	}

	user := &models.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	}

	err = s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.Conflict("User exists already!")
		}
		return nil, apperrors.Internal("failed to create user", err)
	}

	return user, nil
}

// Login returns the signed session token and the user id it was issued for.
func (s *userService) Login(ctx context.Context, email, password string) (string, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", "", apperrors.Unauthenticated("User is not found")
		}
		return "", "", apperrors.Internal("failed to look up user", err)
	}

	if !s.auth.VerifyPassword(password, user.PasswordHash) {
		return "", "", apperrors.Unauthenticated("Password is incorrect")
	}

	token, err := s.auth.IssueToken(user.UserID, user.Email)
	if err != nil {
		return "", "", apperrors.Internal("failed to issue token", err)
	}

	return token, user.UserID, nil
}

func (s *userService) GetStatus(ctx context.Context, identity Identity) (string, error) {
	if err := RequireAuthenticated(identity); err != nil {
		return "", err
	}

	user, err := s.userRepo.GetByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", apperrors.NotFound("User not found")
		}
		return "", apperrors.Internal("failed to look up user", err)
	}

	return user.Status, nil
}

func (s *userService) UpdateStatus(ctx context.Context, identity Identity, status string) (*models.User, error) {
	if err := RequireAuthenticated(identity); err != nil {
		return nil, err
	}

	err := s.userRepo.UpdateStatus(ctx, identity.UserID, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, apperrors.Internal("failed to update status", err)
	}

	user, err := s.userRepo.GetByID(ctx, identity.UserID)
	if err != nil {
		return nil, apperrors.Internal("failed to look up user", err)
	}

	return user, nil
}

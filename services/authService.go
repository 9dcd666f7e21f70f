package services

import (
	"context"
	"fmt"

	"MigrantHealth/apperrors"
	"MigrantHealth/models"
	"MigrantHealth/repositories"
	"MigrantHealth/utils"
)

type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	CreateUser(ctx context.Context, username, password, role string) (*models.User, error)
	ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword, confirmPassword string) error
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Authenticate verifies a claimed identity. Both an unknown username and
// a wrong password yield the same ErrAuthFailure so callers cannot learn
// which part was wrong.
func (s *authService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	if err := utils.ValidateLogin(username, password); err != nil {
		return nil, apperrors.ErrAuthFailure
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	if user == nil {
		return nil, apperrors.ErrAuthFailure
	}
	if !utils.CheckPassword(user.Password, password) {
		return nil, apperrors.ErrAuthFailure
	}
	return user, nil
}

// CreateUser creates an account with an explicit role. Admin-only; the
// guard enforces that upstream.
func (s *authService) CreateUser(ctx context.Context, username, password, role string) (*models.User, error) {
	if err := utils.ValidateNewUser(username, password, role); err != nil {
		return nil, apperrors.Validation(err)
	}

	exists, err := s.userRepo.UsernameExists(ctx, username)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	if exists {
		return nil, fmt.Errorf("username %q %w", username, apperrors.ErrConflict)
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, apperrors.Store(err)
	}

	user := &models.User{
		Username: username,
		Password: hashedPassword,
		Role:     role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if isTaxonomyError(err) {
			return nil, err
		}
		return nil, apperrors.Store(err)
	}
	return user, nil
}

// ChangePassword lets a patient replace their own password. The stored
// hash is untouched unless every check passes.
func (s *authService) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword, confirmPassword string) error {
	if err := utils.ValidatePasswordChange(oldPassword, newPassword, confirmPassword); err != nil {
		return apperrors.Validation(err)
	}
	if newPassword != confirmPassword {
		return apperrors.Validationf("new passwords do not match")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return apperrors.Store(err)
	}
	if user == nil {
		return fmt.Errorf("user %d: %w", userID, apperrors.ErrNotFound)
	}
	if !utils.CheckPassword(user.Password, oldPassword) {
		return apperrors.ErrAuthFailure
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return apperrors.Store(err)
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		return apperrors.Store(err)
	}
	return nil
}

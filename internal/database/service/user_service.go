package service

import (
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/graphblog/api/internal/database/models"
	"github.com/graphblog/api/internal/database/repository"
)

// UserService defines the interface for profile management. Every
// mutation takes the acting user's id and enforces ownership before
// touching the store.
type UserService interface {
	GetUser(id uint) (*models.User, error)
	UpdateProfile(currentUserID, id uint, email, name string) (*models.User, error)
	RemoveProfile(currentUserID, id uint) error
	ChangePassword(currentUserID, id uint, oldPassword, newPassword string) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repository.UserRepository, logger *slog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *userService) GetUser(id uint) (*models.User, error) {
	return s.userRepo.FindByID(id)
}

func (s *userService) UpdateProfile(currentUserID, id uint, email, name string) (*models.User, error) {
	if currentUserID != id {
		s.logger.Warn("⚠️ [UserService] Profile update by non-owner", "user_id", currentUserID, "target_id", id)
		return nil, ErrNotProfileOwner
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	// Email must stay unique on update, same as on signup. The unique
	// index backstops the remaining race.
	if email != user.Email {
		existing, err := s.userRepo.FindByEmail(email)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			s.logger.Warn("⚠️ [UserService] Email already in use", "email", email)
			return nil, ErrEmailAlreadyExists
		}
	}

	user.Name = name
	user.Email = email

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyExists
		}
		s.logger.Error("❌ [UserService] Failed to update profile", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [UserService] Profile updated", "user_id", id)
	return user, nil
}

func (s *userService) RemoveProfile(currentUserID, id uint) error {
	if currentUserID != id {
		s.logger.Warn("⚠️ [UserService] Profile removal by non-owner", "user_id", currentUserID, "target_id", id)
		return ErrNotProfileOwner
	}

	if _, err := s.userRepo.FindByID(id); err != nil {
		return err
	}

	// Authored posts go with the account via the store's cascade rule.
	if err := s.userRepo.Delete(id); err != nil {
		s.logger.Error("❌ [UserService] Failed to delete user", "error", err)
		return err
	}

	s.logger.Info("✅ [UserService] Profile removed", "user_id", id)
	return nil
}

func (s *userService) ChangePassword(currentUserID, id uint, oldPassword, newPassword string) (*models.User, error) {
	if currentUserID != id {
		s.logger.Warn("⚠️ [UserService] Password change by non-owner", "user_id", currentUserID, "target_id", id)
		return nil, ErrNotProfileOwner
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		s.logger.Warn("⚠️ [UserService] Incorrect old password", "user_id", id)
		return nil, ErrIncorrectPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("❌ [UserService] Failed to hash password", "error", err)
		return nil, err
	}

	user.Password = string(hashedPassword)

	if err := s.userRepo.Update(user); err != nil {
		s.logger.Error("❌ [UserService] Failed to store new password", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [UserService] Password changed", "user_id", id)
	return user, nil
}

// Service errors
var (
	ErrNotProfileOwner   = errors.New("not the owner of this profile")
	ErrIncorrectPassword = errors.New("incorrect old password")
)

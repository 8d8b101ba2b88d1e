package service

import (
	"context"
	"errors"
	"time"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/playgroundhq/playground-api/internal/core/domain"
	"github.com/playgroundhq/playground-api/internal/core/ports"
)

const minPasswordLength = 8

// UserService implements the account lifecycle on top of a UserRepository
// and a PasswordHasher. It holds no state of its own; all coordination
// (uniqueness, atomic updates) is delegated to the store.
type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, logger: logger}
}

// validatePassword enforces the minimum policy before anything is hashed:
// at least minPasswordLength characters, containing both letters and digits.
// The schema layer validates first; this is the backstop, never weakened.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return domain.ErrInvalidInput
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return domain.ErrInvalidInput
	}
	return nil
}

// CreateUser hashes the password and persists a new active account.
// Store conflicts (duplicate username or email) propagate unchanged.
func (s *UserService) CreateUser(ctx context.Context, username, password, email string, role domain.Role) (*domain.User, error) {
	if username == "" || email == "" {
		return nil, domain.ErrInvalidInput
	}
	if !role.IsValid() {
		return nil, domain.ErrInvalidInput
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		Role:         role,
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", string(created.Role)).Msg("user created")
	return created, nil
}

// Authenticate verifies username/password credentials. The failure mode is
// deliberately uniform: unknown user, wrong password, and non-active status
// all yield ErrInvalidCredentials so account existence never leaks.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.CanAuthenticate() {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// ChangePassword verifies the current password before replacing the stored
// hash. A missing user and a wrong current password are indistinguishable to
// the caller: both return false.
func (s *UserService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) (bool, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	if !s.hasher.Verify(currentPassword, user.PasswordHash) {
		return false, nil
	}
	if err := validatePassword(newPassword); err != nil {
		return false, err
	}

	hashed, err := s.hasher.Hash(newPassword)
	if err != nil {
		return false, err
	}

	user.PasswordHash = hashed
	user.UpdatedAt = time.Now().UTC()

	ok, err := s.repo.Update(ctx, user)
	if err != nil {
		return false, err
	}
	if ok {
		s.logger.Info().Int64("user_id", userID).Msg("password changed")
	}
	return ok, nil
}

// Activate sets the account to active. It is the only path back from
// suspended as well as from inactive.
func (s *UserService) Activate(ctx context.Context, userID int64) (bool, error) {
	return s.setStatus(ctx, userID, domain.StatusActive)
}

// Deactivate sets the account to inactive.
func (s *UserService) Deactivate(ctx context.Context, userID int64) (bool, error) {
	return s.setStatus(ctx, userID, domain.StatusInactive)
}

// Suspend sets the account to suspended. Administrative action only.
func (s *UserService) Suspend(ctx context.Context, userID int64) (bool, error) {
	return s.setStatus(ctx, userID, domain.StatusSuspended)
}

func (s *UserService) setStatus(ctx context.Context, userID int64, status domain.Status) (bool, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}

	user.Status = status
	user.UpdatedAt = time.Now().UTC()

	ok, err := s.repo.Update(ctx, user)
	if err != nil {
		return false, err
	}
	if ok {
		s.logger.Info().Int64("user_id", userID).Str("status", string(status)).Msg("user status updated")
	}
	return ok, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}

var _ ports.UserService = (*UserService)(nil)

package ports

import (
	"context"

	"github.com/playgroundhq/playground-api/internal/core/domain"
)

// PasswordHasher is the one-way credential hasher the user service depends on.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenIssuer mints the signed, expiring credential handed out at login.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

// UserService defines the account lifecycle use cases.
type UserService interface {
	// CreateUser hashes the password and persists a new active account.
	// Conflicts from the store propagate unchanged as domain.ErrUserExists.
	CreateUser(ctx context.Context, username, password, email string, role domain.Role) (*domain.User, error)

	// Authenticate returns domain.ErrInvalidCredentials uniformly for an
	// unknown username, a wrong password, and a non-active account, so the
	// caller cannot tell which of the three occurred.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)

	// ChangePassword returns false both when the user does not exist and
	// when the current password fails verification.
	ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) (bool, error)

	// Activate / Deactivate / Suspend mutate account status and refresh
	// updated_at. Each returns false when the user does not exist and is
	// idempotent with respect to the target status.
	Activate(ctx context.Context, userID int64) (bool, error)
	Deactivate(ctx context.Context, userID int64) (bool, error)
	Suspend(ctx context.Context, userID int64) (bool, error)

	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)

	DeleteUser(ctx context.Context, id int64) (bool, error)
}

package ports

import (
	"context"

	"github.com/playgroundhq/playground-api/internal/core/domain"
)

// UserRepository defines the persistence capability set for user accounts.
// The backend owns all uniqueness coordination: Create and Update must be
// atomic with respect to each other, so two inserts racing on the same
// username can never both succeed.
type UserRepository interface {
	// Create persists a new user and returns the stored record with its
	// assigned ID. Returns domain.ErrUserExists when the username or email
	// is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// FindByID / FindByUsername / FindByEmail return domain.ErrUserNotFound
	// when no match exists.
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns all users in a stable (id) order.
	List(ctx context.Context) ([]domain.User, error)

	// Update persists the full record. Returns domain.ErrMissingID when the
	// record carries no ID, domain.ErrUserExists when the new username or
	// email collides with another row, and false (no error) when no row
	// matched the ID, e.g. after a concurrent delete.
	Update(ctx context.Context, user *domain.User) (bool, error)

	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id int64) (bool, error)
}

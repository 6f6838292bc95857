package interfaces

import (
	"context"

	"fragmented-narratives/internal/models"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// CreateUser inserts a new user and fills in the generated ID.
	// Returns models.ErrUserAlreadyExists on a username collision.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername returns models.ErrUserNotFound when absent.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// ListUsers returns all users ordered by username ascending.
	ListUsers(ctx context.Context) ([]models.UserInfo, error)
}

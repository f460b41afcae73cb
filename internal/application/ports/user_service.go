package ports

import (
	"context"

	"github.com/google/uuid"

	"user-account-api/internal/domain/user"
)

// UserService returns only the public projection: the password hash stays
// behind this boundary. A nil *user.Public with a nil error from
// FindUserByID means the user does not exist.
type UserService interface {
	CreateUser(ctx context.Context, reg user.Registration) (*user.Public, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (*user.Public, error)
	FindUsers(ctx context.Context) (user.Publics, error)
	SetUserRole(ctx context.Context, id uuid.UUID, role user.Role) (*user.Public, error)
	DeactivateUser(ctx context.Context, id uuid.UUID) (*user.Public, error)
}

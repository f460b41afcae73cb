package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence port. A missing row is a normal outcome and
// is reported as (nil, nil), never as an error; FetchUsers is an unordered
// full scan (pagination arrives later as a separate method, existing callers
// are unaffected).
type Repository interface {
	CreateUser(ctx context.Context, req User) (*User, error)
	FetchUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	FetchUsers(ctx context.Context) (Users, error)
	UpdateUser(ctx context.Context, id uuid.UUID, upd Update) (*User, error)
}

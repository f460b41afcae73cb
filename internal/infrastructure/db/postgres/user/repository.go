package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"user-account-api/internal/domain/user"
	"user-account-api/internal/infrastructure/db/postgres"
)

var ErrEmailAlreadyExists = errors.New("email already exists")

// DB is the slice of the pgx pool API the repository needs; *pgxpool.Pool
// satisfies it, as does pgxmock in tests.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Repository struct {
	db DB
}

func NewRepository(db DB) user.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchUsers(ctx context.Context) (user.Users, error) {
	rows, err := r.db.Query(ctx, SelectUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var us Users
	for rows.Next() {
		u := new(User)

		if err = rows.Scan(
			&u.ID,
			&u.FirstName,
			&u.MiddleName,
			&u.LastName,
			&u.DateOfBirth,
			&u.Email,
			&u.PasswordHash,
			&u.Role,
			&u.IsActive,

			&u.CreatedAt,
			&u.UpdatedAt,
		); err != nil {
			return nil, err
		}

		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&us), nil
}

func (r *Repository) FetchUserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByID, id.String()).Scan(
		&u.ID,
		&u.FirstName,
		&u.MiddleName,
		&u.LastName,
		&u.DateOfBirth,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.IsActive,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	u := new(User)

	err := r.db.QueryRow(
		ctx,
		InsertUser,
		req.FirstName, req.MiddleName, req.LastName, req.DateOfBirth, req.Email, req.PasswordHash, string(req.Role),
	).Scan(
		&u.ID,
		&u.FirstName,
		&u.MiddleName,
		&u.LastName,
		&u.DateOfBirth,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.IsActive,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(u), err
}

// UpdateUser merges the non-nil fields of upd onto the stored row and
// refreshes updated_at. No matching id is reported as (nil, nil).
func (r *Repository) UpdateUser(ctx context.Context, id uuid.UUID, upd user.Update) (*user.User, error) {
	u := new(User)

	err := r.db.QueryRow(ctx, UpdateUserByID,
		upd.FirstName, upd.MiddleName, upd.LastName, upd.DateOfBirth, upd.Email, (*string)(upd.Role), upd.IsActive, id.String(),
	).Scan(
		&u.ID,
		&u.FirstName,
		&u.MiddleName,
		&u.LastName,
		&u.DateOfBirth,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.IsActive,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

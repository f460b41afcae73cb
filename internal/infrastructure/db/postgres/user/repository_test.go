package user

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "user-account-api/internal/domain/user"
)

var userColumns = []string{
	"id", "first_name", "middle_name", "last_name", "date_of_birth",
	"email", "password", "user_role", "is_active", "created_at", "updated_at",
}

func newMock(t *testing.T) (pgxmock.PgxPoolIface, domain.Repository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewRepository(mock)
}

func TestCreateUser_ReturnsInsertedRow(t *testing.T) {
	mock, repo := newMock(t)

	id := uuid.New()
	now := time.Now()
	dob := time.Date(1995, time.October, 27, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(InsertUser)).
		WithArgs("John", pgxmock.AnyArg(), "Doe", pgxmock.AnyArg(), "john@example.com", "encoded-hash", "user").
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow(id, "John", nil, "Doe", &dob, "john@example.com", "encoded-hash", "user", true, now, now))

	u, err := repo.CreateUser(context.Background(), domain.User{
		FirstName:    "John",
		LastName:     "Doe",
		DateOfBirth:  &dob,
		Email:        "john@example.com",
		PasswordHash: "encoded-hash",
		Role:         domain.RoleUser,
	})
	require.NoError(t, err)
	require.NotNil(t, u)

	assert.Equal(t, id, u.ID)
	assert.Equal(t, domain.RoleUser, u.Role)
	assert.True(t, u.IsActive)
	assert.False(t, u.CreatedAt.IsZero())
	assert.False(t, u.UpdatedAt.IsZero())

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(InsertUser)).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	u, err := repo.CreateUser(context.Background(), domain.User{
		FirstName:    "John",
		LastName:     "Doe",
		Email:        "taken@example.com",
		PasswordHash: "encoded-hash",
		Role:         domain.RoleUser,
	})
	require.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.Nil(t, u)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchUserByID_Absent(t *testing.T) {
	mock, repo := newMock(t)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(SelectUserByID)).
		WithArgs(id.String()).
		WillReturnError(pgx.ErrNoRows)

	u, err := repo.FetchUserByID(context.Background(), id)
	require.NoError(t, err, "a missing row is a normal outcome")
	assert.Nil(t, u)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchUserByID_Found(t *testing.T) {
	mock, repo := newMock(t)

	id := uuid.New()
	now := time.Now()
	middle := "Arthur"

	mock.ExpectQuery(regexp.QuoteMeta(SelectUserByID)).
		WithArgs(id.String()).
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow(id, "Jordan", &middle, "Lee", nil, "jordan.lee@example.com", "encoded-hash", "admin", true, now, now))

	u, err := repo.FetchUserByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, u)

	assert.Equal(t, domain.RoleAdmin, u.Role)
	require.NotNil(t, u.MiddleName)
	assert.Equal(t, "Arthur", *u.MiddleName)
	assert.Nil(t, u.DateOfBirth)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchUsers(t *testing.T) {
	mock, repo := newMock(t)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(SelectUsers)).
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow(uuid.New(), "Alex", nil, "Smith", nil, "alex@example.com", "h1", "user", true, now, now).
			AddRow(uuid.New(), "Jordan", nil, "Lee", nil, "jordan@example.com", "h2", "admin", false, now, now))

	us, err := repo.FetchUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, us, 2)

	assert.Equal(t, "alex@example.com", us[0].Email)
	assert.False(t, us[1].IsActive)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUser_Absent(t *testing.T) {
	mock, repo := newMock(t)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(UpdateUserByID)).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), id.String()).
		WillReturnError(pgx.ErrNoRows)

	role := domain.RoleAdmin
	u, err := repo.UpdateUser(context.Background(), id, domain.Update{Role: &role})
	require.NoError(t, err)
	assert.Nil(t, u)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUser_MergesAndReturnsRow(t *testing.T) {
	mock, repo := newMock(t)

	id := uuid.New()
	created := time.Now().Add(-time.Hour)
	updated := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(UpdateUserByID)).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), id.String()).
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow(id, "John", nil, "Doe", nil, "john@example.com", "encoded-hash", "admin", true, created, updated))

	role := domain.RoleAdmin
	u, err := repo.UpdateUser(context.Background(), id, domain.Update{Role: &role})
	require.NoError(t, err)
	require.NotNil(t, u)

	assert.Equal(t, domain.RoleAdmin, u.Role)
	assert.True(t, u.UpdatedAt.After(u.CreatedAt))

	require.NoError(t, mock.ExpectationsWereMet())
}

package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	// User mirrors one row of the users table. Nullable columns are pointers.
	User struct {
		ID           uuid.UUID
		FirstName    string
		MiddleName   *string
		LastName     string
		DateOfBirth  *time.Time
		Email        string
		PasswordHash string
		Role         string
		IsActive     bool

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)

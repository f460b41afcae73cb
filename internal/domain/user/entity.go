package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type (
	// User is the persisted account record. PasswordHash never leaves the
	// service layer; callers outside it get Public instead.
	User struct {
		ID           uuid.UUID
		FirstName    string
		MiddleName   *string
		LastName     string
		DateOfBirth  *time.Time
		Email        string
		PasswordHash string
		Role         Role
		IsActive     bool

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User

	// Public is the projection of User with the password hash omitted.
	Public struct {
		ID          uuid.UUID
		FirstName   string
		MiddleName  *string
		LastName    string
		DateOfBirth *time.Time
		Email       string
		Role        Role
		IsActive    bool

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Publics []*Public

	// Registration is validated, normalized registration input.
	// Password is still plaintext here; the service hashes it before persisting.
	Registration struct {
		FirstName   string
		MiddleName  *string
		LastName    string
		DateOfBirth time.Time
		Email       string
		Password    string
	}

	// Update carries a partial merge for UpdateUser: nil fields keep the
	// stored value. The service always fills every field from a fresh read,
	// so merge semantics of the store never surprise it.
	Update struct {
		FirstName   *string
		MiddleName  *string
		LastName    *string
		DateOfBirth *time.Time
		Email       *string
		Role        *Role
		IsActive    *bool
	}
)

func (u *User) Public() *Public {
	return &Public{
		ID:          u.ID,
		FirstName:   u.FirstName,
		MiddleName:  u.MiddleName,
		LastName:    u.LastName,
		DateOfBirth: u.DateOfBirth,
		Email:       u.Email,
		Role:        u.Role,
		IsActive:    u.IsActive,

		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (us Users) Public() Publics {
	ps := make(Publics, len(us))
	for idx, u := range us {
		ps[idx] = u.Public()
	}

	return ps
}

package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	// User is the response shape: the public projection, no password field.
	User struct {
		ID          uuid.UUID  `json:"id"`
		FirstName   string     `json:"firstName"`
		MiddleName  *string    `json:"middleName"`
		LastName    string     `json:"lastName"`
		DateOfBirth *time.Time `json:"dateOfBirth"`
		Email       string     `json:"email"`
		UserRole    string     `json:"userRole"`
		IsActive    bool       `json:"isActive"`

		CreatedAt time.Time `json:"createdAt"`
		UpdatedAt time.Time `json:"updatedAt"`
	}
	Users []User

	RegisterResponse struct {
		NewUser User `json:"newUser"`
	}
	UserResponse struct {
		User User `json:"user"`
	}
	UsersResponse struct {
		Users Users `json:"users"`
	}
	UpdateResponse struct {
		UpdatedUser User `json:"updatedUser"`
	}
)

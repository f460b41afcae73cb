package user

import (
	"user-account-api/internal/domain/user"
)

func ToResponseUser(p *user.Public) User {
	var u = User{
		ID:          p.ID,
		FirstName:   p.FirstName,
		MiddleName:  p.MiddleName,
		LastName:    p.LastName,
		DateOfBirth: p.DateOfBirth,
		Email:       p.Email,
		UserRole:    string(p.Role),
		IsActive:    p.IsActive,

		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}

	return u
}

func ToResponseUsers(ps user.Publics) Users {
	us := make(Users, len(ps))
	for idx, p := range ps {
		us[idx] = ToResponseUser(p)
	}

	return us
}

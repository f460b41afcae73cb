package user

type (
	// RegisterRequest is the raw, untrusted registration payload.
	// DateOfBirth is textual DD.MM.YYYY until validation normalizes it.
	RegisterRequest struct {
		FirstName   string  `json:"firstName"`
		MiddleName  *string `json:"middleName"`
		LastName    string  `json:"lastName"`
		DateOfBirth string  `json:"dateOfBirth"`
		Email       string  `json:"email"`
		Password    string  `json:"password"`
	}

	SetRoleRequest struct {
		Role string `json:"role"`
	}
)

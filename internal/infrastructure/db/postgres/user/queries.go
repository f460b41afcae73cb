package user

const (
	SelectUsers = `
		SELECT id, first_name, middle_name, last_name, date_of_birth, email, password, user_role, is_active, created_at, updated_at
		FROM users
	`
	SelectUserByID = `
		SELECT id, first_name, middle_name, last_name, date_of_birth, email, password, user_role, is_active, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	InsertUser = `
		INSERT INTO users (first_name, middle_name, last_name, date_of_birth, email, password, user_role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING
		  id, first_name, middle_name, last_name, date_of_birth, email, password, user_role, is_active, created_at, updated_at
	`
	// Partial merge: NULL arguments keep the stored column, updated_at is
	// always refreshed server-side.
	UpdateUserByID = `
		UPDATE users
		SET first_name = COALESCE($1, first_name),
		    middle_name = COALESCE($2, middle_name),
		    last_name = COALESCE($3, last_name),
		    date_of_birth = COALESCE($4, date_of_birth),
		    email = COALESCE($5, email),
		    user_role = COALESCE($6, user_role),
		    is_active = COALESCE($7, is_active),
		    updated_at = now()
		WHERE id = $8
		RETURNING
		  id, first_name, middle_name, last_name, date_of_birth, email, password, user_role, is_active, created_at, updated_at
	`
)

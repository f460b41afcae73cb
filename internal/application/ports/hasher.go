package ports

// PasswordHasher produces a salted, one-way hash of a plaintext password.
// Verify is not exercised by the current feature set but is part of the
// contract so a login flow can be added without touching the service layer.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) (bool, error)
}

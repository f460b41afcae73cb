package hash

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"user-account-api/internal/application/ports"
)

// Argon2id parameters per the current OWASP password storage guidance.
const (
	memory      = 64 * 1024
	iterations  = 1
	parallelism = 4
	saltLen     = 16
	keyLen      = 32
)

var ErrMalformedHash = errors.New("malformed argon2id hash")

type Argon2 struct{}

func New() ports.PasswordHasher { return &Argon2{} }

// Hash derives an argon2id key with a fresh random salt and returns it
// PHC-encoded. A salt read failure is fatal for the request; it is never
// retried here.
func (a *Argon2) Hash(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("reading salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, keyLen)

	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		memory,
		iterations,
		parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

func (a *Argon2) Verify(password, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, ErrMalformedHash
	}

	var m, t uint32
	var p uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &m, &t, &p); err != nil {
		return false, ErrMalformedHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, ErrMalformedHash
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, ErrMalformedHash
	}

	derived := argon2.IDKey([]byte(password), salt, t, m, p, uint32(len(key)))

	return subtle.ConstantTimeCompare(key, derived) == 1, nil
}

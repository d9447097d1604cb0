// Package crypto hashes and verifies owner passwords with Argon2id.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/argon2"
)

// Hasher holds Argon2id cost parameters.
type Hasher struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
	SaltLen int
}

// Default is tuned for server-side hashing of owner passwords.
var Default = Hasher{Time: 3, Memory: 64 * 1024, Threads: 1, KeyLen: 32, SaltLen: 16}

// ErrEmptyPassword is returned by Derive for an empty password.
var ErrEmptyPassword = errors.New("empty password")

// RandBytes returns n cryptographically secure random bytes.
func RandBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	return b, err
}

// Derive generates a fresh salt and returns the hash of password under it.
func (h Hasher) Derive(password string) (hash, salt []byte, err error) {
	if password == "" {
		return nil, nil, ErrEmptyPassword
	}
	salt, err = RandBytes(h.SaltLen)
	if err != nil {
		return nil, nil, err
	}
	return h.hash(password, salt), salt, nil
}

// Verify reports whether password matches the stored hash and salt.
func (h Hasher) Verify(password string, salt, expected []byte) bool {
	if len(expected) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(h.hash(password, salt), expected) == 1
}

func (h Hasher) hash(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, h.Time, h.Memory, h.Threads, h.KeyLen)
}

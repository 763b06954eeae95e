package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes  = 16
	hashIters  = 10_000
	hashKeyLen = 32
)

// HashPassword derives a hex digest from the password, the per-user salt and
// the process-wide secret key. Deterministic: equal inputs, equal digests.
func HashPassword(password, salt, secretKey string) string {
	key := pbkdf2.Key(
		[]byte(password),
		[]byte(salt+secretKey),
		hashIters,
		hashKeyLen,
		sha256.New,
	)
	return hex.EncodeToString(key)
}

// GenerateSalt returns a fresh random hex token.
func GenerateSalt() (string, error) {
	b := make([]byte, saltBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// VerifyHash compares two digests in constant time.
func VerifyHash(candidate, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(stored)) == 1
}

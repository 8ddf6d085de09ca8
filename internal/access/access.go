// Package access is the single password gate shared by folder and report
// authorization. Both store the same hex-encoded sha256 digest, so one hash
// and one verify cover every protected resource.
package access

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
)

// ErrInvalidPassword is returned when a supplied password does not match
// the stored digest.
var ErrInvalidPassword = errors.New("invalid password")

// HashPassword returns the hex-encoded sha256 digest of the raw password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Verify checks a password against a stored digest. A nil or empty stored
// digest means the resource is open and any password (or none) is accepted.
// The comparison is constant-time.
func Verify(password string, storedDigest *string) error {
	if storedDigest == nil || *storedDigest == "" {
		return nil
	}

	supplied := HashPassword(password)
	if subtle.ConstantTimeCompare([]byte(supplied), []byte(*storedDigest)) != 1 {
		return ErrInvalidPassword
	}
	return nil
}

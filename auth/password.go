// Package auth wraps bcrypt credential hashing.
package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted one-way digest of the plaintext.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword returns an error if the plaintext does not resolve to the
// stored hash.
func CheckPassword(plaintext, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
}

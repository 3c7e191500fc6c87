package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the work factor the original schema used for its salts.
const bcryptCost = 10

// HashPassword hashes a plaintext password with a per-call random salt
func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether the plaintext password matches the stored hash
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

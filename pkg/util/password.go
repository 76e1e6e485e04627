package util

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BCryptCost is the cost factor for bcrypt hashing
const BCryptCost = 12

// HashPassword hashes a plain-text password using bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BCryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares a plain-text password with its hash
func VerifyPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

type HashServiceInterface interface {
	HashCode(code string) (string, error)
	CompareCode(hashedCode, code string) bool
}

// HashService hashes one-time sign-in codes so a leaked auth_codes
// table does not leak usable codes.
type HashService struct{}

func (b *HashService) HashCode(code string) (string, error) {
	if code == "" {
		return "", errors.New("code cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (b *HashService) CompareCode(hashedCode, code string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedCode), []byte(code))
	return err == nil
}

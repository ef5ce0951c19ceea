package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/lepdv/todolist-rest/internal/core/domain"
)

// verifyCredentials re-validates a supplied username/password pair against
// the stored account. The failure message is uniform regardless of which
// half failed, so usernames cannot be enumerated through this path.
func verifyCredentials(username, password string, u *domain.User) error {
	if username != u.Username {
		return domain.Policyf("Incorrect credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return domain.Policyf("Incorrect credentials")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

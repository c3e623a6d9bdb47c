package handler

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// AdminAuthenticator checks the single admin credential pair configured for
// the desk. Only the bcrypt hash of the password is kept.
type AdminAuthenticator struct {
	username string
	hash     []byte
}

func NewAdminAuthenticator(username, password string, cost int) (*AdminAuthenticator, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, err
	}

	return &AdminAuthenticator{username: username, hash: hash}, nil
}

func (a *AdminAuthenticator) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := bcrypt.CompareHashAndPassword(a.hash, []byte(password)) == nil

	return userOK && passOK
}

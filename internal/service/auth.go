package service

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrBadCredentials = errors.New("invalid credentials")

// AuthService checks submitted credentials against the configured admin
// account and issues the session token that gates the admin routes.
type AuthService struct {
	username     string
	password     string
	passwordHash string
	secret       []byte
}

func NewAuthService(username, password, passwordHash string, secret []byte) *AuthService {
	return &AuthService{username: username, password: password, passwordHash: passwordHash, secret: secret}
}

// Login returns a signed session token when the credentials match. When a
// bcrypt hash is configured it takes precedence over the plain password.
func (s *AuthService) Login(username, password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) != 1 {
		return "", ErrBadCredentials
	}
	if s.passwordHash != "" {
		if bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)) != nil {
			return "", ErrBadCredentials
		}
	} else if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		return "", ErrBadCredentials
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "admin",
		"name": username,
		"exp":  time.Now().Add(7 * 24 * time.Hour).Unix(),
	}).SignedString(s.secret)
	if err != nil {
		return "", err
	}
	return token, nil
}

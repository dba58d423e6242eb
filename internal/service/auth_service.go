package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"prepwise-backend/utilities"
)

var (
	ErrAuthDisabled  = errors.New("token auth is not configured")
	ErrInvalidAPIKey = errors.New("invalid API key")
)

// AuthService exchanges a configured API key for a JWT pair. Only
// mounted when ENABLE_TOKEN_AUTH is set.
type AuthService interface {
	IssueTokens(apiKey string) (access, refresh string, err error)
	RefreshTokens(refreshToken string) (access, refresh string, err error)
}

type authService struct {
	apiKeyHash string
}

func NewAuthService(apiKeyHash string) AuthService {
	return &authService{apiKeyHash: apiKeyHash}
}

func (s *authService) IssueTokens(apiKey string) (string, string, error) {
	if s.apiKeyHash == "" {
		return "", "", ErrAuthDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.apiKeyHash), []byte(apiKey)); err != nil {
		return "", "", ErrInvalidAPIKey
	}
	return utilities.GenerateTokens("default")
}

func (s *authService) RefreshTokens(refreshToken string) (string, string, error) {
	return utilities.RefreshTokens(refreshToken)
}

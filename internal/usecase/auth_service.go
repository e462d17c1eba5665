package usecase

import (
	"context"
	"fmt"

	"github.com/openfooty/roster-api/internal/domain/user"
	"github.com/openfooty/roster-api/internal/platform/tokens"
)

// Credential is the single username/password pair the service accepts.
// Loaded once at startup, immutable afterwards.
type Credential struct {
	Username string
	Password string
}

// AuthService issues bearer tokens for the configured credential and
// verifies them on protected requests.
type AuthService struct {
	credential Credential
	tokens     *tokens.Manager
}

func NewAuthService(credential Credential, manager *tokens.Manager) *AuthService {
	return &AuthService{
		credential: credential,
		tokens:     manager,
	}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username != s.credential.Username || password != s.credential.Password {
		return "", fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	token, err := s.tokens.Issue(username)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return token, nil
}

// VerifyAccessToken decodes and signature-checks a bearer token. Every
// failure mode, including a username that does not match the configured
// user, maps to ErrUnauthorized.
func (s *AuthService) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	username, err := s.tokens.Verify(token)
	if err != nil {
		return user.Principal{}, fmt.Errorf("%w: user not authorized", ErrUnauthorized)
	}
	if username != s.credential.Username {
		return user.Principal{}, fmt.Errorf("%w: user not authorized", ErrUnauthorized)
	}

	return user.Principal{Username: username}, nil
}

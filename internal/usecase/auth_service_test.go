package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/openfooty/roster-api/internal/platform/tokens"
	"github.com/openfooty/roster-api/internal/usecase"
)

func newAuthService() *usecase.AuthService {
	return usecase.NewAuthService(
		usecase.Credential{Username: "admin", Password: "changeme"},
		tokens.NewManager("test-secret"),
	)
}

func TestAuthService_LoginAndVerify(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	token, err := svc.Login(ctx, "admin", "changeme")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	principal, err := svc.VerifyAccessToken(ctx, token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if principal.Username != "admin" {
		t.Fatalf("unexpected principal: %+v", principal)
	}
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	svc := newAuthService()

	_, err := svc.Login(context.Background(), "admin", "nope")
	if !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_LoginWrongUsername(t *testing.T) {
	svc := newAuthService()

	_, err := svc.Login(context.Background(), "root", "changeme")
	if !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_VerifyGarbageToken(t *testing.T) {
	svc := newAuthService()

	_, err := svc.VerifyAccessToken(context.Background(), "not-a-token")
	if !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_VerifyTokenFromOtherSecret(t *testing.T) {
	svc := newAuthService()

	foreign, err := tokens.NewManager("other-secret").Issue("admin")
	if err != nil {
		t.Fatalf("issue foreign token: %v", err)
	}

	_, err = svc.VerifyAccessToken(context.Background(), foreign)
	if !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_VerifyTokenForOtherUsername(t *testing.T) {
	svc := newAuthService()

	// Signed with the right secret but for a username that is not the
	// configured one.
	foreign, err := tokens.NewManager("test-secret").Issue("intruder")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	_, err = svc.VerifyAccessToken(context.Background(), foreign)
	if !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

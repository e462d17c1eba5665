package tokens

import (
	crerr "github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the username of the authenticated user. Tokens have no
// expiry: a credential stays valid until the signing secret rotates.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Manager signs and verifies HS256 bearer tokens.
type Manager struct {
	secret []byte
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

func (m *Manager) Issue(username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{Username: username})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", crerr.Wrap(err, "sign token")
	}

	return signed, nil
}

// Verify checks the signature and returns the username claim. Any parse or
// signature failure is returned as-is; callers treat it as unauthenticated.
func (m *Manager) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", crerr.Wrap(err, "parse token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", crerr.New("token claims are invalid")
	}

	return claims.Username, nil
}

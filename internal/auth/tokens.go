package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/Shameekh-Naveed/Blog-Posts/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenIssuer   = "blogposts-api"
	tokenAudience = "blogposts-client"

	// There is no revocation list; a token stays valid until expiry.
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 24 * time.Hour
)

// Identity is the public-facing identity snapshot carried inside a
// token. Claims are fixed at issuance: a profile change on the user
// record is not reflected until the next refresh.
type Identity struct {
	ID             uint   `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phone_number"`
	ProfilePicture string `json:"profile_picture"`
}

// IdentityClaims is the JWT claim set for access and refresh tokens.
type IdentityClaims struct {
	User Identity `json:"user"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256-signed tokens. The signing key
// is process-wide configuration, loaded once at startup.
type TokenManager struct {
	secret []byte
	now    func() time.Time
}

// NewTokenManager returns a TokenManager signing with the given secret.
func NewTokenManager(secret string) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("JWT secret not configured")
	}
	return &TokenManager{secret: []byte(secret), now: time.Now}, nil
}

// IssueAccessToken signs a short-lived token for per-request authorization.
func (m *TokenManager) IssueAccessToken(identity Identity) (string, error) {
	return m.sign(identity, accessTokenTTL)
}

// IssueRefreshToken signs the longer-lived token used to mint new access tokens.
func (m *TokenManager) IssueRefreshToken(identity Identity) (string, error) {
	return m.sign(identity, refreshTokenTTL)
}

func (m *TokenManager) sign(identity Identity, ttl time.Duration) (string, error) {
	now := m.now()
	claims := IdentityClaims{
		User: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", identity.ID),
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// VerifyToken checks the signature and time bounds of a token and
// returns the identity it asserts. Every failure mode (malformed,
// expired, bad signature, wrong issuer or audience) collapses to one
// Unauthorized outcome so callers cannot distinguish which check failed.
func (m *TokenManager) VerifyToken(tokenString string) (Identity, error) {
	var claims IdentityClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithTimeFunc(func() time.Time { return m.now() }),
	)
	if err != nil || !token.Valid {
		return Identity{}, models.NewUnauthorizedError("Invalid or expired token")
	}

	return claims.User, nil
}

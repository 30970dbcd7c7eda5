package auth

import (
	"context"
	"fmt"
	"time"

	apperrors "lead-dashboard-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Identity is the authenticated caller of a request
type Identity struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email,omitempty"`
}

// IdentityResolver turns a bearer credential into an Identity.
// Implementations return an AuthenticationError for any credential they reject.
type IdentityResolver interface {
	Resolve(ctx context.Context, credential string) (*Identity, error)
}

// TokenClaims are the claims carried by session tokens. The subject is the user id.
type TokenClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// JWTResolver validates HS256 session tokens signed with a shared secret
type JWTResolver struct {
	secret   []byte
	audience string
}

// NewJWTResolver creates a resolver. An empty audience disables the aud check.
func NewJWTResolver(secret, audience string) (*JWTResolver, error) {
	if secret == "" {
		return nil, apperrors.NewConfigurationError("JWT secret is required")
	}
	return &JWTResolver{secret: []byte(secret), audience: audience}, nil
}

// Resolve validates the token and returns the identity in its subject claim
func (r *JWTResolver) Resolve(_ context.Context, credential string) (*Identity, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if r.audience != "" {
		opts = append(opts, jwt.WithAudience(r.audience))
	}

	token, err := jwt.ParseWithClaims(credential, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		return r.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidCredential, err)
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidCredential
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: subject is not a user id", apperrors.ErrInvalidCredential)
	}

	return &Identity{UserID: userID, Email: claims.Email}, nil
}

// GenerateJWT signs a token for the given identity, valid for ttl
func (r *JWTResolver) GenerateJWT(identity Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &TokenClaims{
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "lead-dashboard-backend",
			Subject:   identity.UserID.String(),
		},
	}
	if r.audience != "" {
		claims.Audience = jwt.ClaimStrings{r.audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(r.secret)
}

package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/watchlist-server/internal/model"
)

// Claims represents JWT claims of an access token.
// Subject holds the user ID and ID holds the session ID.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

var _ model.TokenManager = (*JWT)(nil)

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// NewJWT creates a new JWT token manager with the provided secret key and token lifetime.
func NewJWT(secretKey string, ttl time.Duration) *JWT {
	return &JWT{secretKey: []byte(secretKey), ttl: ttl, now: time.Now}
}

// GenerateAccessToken creates an access token for identity that expires after the configured TTL.
func (j *JWT) GenerateAccessToken(identity model.Identity) (string, time.Time, error) {
	if identity.IsZero() || identity.Username == "" {
		return "", time.Time{}, fmt.Errorf("incomplete identity")
	}

	now := j.now()
	expiresAt := now.Add(j.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID.String(),
			ID:        identity.SessionID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Username: identity.Username,
		Email:    identity.Email,
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// ParseAccessToken validates signature, algorithm and expiry and returns the embedded identity.
// All failures wrap model.ErrUnauthorized.
func (j *JWT) ParseAccessToken(tokenString string) (model.Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return model.Identity{}, errors.Join(model.ErrUnauthorized, fmt.Errorf("failed to parse access token: %w", err))
	}
	if !token.Valid {
		return model.Identity{}, fmt.Errorf("%w: access token is invalid", model.ErrUnauthorized)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return model.Identity{}, fmt.Errorf("%w: bad subject claim", model.ErrUnauthorized)
	}
	sessionID, err := uuid.Parse(claims.ID)
	if err != nil {
		return model.Identity{}, fmt.Errorf("%w: bad jti claim", model.ErrUnauthorized)
	}
	if claims.Username == "" {
		return model.Identity{}, fmt.Errorf("%w: missing username claim", model.ErrUnauthorized)
	}

	return model.Identity{
		UserID:    userID,
		Username:  claims.Username,
		Email:     claims.Email,
		SessionID: sessionID,
	}, nil
}

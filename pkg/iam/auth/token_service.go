package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims is the decoded content of an access token
type TokenClaims struct {
	TokenID   string        `json:"jti"`
	UserID    kernel.UserID `json:"user_id"`
	Email     kernel.Email  `json:"email"`
	Scopes    []string      `json:"scopes"`
	ExpiresAt time.Time     `json:"expires_at"`
}

// TokenService issues and validates access tokens
type TokenService interface {
	GenerateAccessToken(userID kernel.UserID, email kernel.Email, scopes []string) (string, *TokenClaims, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}

type jwtClaims struct {
	Email  string   `json:"email"`
	Scopes []string `json:"scopes"`
	jwt.RegisteredClaims
}

// JWTService signs HS256 access tokens
type JWTService struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewJWTService creates a token service
func NewJWTService(secret string, ttl time.Duration, issuer string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
		now:    time.Now,
	}
}

// GenerateAccessToken issues a signed token carrying the user's scopes
func (s *JWTService) GenerateAccessToken(userID kernel.UserID, email kernel.Email, scopes []string) (string, *TokenClaims, error) {
	now := s.now()
	claims := jwtClaims{
		Email:  string(email),
		Scopes: scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	return signed, &TokenClaims{
		TokenID:   claims.ID,
		UserID:    userID,
		Email:     email,
		Scopes:    scopes,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// ValidateAccessToken checks the signature, issuer and expiry of a token
func (s *JWTService) ValidateAccessToken(tokenString string) (*TokenClaims, error) {
	var claims jwtClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken().WithCause(err)
	}

	var expires time.Time
	if claims.ExpiresAt != nil {
		expires = claims.ExpiresAt.Time
	}

	return &TokenClaims{
		TokenID:   claims.ID,
		UserID:    kernel.UserID(claims.Subject),
		Email:     kernel.Email(claims.Email),
		Scopes:    claims.Scopes,
		ExpiresAt: expires,
	}, nil
}

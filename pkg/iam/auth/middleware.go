package auth

import (
	"strings"

	"github.com/Abraxas-365/recruitboard/pkg/logx"
	"github.com/gofiber/fiber/v2"
)

// TokenMiddleware authenticates bearer tokens and enforces scopes
type TokenMiddleware struct {
	tokens   TokenService
	denylist TokenDenylist
}

// NewTokenMiddleware creates the middleware. denylist may be nil.
func NewTokenMiddleware(tokens TokenService, denylist TokenDenylist) *TokenMiddleware {
	return &TokenMiddleware{
		tokens:   tokens,
		denylist: denylist,
	}
}

// Authenticate validates the Authorization header and stores the AuthContext
func (m *TokenMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return ErrMissingToken()
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return ErrInvalidToken().WithDetail("reason", "expected Bearer token")
		}
		raw := strings.TrimSpace(parts[1])

		claims, err := m.tokens.ValidateAccessToken(raw)
		if err != nil {
			return err
		}

		if m.denylist != nil {
			revoked, err := m.denylist.IsRevoked(c.Context(), claims.TokenID)
			if err != nil {
				// Fail open when the denylist is unreachable.
				logx.Warnf("token denylist lookup failed: %v", err)
			} else if revoked {
				return ErrTokenRevoked()
			}
		}

		userID := claims.UserID
		SetAuthContext(c, &AuthContext{
			UserID:    &userID,
			Email:     claims.Email,
			Scopes:    claims.Scopes,
			TokenID:   claims.TokenID,
			RawToken:  raw,
			ExpiresAt: claims.ExpiresAt.Unix(),
		})
		return c.Next()
	}
}

// RequireScope rejects requests whose token lacks the scope
func (m *TokenMiddleware) RequireScope(scope string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ac, ok := GetAuthContext(c)
		if !ok {
			return ErrMissingToken()
		}
		if !HasScope(ac.Scopes, scope) {
			return ErrInsufficientScope().WithDetail("required_scope", scope)
		}
		return c.Next()
	}
}

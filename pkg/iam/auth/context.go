package auth

import (
	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

const authContextKey = "auth_context"

// AuthContext is what the middleware stores for authenticated requests
type AuthContext struct {
	UserID    *kernel.UserID
	Email     kernel.Email
	Scopes    []string
	TokenID   string
	RawToken  string
	ExpiresAt int64
}

// GetAuthContext extracts the auth context set by Authenticate
func GetAuthContext(c *fiber.Ctx) (*AuthContext, bool) {
	ac, ok := c.Locals(authContextKey).(*AuthContext)
	return ac, ok
}

// SetAuthContext stores an auth context on the request
func SetAuthContext(c *fiber.Ctx, ac *AuthContext) {
	c.Locals(authContextKey, ac)
}

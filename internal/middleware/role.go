package middleware // middleware provides shared request processing for handlers

import (
	"net/http" // http package defines standard HTTP status codes

	"github.com/labstack/echo/v4" // echo provides middleware chaining and context
)

// RequireRole returns a middleware that enforces that the authenticated user
// holds one of the given roles.  Role names must match the token's "role"
// claim exactly; membership is an OR over the allowed set.  Exempt paths skip
// the check entirely.  A request that reaches the check without claims in
// context (i.e. JWTAuth never ran or never succeeded) is rejected with 401,
// while a valid token carrying an insufficient role gets 403, so clients know
// whether to re-login or give up.
// Pass a nil exempt list for route-level checks that must always apply.
func RequireRole(exempt *ExemptList, roles ...string) echo.MiddlewareFunc {
	// Build a set of allowed roles for constant-time lookups.
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if exempt.Contains(c.Request().URL.Path) {
				return next(c)
			}
			role, ok := c.Get("role").(string)
			if !ok {
				// No verified claims present: the caller is unauthenticated,
				// not merely under-privileged.
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
			}
			if !allowed[role] {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

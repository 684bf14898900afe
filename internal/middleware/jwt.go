package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/parsarad/recipe-management-api/internal/utils" // token parsing and sentinel errors
)

// JWTAuth returns an Echo middleware that validates a Bearer access token and
// injects the token's claims into the request context.  Requests whose path
// is on the exempt list pass through untouched, even when the Authorization
// header is missing or garbage.  For every other request the middleware
// requires a "Bearer <token>" header whose token verifies against the signing
// secret; any failure (missing header, malformed token, bad signature or
// expired token) terminates the request with a generic 401 so callers cannot
// tell which check failed.  On success, handlers and downstream middleware can
// read `c.Get("claims")`, `c.Get("user_id")` and `c.Get("role")`.
func JWTAuth(secret string, exempt *ExemptList) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Public operations never consult the token, by exact
			// case-insensitive path match.
			if exempt.Contains(c.Request().URL.Path) {
				return next(c)
			}
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			claims, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				// Malformed, bad signature and expired all collapse to the
				// same response at this boundary.
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			// Store the verified claims in the context.  The subject is kept
			// as its string form; handlers that need the numeric ID convert
			// it via getUserID.
			c.Set("claims", claims)
			c.Set("user_id", claims.Subject)
			c.Set("role", claims.Role)
			return next(c)
		}
	}
}

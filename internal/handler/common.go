package handler // handler defines http handlers

import (
	"errors"  // sentinel value used in getUserID
	"strconv" // strconv converts strings to numeric types

	"github.com/labstack/echo/v4" // echo defines request context types
)

// errNoUser is returned by getUserID when the context carries no usable
// identity, which means the auth middleware did not run for this route.
var errNoUser = errors.New("no authenticated user in context")

// getUserID extracts the authenticated user's ID from the echo context.  The
// JWT middleware stores the token subject as its string form; older call
// sites may have stored a numeric type, so both are accepted.
func getUserID(c echo.Context) (uint64, error) {
	switch t := c.Get("user_id").(type) {
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	case uint64:
		return t, nil
	case float64:
		return uint64(t), nil
	}
	return 0, errNoUser
}

// parseIDParam parses a numeric path parameter such as :userId.
func parseIDParam(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}

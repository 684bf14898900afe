package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsarad/recipe-management-api/internal/utils"
)

const gateSecret = "gate-test-secret"

// newGateApp builds an Echo app wired the way the router wires production:
// the JWT gate and the base role gate as global middleware, one public route,
// one protected route and one admin-only route.
func newGateApp() *echo.Echo {
	e := echo.New()
	exempt := NewExemptList("/public", "/api/user/login")
	e.Use(JWTAuth(gateSecret, exempt))
	e.Use(RequireRole(exempt, "Admin", "Customer"))

	ok := func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"user_id": c.Get("user_id"),
			"role":    c.Get("role"),
		})
	}
	e.GET("/public", ok)
	e.GET("/protected", ok)
	e.GET("/admin", ok, RequireRole(nil, "Admin"))
	return e
}

func bearerFor(t *testing.T, userID uint64, role string, ttlMin int) string {
	t.Helper()
	tok, err := utils.NewAccessToken(gateSecret, userID, role, ttlMin)
	require.NoError(t, err)
	return "Bearer " + tok.Token
}

func doGet(e *echo.Echo, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGateExemptPathNeedsNoToken(t *testing.T) {
	e := newGateApp()
	rec := doGet(e, "/public", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGateExemptPathIgnoresGarbageHeader(t *testing.T) {
	e := newGateApp()
	// Even a malformed Authorization header must not block an exempt path.
	rec := doGet(e, "/public", "Bearer total.garbage.here")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGateMissingToken(t *testing.T) {
	e := newGateApp()
	rec := doGet(e, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGateMalformedToken(t *testing.T) {
	e := newGateApp()
	rec := doGet(e, "/protected", "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGateExpiredToken(t *testing.T) {
	e := newGateApp()
	rec := doGet(e, "/protected", bearerFor(t, 1, "Customer", -1))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGateTamperedToken(t *testing.T) {
	e := newGateApp()
	header := bearerFor(t, 1, "Customer", 60)
	raw := []byte(header)
	if raw[len(raw)-1] == 'A' {
		raw[len(raw)-1] = 'B'
	} else {
		raw[len(raw)-1] = 'A'
	}
	rec := doGet(e, "/protected", string(raw))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGateValidTokenPasses(t *testing.T) {
	e := newGateApp()
	rec := doGet(e, "/protected", bearerFor(t, 42, "Customer", 60))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":"42"`)
	assert.Contains(t, rec.Body.String(), `"role":"Customer"`)
}

func TestGateCustomerDeniedOnAdminRoute(t *testing.T) {
	e := newGateApp()
	// Valid token, insufficient role: 403, distinguishable from a 401.
	rec := doGet(e, "/admin", bearerFor(t, 42, "Customer", 60))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGateAdminAllowedOnAdminRoute(t *testing.T) {
	e := newGateApp()
	rec := doGet(e, "/admin", bearerFor(t, 7, "Admin", 60))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGateUnknownRoleDenied(t *testing.T) {
	e := newGateApp()
	rec := doGet(e, "/protected", bearerFor(t, 9, "Intruder", 60))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleWithoutClaimsIsUnauthenticated(t *testing.T) {
	// RequireRole alone (JWTAuth never ran) must report 401, not 403: the
	// caller is unauthenticated rather than under-privileged.
	e := echo.New()
	e.Use(RequireRole(nil, "Admin"))
	e.GET("/x", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := doGet(e, "/x", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsarad/recipe-management-api/internal/config"
	"github.com/parsarad/recipe-management-api/internal/repository"
	"github.com/parsarad/recipe-management-api/internal/utils"
)

// fakeUserStore holds credentials in memory, keyed by lower-cased username.
// Setting failWith makes every call return that error, simulating a dead
// database.
type fakeUserStore struct {
	creds    map[string]repository.Credential // keyed by username, digest must match storedHash
	hashes   map[string]string                // username -> stored digest
	failWith error
	nextID   uint64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		creds:  map[string]repository.Credential{},
		hashes: map[string]string{},
		nextID: 100,
	}
}

func (f *fakeUserStore) add(id uint64, username, password, role string) {
	key := strings.ToLower(username)
	f.creds[key] = repository.Credential{UserID: id, Username: username, RoleName: role}
	f.hashes[key] = utils.HashPassword(password)
}

func (f *fakeUserStore) FindCredential(_ context.Context, username, passwordHash string) (repository.Credential, error) {
	if f.failWith != nil {
		return repository.Credential{}, f.failWith
	}
	key := strings.ToLower(username)
	cred, ok := f.creds[key]
	if !ok || f.hashes[key] != passwordHash {
		return repository.Credential{}, sql.ErrNoRows
	}
	return cred, nil
}

func (f *fakeUserStore) Create(_ context.Context, username, passwordHash, email string) (uint64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	key := strings.ToLower(username)
	if _, ok := f.creds[key]; ok {
		return 0, repository.ErrUsernameExists
	}
	f.nextID++
	f.creds[key] = repository.Credential{UserID: f.nextID, Username: username}
	f.hashes[key] = passwordHash
	return f.nextID, nil
}

const authTestSecret = "auth-handler-test-secret"

func newAuthHandler(store *fakeUserStore) *AuthHandler {
	return NewAuthHandler(config.Config{JWTSecret: authTestSecret, AccessTTLMin: 60}, store)
}

func postJSON(t *testing.T, h echo.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func TestLoginSuccess(t *testing.T) {
	store := newFakeUserStore()
	store.add(42, "bahram", "s3cret", "Admin")
	h := newAuthHandler(store)

	rec := postJSON(t, h.Login, "/api/user/login",
		`{"username":"bahram","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	claims, err := utils.ParseAccessToken(authTestSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "Admin", claims.Role)
}

func TestLoginCaseInsensitiveUsername(t *testing.T) {
	store := newFakeUserStore()
	store.add(7, "Bahram", "s3cret", "Customer")
	h := newAuthHandler(store)

	rec := postJSON(t, h.Login, "/api/user/login",
		`{"username":"BAHRAM","password":"s3cret"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginRejectionIsUniform(t *testing.T) {
	// Unknown username and wrong password must be indistinguishable on the
	// wire, otherwise the endpoint leaks which usernames exist.
	store := newFakeUserStore()
	store.add(1, "known", "right", "Customer")
	h := newAuthHandler(store)

	unknownUser := postJSON(t, h.Login, "/api/user/login",
		`{"username":"nobody","password":"whatever"}`)
	wrongPass := postJSON(t, h.Login, "/api/user/login",
		`{"username":"known","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, unknownUser.Body.String(), wrongPass.Body.String())
}

func TestLoginStorageFailure(t *testing.T) {
	store := newFakeUserStore()
	store.failWith = errors.New("dial tcp: connection refused")
	h := newAuthHandler(store)

	rec := postJSON(t, h.Login, "/api/user/login",
		`{"username":"bahram","password":"s3cret"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "storage unavailable")
	assert.NotContains(t, rec.Body.String(), "invalid username or password")
}

func TestLoginMissingFields(t *testing.T) {
	h := newAuthHandler(newFakeUserStore())

	for _, body := range []string{
		`{}`,
		`{"username":"bahram"}`,
		`{"password":"s3cret"}`,
		`{"username":"   ","password":"s3cret"}`,
	} {
		rec := postJSON(t, h.Login, "/api/user/login", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestRegisterSuccess(t *testing.T) {
	store := newFakeUserStore()
	h := newAuthHandler(store)

	rec := postJSON(t, h.Register, "/api/user/register",
		`{"username":"newuser","password":"pw","email":"new@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		UserID   uint64 `json:"userId"`
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "newuser", resp.Username)
	assert.NotZero(t, resp.UserID)

	// The store received a digest, never the plaintext.
	assert.Equal(t, utils.HashPassword("pw"), store.hashes["newuser"])
}

func TestRegisterDuplicateUsername(t *testing.T) {
	store := newFakeUserStore()
	store.add(1, "taken", "pw", "Customer")
	h := newAuthHandler(store)

	rec := postJSON(t, h.Register, "/api/user/register",
		`{"username":"taken","password":"pw","email":"taken@example.com"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterStorageFailure(t *testing.T) {
	store := newFakeUserStore()
	store.failWith = errors.New("dial tcp: connection refused")
	h := newAuthHandler(store)

	rec := postJSON(t, h.Register, "/api/user/register",
		`{"username":"x","password":"pw","email":"x@example.com"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRegisterMissingFields(t *testing.T) {
	h := newAuthHandler(newFakeUserStore())

	rec := postJSON(t, h.Register, "/api/user/register",
		`{"username":"x","password":"pw"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

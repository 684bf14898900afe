package handler

import (
	"context"      // context with cancellation for store calls
	"database/sql" // sentinel sql.ErrNoRows for credential misses
	"errors"       // errors.Is for sentinel comparison
	"log"          // infrastructure failure logging
	"net/http"     // HTTP status codes and primitives
	"strings"      // input trimming
	"time"         // timeouts for store calls

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/parsarad/recipe-management-api/internal/config"
	"github.com/parsarad/recipe-management-api/internal/queue"
	"github.com/parsarad/recipe-management-api/internal/repository"
	queue_publisher "github.com/parsarad/recipe-management-api/internal/service"
	"github.com/parsarad/recipe-management-api/internal/utils"
)

// UserStore is the narrow view of the identity store the auth endpoints
// need: a single credential lookup for login and an insert for registration.
// The full *repository.UserRepo satisfies it; tests substitute a fake.
type UserStore interface {
	FindCredential(ctx context.Context, username, passwordHash string) (repository.Credential, error)
	Create(ctx context.Context, username, passwordHash, email string) (uint64, error)
}

// AuthHandler bundles dependencies for the login and registration endpoints.
// These are the only handlers that touch plaintext passwords and the only
// ones that issue tokens; everything else just consumes verified claims.
type AuthHandler struct {
	Cfg   config.Config
	Users UserStore
}

func NewAuthHandler(cfg config.Config, users UserStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users}
}

// ----- DTOs -----

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// Login verifies a username/password pair and returns a signed session token.
// The attempt is hashed and matched against the stored digest in a single
// lookup; a miss yields one generic message whether the username or the
// password was wrong, so the endpoint cannot be used to enumerate accounts.
// A storage failure is a 503, never disguised as bad credentials.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cred, err := h.Users.FindCredential(ctx, req.Username, utils.HashPassword(req.Password))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid username or password"})
		}
		log.Printf("login: credential lookup failed: %v", err)
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "storage unavailable"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, cred.UserID, cred.RoleName, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"token": access.Token})
}

// Register creates a user from a username, password and email.  The password
// is digested before it ever reaches the store.  The new user holds no roles
// until an admin assigns one, so a freshly registered account can log in only
// once a role exists for it.  A registration event is published to the broker
// on a best-effort basis.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Password == "" || req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password/email required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Username, utils.HashPassword(req.Password), req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "username already exists"})
		}
		log.Printf("register: create user failed: %v", err)
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "storage unavailable"})
	}

	// Fire and forget: a broker outage must not fail the registration.
	go func() {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer pubCancel()
		_ = queue_publisher.PublishUserRegistered(pubCtx, queue.UserRegisteredEvent{
			UserID:       uid,
			Username:     req.Username,
			Email:        req.Email,
			RegisteredAt: time.Now().UTC().Format(time.RFC3339),
		})
	}()

	return c.JSON(http.StatusCreated, echo.Map{"userId": uid, "username": req.Username})
}

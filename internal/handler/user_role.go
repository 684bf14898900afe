package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/parsarad/recipe-management-api/internal/repository"
)

// UserRoleHandler administers the user-role relation.  Note that none of
// these operations touch tokens already issued: a role granted or revoked
// here only shows up in tokens from subsequent logins.
type UserRoleHandler struct {
	UserRoles *repository.UserRoleRepo
}

func NewUserRoleHandler(userRoles *repository.UserRoleRepo) *UserRoleHandler {
	if userRoles == nil {
		panic("nil repository passed to NewUserRoleHandler")
	}
	return &UserRoleHandler{UserRoles: userRoles}
}

type assignRoleReq struct {
	UserID uint64 `json:"userId"`
	RoleID uint64 `json:"roleId"`
}

type roleIDsReq struct {
	RoleIDs []uint64 `json:"roleIds"`
}

// Assign links a role to a user.  Admin only.
func (h *UserRoleHandler) Assign(c echo.Context) error {
	var req assignRoleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.UserID == 0 || req.RoleID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "userId and roleId required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	status, err := h.UserRoles.Assign(ctx, req.UserID, req.RoleID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "assign role failed"})
	}
	switch status {
	case repository.StatusAlreadyExists:
		return c.JSON(http.StatusConflict, echo.Map{"error": "role already assigned"})
	case repository.StatusNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user or role not found"})
	default:
		return c.JSON(http.StatusCreated, echo.Map{"assigned": true})
	}
}

// Replace swaps a user's entire role set.  Admin only.
func (h *UserRoleHandler) Replace(c echo.Context) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	var req roleIDsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.UserRoles.Replace(ctx, userID, req.RoleIDs); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update roles failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"updated": true})
}

// Remove deletes specific role assignments from a user.  Admin only.
func (h *UserRoleHandler) Remove(c echo.Context) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	var req roleIDsReq
	if err := c.Bind(&req); err != nil || len(req.RoleIDs) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "roleIds required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.UserRoles.Remove(ctx, userID, req.RoleIDs); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "remove roles failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"removed": true})
}

// GetAllWithRoles lists every user with their role names.  Public.
func (h *UserRoleHandler) GetAllWithRoles(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	users, err := h.UserRoles.GetAllWithRoles(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, users)
}

// RolesByUsername returns one user's roles, looked up by ?username=.  Public.
func (h *UserRoleHandler) RolesByUsername(c echo.Context) error {
	username := strings.TrimSpace(c.QueryParam("username"))
	if username == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, err := h.UserRoles.RolesByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, user)
}

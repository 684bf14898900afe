package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/parsarad/recipe-management-api/internal/repository"
)

// UserHandler serves the administrative user endpoints: listing, profile
// updates and deletion.  Login/registration live on AuthHandler.
type UserHandler struct {
	Users *repository.UserRepo
}

func NewUserHandler(users *repository.UserRepo) *UserHandler {
	if users == nil {
		panic("nil repository passed to NewUserHandler")
	}
	return &UserHandler{Users: users}
}

type updateUserReq struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
	Email       string `json:"email"`
}

// GetAll lists every registered user without credential material.
func (h *UserHandler) GetAll(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	users, err := h.Users.GetAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	type userInfo struct {
		ID       uint64 `json:"userId"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	out := make([]userInfo, 0, len(users))
	for _, u := range users {
		out = append(out, userInfo{ID: u.ID, Username: u.Username, Email: u.Email})
	}
	return c.JSON(http.StatusOK, out)
}

// Update changes a user's email and/or password.  The old password must be
// supplied and verify against the stored digest.  Users can only update
// themselves unless they hold the Admin role.
func (h *UserHandler) Update(c echo.Context) error {
	targetID, err := parseIDParam(c, "userId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	callerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	}
	if callerID != targetID && c.Get("role") != "Admin" {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	var req updateUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.OldPassword == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "oldPassword required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	switch err := h.Users.Update(ctx, targetID, req.OldPassword, req.Email, req.NewPassword); {
	case err == nil:
		return c.JSON(http.StatusOK, echo.Map{"updated": true})
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	case errors.Is(err, repository.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "old password mismatch"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
}

// Delete removes a user and their role assignments.  Admin only (enforced by
// route middleware).
func (h *UserHandler) Delete(c echo.Context) error {
	targetID, err := parseIDParam(c, "userId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	switch err := h.Users.Delete(ctx, targetID); {
	case err == nil:
		return c.JSON(http.StatusOK, echo.Map{"deleted": true})
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
}

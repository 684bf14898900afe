package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/parsarad/recipe-management-api/internal/repository"
)

// RoleHandler serves role administration and the public role listing.
type RoleHandler struct {
	Roles *repository.RoleRepo
}

func NewRoleHandler(roles *repository.RoleRepo) *RoleHandler {
	if roles == nil {
		panic("nil repository passed to NewRoleHandler")
	}
	return &RoleHandler{Roles: roles}
}

type createRoleReq struct {
	Name string `json:"roleName"`
}

// Create adds a role.  Admin only.
func (h *RoleHandler) Create(c echo.Context) error {
	var req createRoleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "roleName required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	status, err := h.Roles.Create(ctx, req.Name)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create role failed"})
	}
	switch status {
	case repository.StatusAlreadyExists:
		return c.JSON(http.StatusConflict, echo.Map{"error": "role already exists"})
	default:
		return c.JSON(http.StatusCreated, echo.Map{"created": true})
	}
}

// Delete removes a role by ID.  Admin only.
func (h *RoleHandler) Delete(c echo.Context) error {
	roleID, err := parseIDParam(c, "roleId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid role id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	status, err := h.Roles.Delete(ctx, roleID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete role failed"})
	}
	switch status {
	case repository.StatusNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"error": "role not found"})
	default:
		return c.JSON(http.StatusOK, echo.Map{"deleted": true})
	}
}

// GetAll lists every role.  Public.
func (h *RoleHandler) GetAll(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	roles, err := h.Roles.GetAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, roles)
}

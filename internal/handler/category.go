package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/parsarad/recipe-management-api/internal/repository"
)

// CategoryHandler serves category administration and the public listing.
type CategoryHandler struct {
	Categories *repository.CategoryRepo
}

func NewCategoryHandler(categories *repository.CategoryRepo) *CategoryHandler {
	if categories == nil {
		panic("nil repository passed to NewCategoryHandler")
	}
	return &CategoryHandler{Categories: categories}
}

type createCategoryReq struct {
	Name string `json:"categoryName"`
}

// Create adds a category.  Admin only.
func (h *CategoryHandler) Create(c echo.Context) error {
	var req createCategoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "categoryName required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	status, err := h.Categories.Create(ctx, req.Name)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create category failed"})
	}
	switch status {
	case repository.StatusAlreadyExists:
		return c.JSON(http.StatusConflict, echo.Map{"error": "category already exists"})
	default:
		return c.JSON(http.StatusCreated, echo.Map{"created": true})
	}
}

// Delete removes a category by ID.  Admin only.
func (h *CategoryHandler) Delete(c echo.Context) error {
	categoryID, err := parseIDParam(c, "categoryId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid category id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	status, err := h.Categories.Delete(ctx, categoryID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete category failed"})
	}
	switch status {
	case repository.StatusNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
	default:
		return c.JSON(http.StatusOK, echo.Map{"deleted": true})
	}
}

// GetAll lists every category.  Public.
func (h *CategoryHandler) GetAll(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cats, err := h.Categories.GetAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, cats)
}

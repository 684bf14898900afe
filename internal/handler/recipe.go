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

// RecipeHandler serves recipe CRUD and the public listing/search endpoints.
type RecipeHandler struct {
	Recipes *repository.RecipeRepo
}

func NewRecipeHandler(recipes *repository.RecipeRepo) *RecipeHandler {
	if recipes == nil {
		panic("nil repository passed to NewRecipeHandler")
	}
	return &RecipeHandler{Recipes: recipes}
}

type createRecipeReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Ingredients string `json:"ingredients"`
	CategoryID  uint64 `json:"categoryId"`
}

type updateRecipeReq struct {
	RecipeID uint64 `json:"recipeId"`
	createRecipeReq
}

// Create stores a new recipe owned by the calling user.
func (h *RecipeHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	}
	var req createRecipeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Title) == "" || req.CategoryID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title and categoryId required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Recipes.Create(ctx, userID, req.Title, req.Description, req.Ingredients, req.CategoryID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create recipe failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"recipeId": id})
}

// Update rewrites an existing recipe.  Only the creator can update it; a
// recipe that exists but belongs to someone else is reported as not found.
func (h *RecipeHandler) Update(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	}
	var req updateRecipeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.RecipeID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "recipeId required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	switch err := h.Recipes.Update(ctx, userID, req.RecipeID, req.Title, req.Description, req.Ingredients, req.CategoryID); {
	case err == nil:
		return c.JSON(http.StatusOK, echo.Map{"updated": true})
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "recipe not found"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update recipe failed"})
	}
}

// Delete removes a recipe owned by the calling user.
func (h *RecipeHandler) Delete(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	}
	recipeID, err := parseIDParam(c, "recipeId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid recipe id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	switch err := h.Recipes.Delete(ctx, userID, recipeID); {
	case err == nil:
		return c.JSON(http.StatusOK, echo.Map{"deleted": true})
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "recipe not found"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete recipe failed"})
	}
}

// GetAll lists every recipe.  Public.
func (h *RecipeHandler) GetAll(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	recipes, err := h.Recipes.GetAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, recipes)
}

// ByCategories lists recipes in the comma-separated ?categories= set.  Public.
func (h *RecipeHandler) ByCategories(c echo.Context) error {
	raw := c.QueryParam("categories")
	if strings.TrimSpace(raw) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "categories required"})
	}
	var categories []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			categories = append(categories, p)
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	recipes, err := h.Recipes.ByCategories(ctx, categories)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, recipes)
}

// ByCreator lists recipes by creator username.  Admin only.
func (h *RecipeHandler) ByCreator(c echo.Context) error {
	creator := strings.TrimSpace(c.QueryParam("creatorName"))
	if creator == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "creatorName required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	recipes, err := h.Recipes.ByCreator(ctx, creator)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, recipes)
}

// ByTitle lists recipes matching ?title= exactly (case-insensitive).  Public.
func (h *RecipeHandler) ByTitle(c echo.Context) error {
	title := strings.TrimSpace(c.QueryParam("title"))
	if title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	recipes, err := h.Recipes.ByTitle(ctx, title)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, recipes)
}

// Search lists recipes whose title contains ?q=.  Public.
func (h *RecipeHandler) Search(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "q required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	recipes, err := h.Recipes.SearchByTitle(ctx, q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, recipes)
}

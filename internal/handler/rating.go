package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/parsarad/recipe-management-api/internal/repository"
)

// RatingHandler serves the single rating endpoint.
type RatingHandler struct {
	Ratings *repository.RatingRepo
}

func NewRatingHandler(ratings *repository.RatingRepo) *RatingHandler {
	if ratings == nil {
		panic("nil repository passed to NewRatingHandler")
	}
	return &RatingHandler{Ratings: ratings}
}

type rateReq struct {
	RecipeID uint64 `json:"recipeId"`
	Value    int    `json:"ratingValue"`
}

// Rate records the calling user's 1..5 rating of a recipe.  Each precondition
// failure maps to its own HTTP status so clients can tell a duplicate rating
// from a self-rating attempt.
func (h *RatingHandler) Rate(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	}
	var req rateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	status, err := h.Ratings.Rate(ctx, userID, req.RecipeID, req.Value)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "rate recipe failed"})
	}
	switch status {
	case repository.StatusInvalidInput:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rating must be between 1 and 5"})
	case repository.StatusNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"error": "recipe not found"})
	case repository.StatusAlreadyExists:
		return c.JSON(http.StatusConflict, echo.Map{"error": "recipe already rated"})
	case repository.StatusSelfForbidden:
		return c.JSON(http.StatusForbidden, echo.Map{"error": "cannot rate own recipe"})
	default:
		return c.JSON(http.StatusCreated, echo.Map{"rated": true})
	}
}

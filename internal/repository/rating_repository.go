package repository

import (
	"context"
	"database/sql"
)

// RatingRepo manages the ratings table and keeps recipes.average_rating in
// step with it.
type RatingRepo struct{ DB *sql.DB }

func NewRatingRepo(db *sql.DB) *RatingRepo { return &RatingRepo{DB: db} }

// Rate records a 1..5 rating of a recipe by a user and recomputes the
// recipe's denormalized average.  Outcomes:
//
//	StatusInvalidInput  – value outside 1..5
//	StatusNotFound      – recipe does not exist
//	StatusAlreadyExists – the user already rated this recipe
//	StatusSelfForbidden – the user is the recipe's creator
//	StatusOK            – rating stored and average updated
func (r *RatingRepo) Rate(ctx context.Context, userID, recipeID uint64, value int) (MutationStatus, error) {
	if value < 1 || value > 5 {
		return StatusInvalidInput, nil
	}

	var creatorID uint64
	err := r.DB.QueryRowContext(ctx,
		"SELECT user_id FROM recipes WHERE id=?", recipeID).Scan(&creatorID)
	if err == sql.ErrNoRows {
		return StatusNotFound, nil
	}
	if err != nil {
		return 0, err
	}
	if creatorID == userID {
		return StatusSelfForbidden, nil
	}

	var n int
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM ratings WHERE user_id=? AND recipe_id=?",
		userID, recipeID).Scan(&n); err != nil {
		return 0, err
	}
	if n > 0 {
		return StatusAlreadyExists, nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO ratings (recipe_id, user_id, value) VALUES (?,?,?)",
		recipeID, userID, value); err != nil {
		return 0, err
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE recipes
		    SET average_rating = (SELECT AVG(value) FROM ratings WHERE recipe_id=?)
		  WHERE id=?`, recipeID, recipeID); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return StatusOK, nil
}

package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/parsarad/recipe-management-api/internal/model"
)

// RecipeRepo manages the recipes table.  Listing queries join category and
// creator names; mutations enforce that only the creating user may update or
// delete a recipe.
type RecipeRepo struct{ DB *sql.DB }

func NewRecipeRepo(db *sql.DB) *RecipeRepo { return &RecipeRepo{DB: db} }

// listingSelect is the shared projection for all listing/search queries.
const listingSelect = `
	SELECT r.id, r.title, r.description, r.ingredients, r.category_id,
	       r.user_id, r.average_rating, c.name, u.username
	  FROM recipes r
	  INNER JOIN categories c ON r.category_id = c.id
	  INNER JOIN users u ON r.user_id = u.id`

// Create inserts a recipe owned by the given user and returns its ID.
func (r *RecipeRepo) Create(ctx context.Context, userID uint64, title, description, ingredients string, categoryID uint64) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO recipes (title, description, ingredients, category_id, user_id)
		 VALUES (?,?,?,?,?)`,
		title, description, ingredients, categoryID, userID)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Update rewrites a recipe's fields.  ErrNotFound when the recipe does not
// exist or belongs to another user; ownership and existence are deliberately
// indistinguishable so a caller cannot probe other users' recipe IDs.
func (r *RecipeRepo) Update(ctx context.Context, userID, recipeID uint64, title, description, ingredients string, categoryID uint64) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE recipes SET title=?, description=?, ingredients=?, category_id=?
		  WHERE id=? AND user_id=?`,
		title, description, ingredients, categoryID, recipeID, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a recipe and its ratings, again scoped to the owning user.
func (r *RecipeRepo) Delete(ctx context.Context, userID, recipeID uint64) error {
	if _, err := r.DB.ExecContext(ctx,
		"DELETE FROM ratings WHERE recipe_id=?", recipeID); err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx,
		"DELETE FROM recipes WHERE id=? AND user_id=?", recipeID, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetAll lists every recipe with category and creator names resolved.
func (r *RecipeRepo) GetAll(ctx context.Context) ([]model.RecipeListing, error) {
	rows, err := r.DB.QueryContext(ctx, listingSelect+" ORDER BY r.id")
	if err != nil {
		return nil, err
	}
	return scanListings(rows)
}

// ByCategories lists recipes whose category name is in the given set.
func (r *RecipeRepo) ByCategories(ctx context.Context, categories []string) ([]model.RecipeListing, error) {
	if len(categories) == 0 {
		return []model.RecipeListing{}, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(categories)), ",")
	args := make([]interface{}, len(categories))
	for i, c := range categories {
		args[i] = c
	}
	rows, err := r.DB.QueryContext(ctx,
		listingSelect+" WHERE c.name IN ("+placeholders+") ORDER BY r.id", args...)
	if err != nil {
		return nil, err
	}
	return scanListings(rows)
}

// ByCreator lists recipes created by the named user (case-insensitive).
func (r *RecipeRepo) ByCreator(ctx context.Context, creatorName string) ([]model.RecipeListing, error) {
	rows, err := r.DB.QueryContext(ctx,
		listingSelect+" WHERE LOWER(u.username) = LOWER(?) ORDER BY r.id", creatorName)
	if err != nil {
		return nil, err
	}
	return scanListings(rows)
}

// ByTitle lists recipes with an exact case-insensitive title match.
func (r *RecipeRepo) ByTitle(ctx context.Context, title string) ([]model.RecipeListing, error) {
	rows, err := r.DB.QueryContext(ctx,
		listingSelect+" WHERE LOWER(r.title) = LOWER(?) ORDER BY r.id", title)
	if err != nil {
		return nil, err
	}
	return scanListings(rows)
}

// SearchByTitle lists recipes whose title contains the given fragment,
// case-insensitively.
func (r *RecipeRepo) SearchByTitle(ctx context.Context, fragment string) ([]model.RecipeListing, error) {
	rows, err := r.DB.QueryContext(ctx,
		listingSelect+" WHERE LOWER(r.title) LIKE LOWER(?) ORDER BY r.id", "%"+fragment+"%")
	if err != nil {
		return nil, err
	}
	return scanListings(rows)
}

func scanListings(rows *sql.Rows) ([]model.RecipeListing, error) {
	defer rows.Close()
	var out []model.RecipeListing
	for rows.Next() {
		var l model.RecipeListing
		if err := rows.Scan(&l.ID, &l.Title, &l.Description, &l.Ingredients,
			&l.CategoryID, &l.UserID, &l.AverageRating, &l.CategoryName, &l.CreatorName); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

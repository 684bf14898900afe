package repository

import (
	"context"
	"database/sql"

	"github.com/parsarad/recipe-management-api/internal/model"
)

// CategoryRepo manages the categories table.
type CategoryRepo struct{ DB *sql.DB }

func NewCategoryRepo(db *sql.DB) *CategoryRepo { return &CategoryRepo{DB: db} }

// Create inserts a category unless one with the same name exists.
func (r *CategoryRepo) Create(ctx context.Context, name string) (MutationStatus, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM categories WHERE name=?", name).Scan(&n); err != nil {
		return 0, err
	}
	if n > 0 {
		return StatusAlreadyExists, nil
	}
	if _, err := r.DB.ExecContext(ctx,
		"INSERT INTO categories (name) VALUES (?)", name); err != nil {
		return 0, err
	}
	return StatusOK, nil
}

// Delete removes a category by ID.
func (r *CategoryRepo) Delete(ctx context.Context, categoryID uint64) (MutationStatus, error) {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM categories WHERE id=?", categoryID)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return StatusNotFound, nil
	}
	return StatusOK, nil
}

// GetAll lists every category.
func (r *CategoryRepo) GetAll(ctx context.Context) ([]model.Category, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id, name FROM categories ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var cats []model.Category
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.ID, &cat.Name); err != nil {
			return nil, err
		}
		cats = append(cats, cat)
	}
	return cats, rows.Err()
}

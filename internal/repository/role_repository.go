package repository

import (
	"context"
	"database/sql"

	"github.com/parsarad/recipe-management-api/internal/model"
)

// RoleRepo manages the roles table.  Role names are unique; conditional
// outcomes are reported as MutationStatus values.
type RoleRepo struct{ DB *sql.DB }

func NewRoleRepo(db *sql.DB) *RoleRepo { return &RoleRepo{DB: db} }

// Create inserts a role unless one with the same name exists.
func (r *RoleRepo) Create(ctx context.Context, name string) (MutationStatus, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM roles WHERE name=?", name).Scan(&n); err != nil {
		return 0, err
	}
	if n > 0 {
		return StatusAlreadyExists, nil
	}
	if _, err := r.DB.ExecContext(ctx,
		"INSERT INTO roles (name) VALUES (?)", name); err != nil {
		return 0, err
	}
	return StatusOK, nil
}

// Delete removes a role by ID.
func (r *RoleRepo) Delete(ctx context.Context, roleID uint64) (MutationStatus, error) {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM roles WHERE id=?", roleID)
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

// GetAll lists every role.
func (r *RoleRepo) GetAll(ctx context.Context) ([]model.Role, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id, name FROM roles ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var roles []model.Role
	for rows.Next() {
		var ro model.Role
		if err := rows.Scan(&ro.ID, &ro.Name); err != nil {
			return nil, err
		}
		roles = append(roles, ro)
	}
	return roles, rows.Err()
}

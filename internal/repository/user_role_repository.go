package repository

import (
	"context"
	"database/sql"

	"github.com/parsarad/recipe-management-api/internal/model"
)

// UserRoleRepo manages the many-to-many user_roles relation.  Assignments
// affect future logins only: tokens already in flight keep the role claim
// they were issued with until they expire.
type UserRoleRepo struct{ DB *sql.DB }

func NewUserRoleRepo(db *sql.DB) *UserRoleRepo { return &UserRoleRepo{DB: db} }

// Assign links a role to a user unless the link already exists.  Foreign key
// violations (unknown user or role) are reported as StatusNotFound.
func (r *UserRoleRepo) Assign(ctx context.Context, userID, roleID uint64) (MutationStatus, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM user_roles WHERE user_id=? AND role_id=?",
		userID, roleID).Scan(&n); err != nil {
		return 0, err
	}
	if n > 0 {
		return StatusAlreadyExists, nil
	}
	var exists int
	if err := r.DB.QueryRowContext(ctx,
		`SELECT (SELECT COUNT(*) FROM users WHERE id=?) * (SELECT COUNT(*) FROM roles WHERE id=?)`,
		userID, roleID).Scan(&exists); err != nil {
		return 0, err
	}
	if exists == 0 {
		return StatusNotFound, nil
	}
	if _, err := r.DB.ExecContext(ctx,
		"INSERT INTO user_roles (user_id, role_id) VALUES (?,?)", userID, roleID); err != nil {
		return 0, err
	}
	return StatusOK, nil
}

// Replace swaps a user's role set for the given role IDs inside a single
// transaction so a concurrent login never observes a user with no roles
// mid-update.
func (r *UserRoleRepo) Replace(ctx context.Context, userID uint64, roleIDs []uint64) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM user_roles WHERE user_id=?", userID); err != nil {
		return err
	}
	for _, roleID := range roleIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO user_roles (user_id, role_id) VALUES (?,?)", userID, roleID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Remove deletes the given role assignments from a user.
func (r *UserRoleRepo) Remove(ctx context.Context, userID uint64, roleIDs []uint64) error {
	for _, roleID := range roleIDs {
		if _, err := r.DB.ExecContext(ctx,
			"DELETE FROM user_roles WHERE user_id=? AND role_id=?", userID, roleID); err != nil {
			return err
		}
	}
	return nil
}

// GetAllWithRoles lists every user together with the names of all roles they
// hold.  Users without roles appear with an empty role list.
func (r *UserRoleRepo) GetAllWithRoles(ctx context.Context) ([]model.UserWithRoles, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT u.id, u.username, ro.name
		   FROM users u
		   LEFT JOIN user_roles ur ON u.id = ur.user_id
		   LEFT JOIN roles ro ON ur.role_id = ro.id
		  ORDER BY u.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUserRoles(rows)
}

// RolesByUsername returns one user's id and role names, looked up by
// case-insensitive username.  ErrNotFound when no such user exists.
func (r *UserRoleRepo) RolesByUsername(ctx context.Context, username string) (model.UserWithRoles, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT u.id, u.username, ro.name
		   FROM users u
		   LEFT JOIN user_roles ur ON u.id = ur.user_id
		   LEFT JOIN roles ro ON ur.role_id = ro.id
		  WHERE LOWER(u.username) = LOWER(?)`, username)
	if err != nil {
		return model.UserWithRoles{}, err
	}
	defer rows.Close()
	users, err := collectUserRoles(rows)
	if err != nil {
		return model.UserWithRoles{}, err
	}
	if len(users) == 0 {
		return model.UserWithRoles{}, ErrNotFound
	}
	return users[0], nil
}

// collectUserRoles folds (id, username, nullable role) rows into one
// UserWithRoles per user, preserving row order.
func collectUserRoles(rows *sql.Rows) ([]model.UserWithRoles, error) {
	var out []model.UserWithRoles
	idx := make(map[uint64]int)
	for rows.Next() {
		var (
			id   uint64
			name string
			role sql.NullString
		)
		if err := rows.Scan(&id, &name, &role); err != nil {
			return nil, err
		}
		i, ok := idx[id]
		if !ok {
			i = len(out)
			idx[id] = i
			out = append(out, model.UserWithRoles{UserID: id, Username: name, Roles: []string{}})
		}
		if role.Valid {
			out[i].Roles = append(out[i].Roles, role.String)
		}
	}
	return out, rows.Err()
}

package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/parsarad/recipe-management-api/internal/model"
	"github.com/parsarad/recipe-management-api/internal/utils"
)

// Credential is the projection returned by the login lookup: just enough to
// issue a token, never the stored digest itself.
type Credential struct {
	UserID   uint64
	Username string
	RoleName string
}

// UserRepo is the persistence layer for user records and the credential
// lookup used at login.  All queries are context-bounded.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a user with an already-hashed password and returns its ID.
// Usernames are stored as given but compared case-insensitively everywhere,
// and the unique index makes duplicates surface as MySQL error 1062.
func (r *UserRepo) Create(ctx context.Context, username, passwordHash, email string) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, password_hash, email) VALUES (?,?,?)",
		strings.TrimSpace(username), passwordHash, strings.TrimSpace(email))
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrUsernameExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// FindCredential resolves a login attempt in a single query: the row must
// match the username case-insensitively AND the supplied digest exactly, and
// carries the role joined through user_roles.  sql.ErrNoRows means invalid
// credentials (the caller must not learn whether the username or the password
// was wrong); any other error is a storage failure and must be reported as
// such, never as a credential failure.
func (r *UserRepo) FindCredential(ctx context.Context, username, passwordHash string) (Credential, error) {
	var cred Credential
	err := r.DB.QueryRowContext(ctx,
		`SELECT u.id, u.username, ro.name
		   FROM users u
		   JOIN user_roles ur ON u.id = ur.user_id
		   JOIN roles ro ON ur.role_id = ro.id
		  WHERE LOWER(u.username) = LOWER(?) AND u.password_hash = ?
		  LIMIT 1`,
		username, passwordHash).Scan(&cred.UserID, &cred.Username, &cred.RoleName)
	return cred, err
}

// RoleByUser returns the role name held by a user, or sql.ErrNoRows when the
// user has no role assigned.  When a user holds several roles the query
// returns an arbitrary one; the login flow shares this single-role
// assumption.
func (r *UserRepo) RoleByUser(ctx context.Context, userID uint64) (string, error) {
	var name string
	err := r.DB.QueryRowContext(ctx,
		`SELECT ro.name FROM user_roles ur JOIN roles ro ON ur.role_id = ro.id
		  WHERE ur.user_id = ? LIMIT 1`, userID).Scan(&name)
	return name, err
}

// GetAll lists every user without their credential digests.
func (r *UserRepo) GetAll(ctx context.Context) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, username, email, created_at FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Update changes a user's email and/or password after verifying the old
// password.  ErrNotFound when the user does not exist, ErrForbidden when the
// old password digest does not match.
func (r *UserRepo) Update(ctx context.Context, userID uint64, oldPassword, newEmail, newPassword string) error {
	var stored string
	err := r.DB.QueryRowContext(ctx,
		"SELECT password_hash FROM users WHERE id=?", userID).Scan(&stored)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if !utils.VerifyPassword(stored, oldPassword) {
		return ErrForbidden
	}
	hash := stored
	if newPassword != "" {
		hash = utils.HashPassword(newPassword)
	}
	if newEmail == "" {
		_, err = r.DB.ExecContext(ctx,
			"UPDATE users SET password_hash=? WHERE id=?", hash, userID)
	} else {
		_, err = r.DB.ExecContext(ctx,
			"UPDATE users SET email=?, password_hash=? WHERE id=?", newEmail, hash, userID)
	}
	return err
}

// Delete removes a user together with their role assignments.
func (r *UserRepo) Delete(ctx context.Context, userID uint64) error {
	if _, err := r.DB.ExecContext(ctx,
		"DELETE FROM user_roles WHERE user_id=?", userID); err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx, "DELETE FROM users WHERE id=?", userID)
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

package model

import "time"

// User represents an application user record as stored in the `users` table.
// The password is never kept in plaintext; PasswordHash holds the SHA-256 hex
// digest computed at registration time.  Role membership is not a column here
// but a separate many-to-many relation (see UserRole).
//
// Fields:
//  ID           – primary key identifier of the user.
//  Username     – unique name, compared case-insensitively at login.
//  PasswordHash – SHA-256 hex digest of the password.
//  Email        – contact address supplied at registration.
//  CreatedAt    – timestamp of creation.
type User struct {
	ID           uint64    // users.id
	Username     string    // users.username
	PasswordHash string    // users.password_hash
	Email        string    // users.email
	CreatedAt    time.Time // users.created_at
}

// Role represents a row in the `roles` table mapping a small numeric ID to a
// unique human-readable name such as "Admin" or "Customer".
type Role struct {
	ID   uint64 `json:"roleId"`   // roles.id
	Name string `json:"roleName"` // roles.name
}

// UserRole models one entry of the user-role relation.  A user may hold
// zero, one or several roles, though the login flow embeds exactly one role
// name into the issued token.
type UserRole struct {
	UserID uint64 // user_roles.user_id
	RoleID uint64 // user_roles.role_id
}

// UserWithRoles is the read model returned by the user-role listing
// endpoints: one row per user with every role name the user holds.
type UserWithRoles struct {
	UserID   uint64   `json:"userId"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

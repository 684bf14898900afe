// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrUsernameExists lets the registration handler answer 409
// instead of a generic 500, and ErrForbidden marks ownership violations
// on recipe mutations.
package repository

import "errors"

// ErrUsernameExists is returned when registering a user whose username is
// already taken. Handlers translate this into an HTTP 409 response.
var ErrUsernameExists = errors.New("username already exists")

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own, such as updating another user's recipe.
// Handlers translate this into an HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrNotFound is returned when the target row of a lookup or mutation does
// not exist. Handlers translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

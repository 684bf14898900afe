// Package queue defines message payloads exchanged over the message broker.
package queue

// UserRegisteredEvent is published when a new account is created.  It
// carries enough information for downstream consumers to log or notify
// without querying the primary database.  No credential material is ever
// included.
type UserRegisteredEvent struct {
	UserID       uint64 `json:"user_id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	RegisteredAt string `json:"registered_at"`
}

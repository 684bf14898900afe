package middleware

// exempt.go defines the list of public operations that bypass both the JWT
// and role checks entirely.  The list is built once at startup from the
// routes the API exposes to anonymous callers (login, registration, public
// listings) and is never mutated afterwards, so lookups need no locking.

import "strings"

// ExemptList is a fixed set of request paths that skip authentication and
// authorization.  Matching is exact and case-insensitive: "/api/User/Login"
// and "/api/user/login" refer to the same operation, but "/api/user/login/x"
// does not.
type ExemptList struct {
	paths map[string]struct{}
}

// NewExemptList builds an ExemptList from the given paths.  Paths are
// normalized to lower case at construction time.
func NewExemptList(paths ...string) *ExemptList {
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		set[strings.ToLower(p)] = struct{}{}
	}
	return &ExemptList{paths: set}
}

// Contains reports whether the given request path is exempt.  A nil list
// exempts nothing, which lets route-level middleware pass nil to enforce a
// check unconditionally.
func (l *ExemptList) Contains(path string) bool {
	if l == nil {
		return false
	}
	_, ok := l.paths[strings.ToLower(path)]
	return ok
}

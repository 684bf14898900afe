package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExemptListMatching(t *testing.T) {
	l := NewExemptList("/api/user/login", "/api/Recipe/AllRecipes")

	assert.True(t, l.Contains("/api/user/login"))
	assert.True(t, l.Contains("/API/User/Login"), "matching is case-insensitive")
	assert.True(t, l.Contains("/api/recipe/allrecipes"))

	assert.False(t, l.Contains("/api/user/login/extra"), "matching is exact, not prefix")
	assert.False(t, l.Contains("/api/user"))
	assert.False(t, l.Contains(""))
}

func TestExemptListNil(t *testing.T) {
	var l *ExemptList
	assert.False(t, l.Contains("/api/user/login"), "a nil list exempts nothing")
}

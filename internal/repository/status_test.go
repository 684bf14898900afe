package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMutationStatusString(t *testing.T) {
	cases := map[MutationStatus]string{
		StatusOK:            "ok",
		StatusAlreadyExists: "already_exists",
		StatusSelfForbidden: "self_forbidden",
		StatusInvalidInput:  "invalid_input",
		StatusNotFound:      "not_found",
	}
	for status, want := range cases {
		assert.Equal(t, want, status.String())
	}
	assert.Equal(t, "unknown", MutationStatus(99).String())
}

package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApiErrSentinelMatching(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("project not found")))
	assert.True(t, IsBadRequest(NewBadRequestError("bad id")))
	assert.True(t, IsBadRequest(NewValidationError("name", "name is required")))
	assert.True(t, IsUnauthenticated(NewUnauthenticatedError("no session")))
	assert.True(t, IsForbidden(NewForbiddenError("admins only")))
	assert.True(t, IsConflict(NewConflictError("taken")))

	assert.False(t, IsNotFound(NewBadRequestError("bad id")))
}

func TestApiErrMessageIncludesDetails(t *testing.T) {
	err := NewApiErr(http.StatusBadRequest, "invalid input")
	assert.Equal(t, "invalid input", err.Error())

	err.Details = "field is too long"
	assert.Equal(t, "invalid input: field is too long", err.Error())
}

func TestFullErrorIncludesCauseChain(t *testing.T) {
	inner := errors.New("driver: connection reset")
	err := NewDatabaseError("find", "projects", inner)

	assert.Contains(t, err.FullError(), "driver: connection reset")
	assert.NotContains(t, err.Error(), "driver: connection reset")
}

func TestNewDatabaseErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		cause  error
		status int
	}{
		{"postgres duplicate", errors.New(`duplicate key value violates unique constraint "idx_tags_name"`), http.StatusConflict},
		{"sqlite duplicate", errors.New("UNIQUE constraint failed: tags.name"), http.StatusConflict},
		{"postgres fk", errors.New(`insert or update on table "project_tags" violates foreign key constraint`), http.StatusBadRequest},
		{"sqlite fk", errors.New("FOREIGN KEY constraint failed"), http.StatusBadRequest},
		{"connection", errors.New("dial tcp: connection refused"), http.StatusServiceUnavailable},
		{"unknown", errors.New("something odd"), http.StatusInternalServerError},
		{"nil cause", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDatabaseError("create", "tag", tt.cause)
			assert.Equal(t, tt.status, err.StatusCode)
		})
	}
}

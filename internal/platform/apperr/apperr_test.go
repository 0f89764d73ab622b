package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(nil))
	assert.Equal(t, KindNotFound, KindOf(NotFound("pet %d", 1)))
	assert.Equal(t, KindInvalidState, KindOf(fmt.Errorf("wrap: %w", InvalidState("x"))))
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("pets: %w", ErrNotFound)))
	assert.Equal(t, KindConflict, KindOf(fmt.Errorf("users: %w", ErrConflict)))
	assert.Equal(t, KindInternal, KindOf(errors.New("db down")))
}

func TestError_MessageAndUnwrap(t *testing.T) {
	inner := errors.New("duplicate key")
	e := &Error{Kind: KindConflict, Message: "Email already in use", Err: inner}

	assert.Equal(t, "Email already in use: duplicate key", e.Error())
	assert.ErrorIs(t, e, inner)
	assert.True(t, Is(e, KindConflict))
}

func TestValidation(t *testing.T) {
	e := Validation([]string{"password: must be at least 10 characters"})
	assert.Equal(t, KindInvalidInput, e.Kind)
	assert.Equal(t, "Validation failed", e.Message)
	assert.Len(t, e.Fields, 1)
}

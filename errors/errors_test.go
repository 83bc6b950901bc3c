package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidConfigError(t *testing.T) {
	err := NewInvalidConfigError("instances[%d].atoms must be >= 2, got %d", 0, 1)

	assert.True(t, IsInvalidConfigError(err))
	assert.True(t, Is(err, ErrInvalidConfig))
	assert.Contains(t, err.Error(), "instances[0].atoms must be >= 2, got 1")
	assert.False(t, IsInvalidConfigError(nil))
	assert.False(t, IsInvalidConfigError(New("other")))
}

func TestWrapfPreservesSentinel(t *testing.T) {
	sentinel := New("term: unsupported conjunction arity")
	err := Wrapf(sentinel, "And: got %d arguments", 12)

	assert.True(t, Is(err, sentinel))
	assert.Equal(t, "And: got 12 arguments: term: unsupported conjunction arity", err.Error())
}

func TestWithHint(t *testing.T) {
	err := WithHint(New("rng is required"), "pass WithSeed or WithRand")

	assert.Equal(t, []string{"pass WithSeed or WithRand"}, GetAllHints(err))
	assert.Equal(t, "rng is required", err.Error())
}

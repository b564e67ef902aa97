package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestWrapf(t *testing.T) {
	original := New("original")
	wrapped := Wrapf(original, "wrapped: %d", 42)

	assert.Contains(t, wrapped.Error(), "wrapped: 42")
	assert.Contains(t, wrapped.Error(), "original")
}

func TestWithHint(t *testing.T) {
	err := WithHint(New("error"), "try this fix")

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "try this fix", hints[0])
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.False(t, IsCapacityExhausted(nil))
	assert.False(t, IsInvalidConfig(nil))
}

func TestSentinelsSurviveWrapping(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{
			name:  "capacity exhausted",
			err:   WithHint(Wrapf(ErrCapacityExhausted, "unique email after %d attempts", 10), "hint"),
			check: IsCapacityExhausted,
		},
		{
			name:  "invalid config",
			err:   Wrap(NewInvalidConfigError("generation.days must be >= 0, got %d", -1), "load"),
			check: IsInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
		})
	}
}

func TestNewInvalidConfigError(t *testing.T) {
	err := NewInvalidConfigError("generation.persons must be >= 0, got %d", -3)

	assert.True(t, Is(err, ErrInvalidConfig))
	assert.Contains(t, err.Error(), "generation.persons must be >= 0, got -3")
	assert.False(t, Is(err, ErrCapacityExhausted))
}

func ExampleWrap() {
	baseErr := New("disk full")
	err := Wrap(baseErr, "failed to write persons table")
	fmt.Println(err)
	// Output: failed to write persons table: disk full
}

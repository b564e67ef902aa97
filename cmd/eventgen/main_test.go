package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teranos/eventgen/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "generic failure",
			err:  errors.New("disk full"),
			want: exitFailure,
		},
		{
			name: "invalid config",
			err:  errors.Wrap(errors.NewInvalidConfigError("generation.seed must be <= %d, got %d", 1, 2), "load"),
			want: exitInvalidConfig,
		},
		{
			name: "capacity exhausted",
			err: errors.WithHint(
				errors.Wrapf(errors.ErrCapacityExhausted, "no unique email after %d attempts", 1000),
				"lower generation.persons"),
			want: exitCapacity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestVerbosityHelp(t *testing.T) {
	help := verbosityHelp()
	assert.Contains(t, help, "-v: above + per-table progress")
	assert.Contains(t, help, "-vv: above + config details")
}

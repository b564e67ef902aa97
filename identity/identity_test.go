package identity

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededFakerIsDeterministic(t *testing.T) {
	a, b := New(7), New(7)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Name(), b.Name())
		assert.Equal(t, a.Username(), b.Username())
		assert.Equal(t, a.IntRange(0, 1000), b.IntRange(0, 1000))
	}
}

func TestUsernameIsLowercase(t *testing.T) {
	f := New(3)
	for i := 0; i < 50; i++ {
		u := f.Username()
		require.NotEmpty(t, u)
		assert.Equal(t, strings.ToLower(u), u)
	}
}

func TestFreeEmailDomain(t *testing.T) {
	f := New(11)
	for i := 0; i < 50; i++ {
		assert.Contains(t, FreeEmailDomains, f.FreeEmailDomain())
	}
}

func TestIntRange(t *testing.T) {
	f := New(5)

	tests := []struct {
		name     string
		min, max int
		lo, hi   int
	}{
		{name: "ordinary", min: 1, max: 6, lo: 1, hi: 6},
		{name: "single value", min: 4, max: 4, lo: 4, hi: 4},
		{name: "inverted bounds", min: 9, max: 2, lo: 2, hi: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				n := f.IntRange(tt.min, tt.max)
				assert.GreaterOrEqual(t, n, tt.lo)
				assert.LessOrEqual(t, n, tt.hi)
			}
		})
	}
}

func TestSentence(t *testing.T) {
	f := New(9)
	assert.NotEmpty(t, f.Sentence(0))
	assert.Len(t, strings.Fields(f.Sentence(8)), 8)
}

func TestPhoneIsDigits(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^[0-9]+$`), New(1).Phone())
}

func TestPick(t *testing.T) {
	f := New(2)
	assert.Equal(t, "", Pick(f, nil))
	assert.Equal(t, "only", Pick(f, []string{"only"}))

	values := []string{"a", "b", "c"}
	for i := 0; i < 30; i++ {
		assert.Contains(t, values, Pick(f, values))
	}
}

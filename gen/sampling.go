package gen

import (
	"github.com/teranos/eventgen/errors"
	"github.com/teranos/eventgen/identity"
)

// Categorical is a discrete distribution over values with integer weights.
type Categorical struct {
	values     []string
	cumulative []int
}

// NewCategorical builds a sampler from parallel value and weight slices.
// Weights must be non-negative and sum to more than zero.
func NewCategorical(values []string, weights []int) (*Categorical, error) {
	if len(values) != len(weights) {
		return nil, errors.Newf("categorical: %d values but %d weights", len(values), len(weights))
	}
	c := &Categorical{
		values:     append([]string(nil), values...),
		cumulative: make([]int, len(weights)),
	}
	total := 0
	for i, w := range weights {
		if w < 0 {
			return nil, errors.Newf("categorical: weight for %q is negative (%d)", values[i], w)
		}
		total += w
		c.cumulative[i] = total
	}
	if total <= 0 {
		return nil, errors.New("categorical: weights must sum to > 0")
	}
	return c, nil
}

// Sample draws one value.
func (c *Categorical) Sample(f identity.Faker) string {
	total := c.cumulative[len(c.cumulative)-1]
	target := f.IntRange(1, total)
	for i, upto := range c.cumulative {
		if target <= upto {
			return c.values[i]
		}
	}
	return c.values[len(c.values)-1]
}

// ClampedRange returns the inclusive bounds [max(1, base-variation), max(lo, base+variation)].
// The interval is never empty, whatever the signs of base and variation.
func ClampedRange(base, variation int) (lo, hi int) {
	lo = max(1, base-variation)
	hi = max(lo, base+variation)
	return lo, hi
}

// DrawClamped draws uniformly from ClampedRange(base, variation).
func DrawClamped(f identity.Faker, base, variation int) int {
	lo, hi := ClampedRange(base, variation)
	return f.IntRange(lo, hi)
}

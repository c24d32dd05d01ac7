// Package random builds everyday helpers (ranges, choices, shuffles, dice,
// UUIDs, strings, dates) on top of three generator primitives. Any Source
// works; *pcg64dxsm.Generator is the usual one.
package random

import (
	"errors"
	"fmt"
	"math"
)

// Source is what the helpers draw from.
type Source interface {
	NextUint64() uint64
	Float64() float64
	IntBelow(bound uint64) (uint64, error)
}

var (
	ErrEmptyRange     = errors.New("random: empty range")
	ErrInvalidRange   = errors.New("random: range bounds must be finite")
	ErrInvalidPercent = errors.New("random: percentage must be within 0..100")
	ErrInvalidRatio   = errors.New("random: ratio needs 0 <= numerator <= denominator, denominator > 0")
	ErrEmptyPool      = errors.New("random: empty character pool")
)

// Rand wraps a Source. Like the Source, it is not safe for concurrent use.
type Rand struct {
	src Source
}

// New returns a Rand drawing from src.
func New(src Source) *Rand {
	return &Rand{src: src}
}

// below is IntBelow for a bound known to be positive.
func (r *Rand) below(n uint64) uint64 {
	v, err := r.src.IntBelow(n)
	if err != nil {
		panic(err)
	}
	return v
}

// Uint64 returns a raw 64-bit draw.
func (r *Rand) Uint64() uint64 {
	return r.src.NextUint64()
}

// Float64 returns a float in [0, 1).
func (r *Rand) Float64() float64 {
	return r.src.Float64()
}

// Integer returns an integer in [min, max]. Reversed bounds are swapped.
func (r *Rand) Integer(min, max int64) int64 {
	if max < min {
		min, max = max, min
	}
	span := uint64(max) - uint64(min) + 1
	if span == 0 {
		// the whole int64 range
		return int64(r.src.NextUint64())
	}
	return int64(uint64(min) + r.below(span))
}

// Real returns a float in [min, max), or [min, max] when inclusive. Bounds
// must be finite; spans wider than math.MaxFloat64 are supported.
func (r *Rand) Real(min, max float64, inclusive bool) (float64, error) {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return 0, fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, min, max)
	}
	if max < min {
		min, max = max, min
	}
	var x float64
	if inclusive {
		x = float64(r.below(1<<53+1)) / (1 << 53)
	} else {
		x = r.src.Float64()
	}
	span := max - min
	v := min + x*span
	if math.IsInf(span, 0) {
		// -max..max style bounds: split the product so nothing overflows
		v = min + x*max - x*min
	}
	if v > max {
		v = max
	}
	return v, nil
}

// Bool returns true or false with equal probability.
func (r *Rand) Bool() bool {
	return r.below(2) == 1
}

// Chance returns true with the given percentage, 0 to 100.
func (r *Rand) Chance(percent float64) (bool, error) {
	if !(percent >= 0 && percent <= 100) {
		return false, fmt.Errorf("%w: %v", ErrInvalidPercent, percent)
	}
	return float64(r.below(100)) < percent, nil
}

// Ratio returns true with probability num/den.
func (r *Rand) Ratio(num, den uint64) (bool, error) {
	if den == 0 || num > den {
		return false, fmt.Errorf("%w: %d/%d", ErrInvalidRatio, num, den)
	}
	return r.below(den) < num, nil
}

// Die rolls one die. Fewer than one side counts as one.
func (r *Rand) Die(sides int) int {
	if sides < 1 {
		sides = 1
	}
	return int(r.Integer(1, int64(sides)))
}

// Dice rolls count dice.
func (r *Rand) Dice(sides, count int) []int {
	if count < 0 {
		count = 0
	}
	out := make([]int, count)
	for i := range out {
		out[i] = r.Die(sides)
	}
	return out
}

package random

import "fmt"

// Pick returns a uniformly chosen element of s.
func Pick[T any](r *Rand, s []T) (T, error) {
	return PickRange(r, s, 0, len(s))
}

// PickRange returns a uniformly chosen element of s[begin:end]. The range is
// clipped to the slice.
func PickRange[T any](r *Rand, s []T, begin, end int) (T, error) {
	begin, end, err := clip(len(s), begin, end)
	if err != nil {
		var zero T
		return zero, err
	}
	return s[begin+int(r.below(uint64(end-begin)))], nil
}

// Picker returns a function picking from s[begin:end] on every call.
func Picker[T any](r *Rand, s []T, begin, end int) (func() T, error) {
	begin, end, err := clip(len(s), begin, end)
	if err != nil {
		return nil, err
	}
	return func() T {
		return s[begin+int(r.below(uint64(end-begin)))]
	}, nil
}

// Shuffle permutes s in place (Fisher-Yates).
func Shuffle[T any](r *Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := int(r.below(uint64(i + 1)))
		s[i], s[j] = s[j], s[i]
	}
}

// Sample returns k distinct elements of s in random order. k is clamped to
// [0, len(s)]; s is not modified.
func Sample[T any](r *Rand, s []T, k int) []T {
	if k < 0 {
		k = 0
	}
	if k > len(s) {
		k = len(s)
	}
	c := append([]T(nil), s...)
	Shuffle(r, c)
	return c[:k]
}

func clip(n, begin, end int) (int, int, error) {
	if begin < 0 {
		begin = 0
	}
	if end > n {
		end = n
	}
	if end <= begin {
		return 0, 0, fmt.Errorf("%w: [%d, %d)", ErrEmptyRange, begin, end)
	}
	return begin, end, nil
}

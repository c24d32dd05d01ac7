package random

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultPool is the alphabet used by String.
const DefaultPool = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz_-"

const (
	lowerHex = "0123456789abcdef"
	upperHex = "0123456789ABCDEF"
)

type reader struct {
	src Source
}

// Read fills p big-endian from successive draws, discarding the unused
// tail of the last one.
func (r *reader) Read(p []byte) (n int, err error) {
	var buf [8]byte
	for n < len(p) {
		binary.BigEndian.PutUint64(buf[:], r.src.NextUint64())
		n += copy(p[n:], buf[:])
	}
	return n, nil
}

// Reader returns an endless byte stream drawn from r.
func (r *Rand) Reader() io.Reader {
	return &reader{src: r.src}
}

// Bytes returns n random bytes.
func (r *Rand) Bytes(n int) []byte {
	if n < 0 {
		n = 0
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r.Reader(), b); err != nil {
		// reader never fails
		panic(err)
	}
	return b
}

// UUID4 returns a version 4, variant 10 UUID.
func (r *Rand) UUID4() uuid.UUID {
	u, err := uuid.NewRandomFromReader(r.Reader())
	if err != nil {
		// reader never fails
		panic(err)
	}
	return u
}

// String returns n characters from DefaultPool.
func (r *Rand) String(n int) string {
	s, _ := r.StringFrom(DefaultPool, n)
	return s
}

// StringFrom returns n characters drawn uniformly from pool.
func (r *Rand) StringFrom(pool string, n int) (string, error) {
	if n <= 0 {
		return "", nil
	}
	chars := []rune(pool)
	if len(chars) == 0 {
		return "", ErrEmptyPool
	}
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteRune(chars[r.below(uint64(len(chars)))])
	}
	return sb.String(), nil
}

// Hex returns n hex digits, one draw per digit.
func (r *Rand) Hex(n int, upper bool) string {
	alphabet := lowerHex
	if upper {
		alphabet = upperHex
	}
	s, _ := r.StringFrom(alphabet, n)
	return s
}

// Date returns an instant in [start, end] at millisecond resolution, in
// start's location. Reversed bounds are swapped.
func (r *Rand) Date(start, end time.Time) (time.Time, error) {
	if start.IsZero() || end.IsZero() {
		return time.Time{}, fmt.Errorf("%w: zero time", ErrEmptyRange)
	}
	a, b := start.UnixMilli(), end.UnixMilli()
	if b < a {
		a, b = b, a
	}
	off := r.below(uint64(b-a) + 1)
	return time.UnixMilli(a + int64(off)).In(start.Location()), nil
}

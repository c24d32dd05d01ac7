package pcg64dxsm

import (
	"encoding/binary"
	"io"
	"math/big"
	"math/rand"
	randv2 "math/rand/v2"

	"github.com/colocohen/pcg64dxsm/uint128"
)

var (
	_ rand.Source64 = (*Generator)(nil)
	_ randv2.Source = (*Generator)(nil)
	_ io.Reader     = (*Generator)(nil)
)

// Uint64 implements rand.Source64 and math/rand/v2.Source.
func (g *Generator) Uint64() uint64 {
	return g.NextUint64()
}

// Int63 implements rand.Source.
func (g *Generator) Int63() int64 {
	return int64(g.NextUint64() >> 1)
}

// Seed implements rand.Source. It re-seeds g with state seed and
// increment 1, discarding the previous seed record.
func (g *Generator) Seed(seed int64) {
	g.seed(uint128.FromBig(big.NewInt(seed)), uint128.One)
}

// Read fills p with bytes taken big-endian from successive draws. The unused
// tail of the last draw is discarded. It never fails.
func (g *Generator) Read(p []byte) (n int, err error) {
	var buf [8]byte
	for n < len(p) {
		binary.BigEndian.PutUint64(buf[:], g.NextUint64())
		n += copy(p[n:], buf[:])
	}
	return n, nil
}

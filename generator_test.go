package pcg64dxsm

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/colocohen/pcg64dxsm/uint128"
)

func newTestGenerator() *Generator {
	return FromSeed(
		uint128.MustParse("0x0123456789abcdef0123456789abcdef"),
		uint128.MustParse("0xfedcba9876543210fedcba9876543210"),
	)
}

func draws(g *Generator, n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = g.NextUint64()
	}
	return out
}

func TestZeroSeedOracle(t *testing.T) {
	// increment 0 is forced to 1
	g := FromSeed(uint128.Zero, uint128.Zero)
	want := []uint64{0x0, 0x5238ea76d1f0df4a, 0x1a3c4747022e48a4}
	for i, w := range want {
		if got := g.NextUint64(); got != w {
			t.Fatalf("draw %d: got %#x; want %#x", i, got, w)
		}
	}
	if g.state != uint128.MustParse("0xf150a38501aa77f00235d68d979d6bed") {
		t.Fatalf("state = %s", g.state.Hex())
	}
	if p, ok := g.Pos64(); !ok || p != 3 {
		t.Fatalf("pos = %d", p)
	}
}

func TestKnownSequences(t *testing.T) {
	tests := []struct {
		seed Seed
		want []uint64
	}{
		{newSeed(t, "0x0123456789abcdef0123456789abcdef", "0xfedcba9876543210fedcba9876543210"),
			[]uint64{0x3b4cb037975a20c8, 0xf331c1ec6f1b54fb, 0x7e0635e093659992}},
		{newSeed(t, "42", "54"), []uint64{0xf4bb0d54315e2ee8, 0x82b6848af2319110}},
		{Bytes(seq(16)), []uint64{0xbbe15b4167c357d1}},
		{Bytes(seq(32)), []uint64{0x6fddf82b9cb663e0}},
		{BigPair(big.NewInt(42), big.NewInt(54)), []uint64{0xf4bb0d54315e2ee8}},
	}
	for i, test := range tests {
		g, err := New(WithSeed(test.seed))
		if err != nil {
			t.Fatalf("%d: %v", i, err)
		}
		for j, w := range test.want {
			if got := g.NextUint64(); got != w {
				t.Errorf("%d draw %d: got %#x; want %#x", i, j, got, w)
			}
		}
	}
}

func newSeed(t *testing.T, state, inc string) Seed {
	s, err := ParsePair(state, inc)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func seq(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestEntropySeed(t *testing.T) {
	g, err := New(WithEntropy(bytes.NewReader(seq(32))))
	if err != nil {
		t.Fatal(err)
	}
	if got := g.NextUint64(); got != 0x6fddf82b9cb663e0 {
		t.Fatalf("got %#x", got)
	}

	if _, err := New(WithEntropy(bytes.NewReader(seq(8)))); !errors.Is(err, ErrNoEntropy) {
		t.Fatalf("short entropy: err = %v", err)
	}
	if _, err := New(WithEntropy(nil)); !errors.Is(err, ErrNoEntropy) {
		t.Fatalf("nil entropy: err = %v", err)
	}

	a, err := FromRandom()
	if err != nil {
		t.Fatal(err)
	}
	b, err := FromRandom()
	if err != nil {
		t.Fatal(err)
	}
	if a.State() == b.State() {
		t.Fatal("two entropy-seeded generators share state")
	}
}

func TestSeedErrors(t *testing.T) {
	if _, err := New(WithSeed(Bytes(seq(20)))); !errors.Is(err, ErrSeedLength) {
		t.Errorf("20 bytes: err = %v", err)
	}
	if _, err := ParsePair("nope", "1"); !errors.Is(err, uint128.ErrSyntax) {
		t.Errorf("bad state: err = %v", err)
	}
	if _, err := ParsePair("1", "0x"); !errors.Is(err, uint128.ErrSyntax) {
		t.Errorf("bad increment: err = %v", err)
	}
}

func TestDeterminism(t *testing.T) {
	a, b := newTestGenerator(), newTestGenerator()
	for i := 0; i < 1000; i++ {
		if x, y := a.NextUint64(), b.NextUint64(); x != y {
			t.Fatalf("draw %d: %#x != %#x", i, x, y)
		}
	}
}

func TestIncrementForcedOdd(t *testing.T) {
	g := FromSeed(uint128.One, uint128.From64(4))
	if g.Increment() != uint128.From64(5) {
		t.Fatalf("increment = %s", g.Increment().Hex())
	}
}

func TestClone(t *testing.T) {
	g := newTestGenerator()
	draws(g, 5)
	c := g.Clone()
	want := draws(g, 10)
	got := draws(c, 10)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("draw %d: %#x != %#x", i, got[i], want[i])
		}
	}
	c.AdvanceInt64(100)
	if g.Pos().Int64() != 15 || c.Pos().Int64() != 115 {
		t.Fatalf("positions %s %s", g.Pos(), c.Pos())
	}
}

func TestFloat64(t *testing.T) {
	g := FromSeed(uint128.From64(42), uint128.From64(54))
	want := []float64{0.9559791880177434, 0.510597499773388}
	for i, w := range want {
		if got := g.Float64(); got != w {
			t.Errorf("%d: got %v; want %v", i, got, w)
		}
	}
	for i := 0; i < 10000; i++ {
		if f := g.Float64(); f < 0 || f >= 1 {
			t.Fatalf("out of range: %v", f)
		}
	}
}

func TestReadAndSource(t *testing.T) {
	g := FromSeed(uint128.Zero, uint128.One)
	buf := make([]byte, 12)
	n, err := g.Read(buf)
	if err != nil || n != 12 {
		t.Fatalf("Read = %d, %v", n, err)
	}
	want := []byte{0, 0, 0, 0, 0, 0, 0, 0, 0x52, 0x38, 0xea, 0x76}
	if !bytes.Equal(buf, want) {
		t.Fatalf("Read = %x", buf)
	}
	// the tail of the second draw is discarded
	if got := g.Uint64(); got != 0x1a3c4747022e48a4 {
		t.Fatalf("Uint64 = %#x", got)
	}

	g.Seed(42)
	h := FromSeed(uint128.From64(42), uint128.One)
	if g.Int63() != int64(h.NextUint64()>>1) {
		t.Fatal("Seed/Int63 mismatch")
	}
}

package pcg64dxsm

import (
	"errors"
	"math"
	"testing"

	"github.com/colocohen/pcg64dxsm/uint128"
)

func TestIntBelowOracle(t *testing.T) {
	g := FromSeed(uint128.Zero, uint128.One)
	want := []uint64{1, 0, 1, 3, 0, 2, 3, 1, 4, 4}
	for i, w := range want {
		got, err := g.IntBelow(6)
		if err != nil {
			t.Fatal(err)
		}
		if got != w {
			t.Fatalf("%d: got %d; want %d", i, got, w)
		}
	}
}

func TestIntBelowZero(t *testing.T) {
	g := newTestGenerator()
	before := g.State()
	if _, err := g.IntBelow(0); !errors.Is(err, ErrBound) {
		t.Fatalf("err = %v", err)
	}
	if g.State() != before {
		t.Fatal("rejected bound consumed a draw")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("Uint64n(0) did not panic")
		}
	}()
	g.Uint64n(0)
}

func TestIntBelowUniform(t *testing.T) {
	const (
		bound   = 7
		samples = 700000
	)
	g := newTestGenerator()
	var counts [bound]int
	for i := 0; i < samples; i++ {
		v := g.Uint64n(bound)
		if v >= bound {
			t.Fatalf("out of range: %d", v)
		}
		counts[v]++
	}
	expected := float64(samples) / bound
	// chi-square with 6 degrees of freedom, p ~ 0.001
	var chi2 float64
	for _, c := range counts {
		d := float64(c) - expected
		chi2 += d * d / expected
	}
	if chi2 > 22.46 {
		t.Fatalf("chi2 = %.2f, counts %v", chi2, counts)
	}
}

func TestIntBelowLargeBound(t *testing.T) {
	g := newTestGenerator()
	bounds := []uint64{1, 2, 1 << 63, 1<<63 + 1, math.MaxUint64}
	for _, b := range bounds {
		for i := 0; i < 1000; i++ {
			if v := g.Uint64n(b); v >= b {
				t.Fatalf("bound %d: got %d", b, v)
			}
		}
	}
}

package pcg64dxsm

import (
	"encoding/json"
	"errors"
	"math/big"
	"testing"

	"github.com/colocohen/pcg64dxsm/uint128"
)

func TestSnapshotFormat(t *testing.T) {
	g := FromSeed(uint128.Zero, uint128.One)
	draws(g, 3)
	s := g.State()
	want := Snapshot{
		State:     "0xf150a38501aa77f00235d68d979d6bed",
		Increment: "0x00000000000000000000000000000001",
		Position:  "3",
	}
	if s != want {
		t.Fatalf("got %+v; want %+v", s, want)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	g := newTestGenerator()
	draws(g, 123)

	r, err := Restore(g.State())
	if err != nil {
		t.Fatal(err)
	}
	want := draws(g, 1000)
	got := draws(r, 1000)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("draw %d: %#x != %#x", i, got[i], want[i])
		}
	}
}

func TestSetStateKeepsSeekExact(t *testing.T) {
	g := newTestGenerator()
	draws(g, 50)

	r := FromSeed(uint128.One, uint128.One)
	if err := r.SetState(g.State()); err != nil {
		t.Fatal(err)
	}
	r.SeekInt64(7)
	g.SeekInt64(7)
	if r.state != g.state || r.inc != g.inc {
		t.Fatalf("seek after import: %+v; want %+v", r.State(), g.State())
	}
	if r.Reset().State() != g.Reset().State() {
		t.Fatal("reset after import differs")
	}
}

func TestSetStateForcesOdd(t *testing.T) {
	g := newTestGenerator()
	if err := g.SetState(Snapshot{State: "0x5", Increment: "0x4"}); err != nil {
		t.Fatal(err)
	}
	if g.Increment() != uint128.From64(5) {
		t.Fatalf("increment = %s", g.Increment().Hex())
	}
	// position kept when absent
	if g.Pos().Sign() != 0 {
		t.Fatalf("pos = %s", g.Pos())
	}
}

func TestSetStateErrorLeavesGenerator(t *testing.T) {
	g := newTestGenerator()
	before := g.State()
	bad := []Snapshot{
		{State: "xyz", Increment: "1"},
		{State: "1", Increment: ""},
		{State: "1", Increment: "1", Position: "1.5"},
	}
	for _, s := range bad {
		if err := g.SetState(s); !errors.Is(err, ErrSnapshot) {
			t.Errorf("%+v: err = %v", s, err)
		}
	}
	if g.State() != before {
		t.Fatal("failed import changed the generator")
	}
}

func TestParseSnapshot(t *testing.T) {
	tests := []struct {
		in   string
		want Snapshot
	}{
		{`{"state":"0x1","increment":"0x3","position":"10"}`, Snapshot{"0x1", "0x3", "10"}},
		{`{"state":"0x1","inc":"0x3","counter":"-4"}`, Snapshot{"0x1", "0x3", "-4"}},
		{`{"state":12,"inc":3,"counter":99}`, Snapshot{"12", "3", "99"}},
		{`{"state":"0x1","increment":"0x3"}`, Snapshot{"0x1", "0x3", ""}},
	}
	for _, test := range tests {
		got, err := ParseSnapshot([]byte(test.in))
		if err != nil {
			t.Errorf("%s: %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("%s: got %+v; want %+v", test.in, got, test.want)
		}
	}

	for _, bad := range []string{`{`, `{"state":"0x1"}`, `[]`} {
		if _, err := ParseSnapshot([]byte(bad)); !errors.Is(err, ErrSnapshot) {
			t.Errorf("%s: err = %v", bad, err)
		}
	}
}

func TestJSON(t *testing.T) {
	g := newTestGenerator()
	g.Advance(new(big.Int).Lsh(big.NewInt(1), 100))
	data, err := json.Marshal(g)
	if err != nil {
		t.Fatal(err)
	}
	t.Log(string(data))

	var r Generator
	if err := json.Unmarshal(data, &r); err != nil {
		t.Fatal(err)
	}
	if r.Pos().Cmp(g.Pos()) != 0 {
		t.Fatalf("pos = %s; want %s", r.Pos(), g.Pos())
	}
	if r.NextUint64() != g.NextUint64() {
		t.Fatal("draws differ after json round trip")
	}
}

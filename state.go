package pcg64dxsm

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/colocohen/pcg64dxsm/uint128"
	"github.com/tidwall/gjson"
)

// Snapshot is the exported form of a generator: state and increment as
// 0x-prefixed 32-digit hex, position in decimal.
type Snapshot struct {
	State     string `json:"state"`
	Increment string `json:"increment"`
	Position  string `json:"position,omitempty"`
}

// State exports g.
func (g *Generator) State() Snapshot {
	return Snapshot{
		State:     g.state.Hex(),
		Increment: g.inc.Hex(),
		Position:  g.Pos().String(),
	}
}

// SetState imports s into g. The increment is forced odd. An empty position
// keeps the current one. The seed record is rebuilt from the imported state
// so that Seek and Reset stay exact. On error g is unchanged.
func (g *Generator) SetState(s Snapshot) error {
	state, err := uint128.Parse(s.State)
	if err != nil {
		return fmt.Errorf("%w: state: %v", ErrSnapshot, err)
	}
	inc, err := uint128.Parse(s.Increment)
	if err != nil {
		return fmt.Errorf("%w: increment: %v", ErrSnapshot, err)
	}
	inc = inc.SetOdd()

	pos := new(big.Int)
	if g.base != nil {
		pos = g.Pos()
	}
	if s.Position != "" {
		if _, ok := pos.SetString(s.Position, 10); !ok {
			return fmt.Errorf("%w: position %q", ErrSnapshot, s.Position)
		}
	}

	// state at position zero, then undo the mixing draw and the
	// state += inc of the canonical seeding step
	origin := move(state, inc, new(big.Int).Neg(pos))
	g.seedState = backward(inc).apply(origin).Sub(inc)
	g.seedInc = inc

	g.state = state
	g.inc = inc
	g.base = pos
	g.n = 0
	return nil
}

// Restore creates a generator from a snapshot.
func Restore(s Snapshot) (*Generator, error) {
	g := &Generator{}
	if err := g.SetState(s); err != nil {
		return nil, err
	}
	return g, nil
}

// ParseSnapshot decodes a JSON snapshot. The keys "inc" and "counter" are
// accepted in place of "increment" and "position", and numbers in place of
// strings.
func ParseSnapshot(data []byte) (Snapshot, error) {
	if !gjson.ValidBytes(data) {
		return Snapshot{}, fmt.Errorf("%w: malformed json", ErrSnapshot)
	}
	res := gjson.GetManyBytes(data, "state", "increment", "inc", "position", "counter")

	var s Snapshot
	s.State = text(res[0])
	s.Increment = text(res[1])
	if !res[1].Exists() {
		s.Increment = text(res[2])
	}
	s.Position = text(res[3])
	if !res[3].Exists() {
		s.Position = text(res[4])
	}
	if s.State == "" || s.Increment == "" {
		return Snapshot{}, fmt.Errorf("%w: state and increment are required", ErrSnapshot)
	}
	return s, nil
}

func text(r gjson.Result) string {
	if r.Type == gjson.Number {
		return r.Raw
	}
	return r.String()
}

// MarshalJSON encodes g as its Snapshot.
func (g *Generator) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.State())
}

// UnmarshalJSON restores g from a Snapshot.
func (g *Generator) UnmarshalJSON(data []byte) error {
	s, err := ParseSnapshot(data)
	if err != nil {
		return err
	}
	return g.SetState(s)
}

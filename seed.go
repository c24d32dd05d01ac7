package pcg64dxsm

import (
	"fmt"
	"io"
	"math/big"

	"github.com/colocohen/pcg64dxsm/uint128"
)

// Seed is the material a generator is constructed from. It is one of
// Entropy, Bytes, Pair or BigPair.
type Seed interface {
	// material returns the raw state and increment before odd-forcing.
	material(entropy io.Reader) (state, inc uint128.Uint128, err error)
}

type entropySeed struct{}

// Entropy draws 32 bytes from the configured entropy source: the first 16
// are the state, the last 16 the increment.
func Entropy() Seed {
	return entropySeed{}
}

func (entropySeed) material(entropy io.Reader) (state, inc uint128.Uint128, err error) {
	if entropy == nil {
		return state, inc, ErrNoEntropy
	}
	var buf [32]byte
	if _, err := io.ReadFull(entropy, buf[:]); err != nil {
		return state, inc, fmt.Errorf("%w: %v", ErrNoEntropy, err)
	}
	return uint128.FromBytes(buf[:16]), uint128.FromBytes(buf[16:]), nil
}

type bytesSeed []byte

// Bytes seeds from 16 bytes (state only, increment 1) or 32 bytes (state
// then increment), both big-endian.
func Bytes(b []byte) Seed {
	return append(bytesSeed(nil), b...)
}

func (b bytesSeed) material(io.Reader) (state, inc uint128.Uint128, err error) {
	switch len(b) {
	case 16:
		return uint128.FromBytes(b), uint128.One, nil
	case 32:
		return uint128.FromBytes(b[:16]), uint128.FromBytes(b[16:]), nil
	}
	return state, inc, fmt.Errorf("%w: got %d bytes", ErrSeedLength, len(b))
}

type pairSeed struct {
	state, inc uint128.Uint128
}

// Pair seeds from an explicit state and increment.
func Pair(state, inc uint128.Uint128) Seed {
	return pairSeed{state: state, inc: inc}
}

func (p pairSeed) material(io.Reader) (state, inc uint128.Uint128, err error) {
	return p.state, p.inc, nil
}

// BigPair seeds from arbitrary-width integers, reduced modulo 2^128.
func BigPair(state, inc *big.Int) Seed {
	return Pair(uint128.FromBig(state), uint128.FromBig(inc))
}

// ParsePair seeds from decimal or hex strings as accepted by uint128.Parse.
func ParsePair(state, inc string) (Seed, error) {
	s, err := uint128.Parse(state)
	if err != nil {
		return nil, fmt.Errorf("seed state: %w", err)
	}
	i, err := uint128.Parse(inc)
	if err != nil {
		return nil, fmt.Errorf("seed increment: %w", err)
	}
	return Pair(s, i), nil
}

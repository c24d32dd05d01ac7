package crypt

import (
	"encoding/binary"
	"io"

	"github.com/colocohen/pcg64dxsm"
	"github.com/colocohen/pcg64dxsm/uint128"
)

// 验证接口实现
var _ io.Reader = (*Keystream)(nil)

// Keystream is a continuous byte stream cut from 64-bit draws. Unlike
// Generator.Read it carries the unused bytes of a draw over to the next
// Read, so the stream does not depend on how callers chunk their reads.
type Keystream struct {
	g   *pcg64dxsm.Generator
	buf [8]byte
	off int
}

// NewKeystream returns the keystream for key on the given stream.
func NewKeystream(key, stream uint128.Uint128) io.Reader {
	return &Keystream{
		g:   pcg64dxsm.FromSeed(key, stream),
		off: 8,
	}
}

// Read never fails.
func (k *Keystream) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if k.off == len(k.buf) {
			binary.BigEndian.PutUint64(k.buf[:], k.g.NextUint64())
			k.off = 0
		}
		c := copy(p[n:], k.buf[k.off:])
		n += c
		k.off += c
	}
	return n, nil
}

package xor

import (
	"io"

	"github.com/colocohen/pcg64dxsm/crypt"
	"github.com/colocohen/pcg64dxsm/uint128"
)

var _ crypt.Crypt = &xorCrypt{}

type xorCrypt struct {
	key uint128.Uint128
}

func (c *xorCrypt) NewEncoder(w io.Writer, opts ...crypt.EncoderOption) io.Writer {
	opt := newXorEncoderOptions(opts...)
	return &xorEncoder{
		w:   w,
		rnd: opt.keystreamNewer(c.key, opt.stream),
	}
}

func (c *xorCrypt) NewDecoder(r io.Reader, opts ...crypt.DecoderOption) io.Reader {
	opt := newXorDecoderOptions(opts...)
	return &xorDecoder{
		r:   r,
		rnd: opt.keystreamNewer(c.key, opt.stream),
	}
}

// NewCrypt create a new Crypt
func NewCrypt(key uint128.Uint128) crypt.Crypt {
	return &xorCrypt{
		key: key,
	}
}

type xorEncoder struct {
	w   io.Writer
	rnd io.Reader
	buf []byte
}

func (e *xorEncoder) Write(p []byte) (n int, err error) {
	n = len(p)
	if cap(e.buf) < n {
		e.buf = make([]byte, n)
	} else {
		e.buf = e.buf[:n]
	}

	if _, err := io.ReadFull(e.rnd, e.buf); err != nil {
		return 0, err
	}
	for i, b := range p {
		e.buf[i] ^= b
	}

	return e.w.Write(e.buf)
}

type xorDecoder struct {
	r   io.Reader
	rnd io.Reader
	buf []byte
}

func (d *xorDecoder) Read(p []byte) (n int, err error) {
	n, err = d.r.Read(p)
	if n == 0 {
		return n, err
	}
	if cap(d.buf) < n {
		d.buf = make([]byte, n)
	} else {
		d.buf = d.buf[:n]
	}

	if _, err := io.ReadFull(d.rnd, d.buf); err != nil {
		return 0, err
	}
	for i, b := range d.buf {
		p[i] ^= b
	}

	return n, err
}

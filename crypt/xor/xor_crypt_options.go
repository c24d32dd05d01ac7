package xor

import (
	"io"

	"github.com/colocohen/pcg64dxsm/crypt"
	"github.com/colocohen/pcg64dxsm/uint128"
)

// DefaultStream is the keystream increment used when none is set.
var DefaultStream = uint128.MustParse("0x5851f42d4c957f2d14057b7ef767814f")

type xorEncoderOptions struct {
	stream         uint128.Uint128
	keystreamNewer KeystreamNewer
}

func newXorEncoderOptions(opts ...crypt.EncoderOption) *xorEncoderOptions {
	opt := xorEncoderOptions{stream: DefaultStream}
	for _, o := range opts {
		o(&opt)
	}
	if opt.keystreamNewer == nil {
		opt.keystreamNewer = crypt.NewKeystream
	}
	return &opt
}

// KeystreamNewer creates the keystream for a key on a stream.
type KeystreamNewer func(key, stream uint128.Uint128) io.Reader

func WithEncoderStream(stream uint128.Uint128) crypt.EncoderOption {
	return func(opts crypt.EncoderOptions) {
		if o, ok := opts.(*xorEncoderOptions); ok {
			o.stream = stream
		}
	}
}

func WithEncoderKeystreamNewer(newer KeystreamNewer) crypt.EncoderOption {
	return func(opts crypt.EncoderOptions) {
		if o, ok := opts.(*xorEncoderOptions); ok {
			o.keystreamNewer = newer
		}
	}
}

type xorDecoderOptions struct {
	stream         uint128.Uint128
	keystreamNewer KeystreamNewer
}

func newXorDecoderOptions(opts ...crypt.DecoderOption) *xorDecoderOptions {
	opt := xorDecoderOptions{stream: DefaultStream}
	for _, o := range opts {
		o(&opt)
	}
	if opt.keystreamNewer == nil {
		opt.keystreamNewer = crypt.NewKeystream
	}
	return &opt
}

func WithDecoderStream(stream uint128.Uint128) crypt.DecoderOption {
	return func(opts crypt.DecoderOptions) {
		if o, ok := opts.(*xorDecoderOptions); ok {
			o.stream = stream
		}
	}
}

func WithDecoderKeystreamNewer(newer KeystreamNewer) crypt.DecoderOption {
	return func(opts crypt.DecoderOptions) {
		if o, ok := opts.(*xorDecoderOptions); ok {
			o.keystreamNewer = newer
		}
	}
}

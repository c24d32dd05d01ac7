package pcg64dxsm

import (
	"crypto/rand"
	"io"
)

// Options is generator construction options
type Options struct {
	seed    Seed
	entropy io.Reader
}

// Option is option setter for generator construction
type Option func(*Options)

// default generator options
var (
	DefaultEntropy io.Reader = rand.Reader
)

func newOptions(opts ...Option) *Options {
	opt := &Options{
		entropy: DefaultEntropy,
	}
	for _, o := range opts {
		o(opt)
	}

	if opt.seed == nil {
		opt.seed = Entropy()
	}

	return opt
}

// WithSeed sets the seed material opt
func WithSeed(s Seed) Option {
	return func(opts *Options) {
		opts.seed = s
	}
}

// WithEntropy sets the secure random byte source used by an Entropy seed
func WithEntropy(r io.Reader) Option {
	return func(opts *Options) {
		opts.entropy = r
	}
}

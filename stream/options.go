package stream

import (
	"time"

	"github.com/colocohen/pcg64dxsm"
	"github.com/colocohen/pcg64dxsm/counter"
)

// ServerOptions is server options
type ServerOptions struct {
	addr   string
	root   *pcg64dxsm.Generator
	served counter.Counter

	pingPeriod  time.Duration
	readTimeout time.Duration
}

// ServerOption is option setter for server
type ServerOption func(*ServerOptions)

// default server options
var (
	DefaultListenAddress = "ws://0.0.0.0:8080/draws"
	DefaultPingPeriod    = time.Second * 10
	DefaultReadTimeout   = time.Second * 15
)

// MaxCount caps the number of values returned by one request.
const MaxCount = 4096

func newServerOptions(opts ...ServerOption) *ServerOptions {
	opt := &ServerOptions{}
	for _, o := range opts {
		o(opt)
	}

	if opt.addr == "" {
		opt.addr = DefaultListenAddress
	}
	if opt.pingPeriod <= 0 {
		opt.pingPeriod = DefaultPingPeriod
	}
	if opt.readTimeout <= 0 {
		opt.readTimeout = DefaultReadTimeout
	}

	return opt
}

// WithListenAddress sets server listen address opt
func WithListenAddress(addr string) ServerOption {
	return func(opts *ServerOptions) {
		opts.addr = addr
	}
}

// WithGenerator sets the root generator connections are jumped from
func WithGenerator(g *pcg64dxsm.Generator) ServerOption {
	return func(opts *ServerOptions) {
		opts.root = g
	}
}

// WithServedCounter sets the counter tallying values served
func WithServedCounter(c counter.Counter) ServerOption {
	return func(opts *ServerOptions) {
		opts.served = c
	}
}

// WithKeepalive sets how often the server pings and how long a connection
// may stay silent, answering neither requests nor pings, before it is dropped
func WithKeepalive(pingPeriod, readTimeout time.Duration) ServerOption {
	return func(opts *ServerOptions) {
		opts.pingPeriod = pingPeriod
		opts.readTimeout = readTimeout
	}
}

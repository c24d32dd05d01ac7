// Package stream serves generator output over WebSocket. Every connection
// draws from its own generator, jumped from a shared root, so connections
// never share mutable state.
package stream

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/colocohen/pcg64dxsm"
	"github.com/colocohen/pcg64dxsm/counter/period"
	"github.com/colocohen/pcg64dxsm/logger"
	"github.com/colocohen/pcg64dxsm/random"
)

var (
	ErrCount     = fmt.Errorf("stream: count must be within 1..%d", MaxCount)
	ErrUnknownOp = errors.New("stream: unknown op")
)

var (
	upgrader = websocket.Upgrader{
		ReadBufferSize:  4 << 10,
		WriteBufferSize: 4 << 10,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
)

// Server hands out jumped generators to WebSocket connections.
type Server struct {
	opts ServerOptions

	mu    sync.Mutex
	root  *pcg64dxsm.Generator
	jumps int64
}

// NewServer creates a server. Without WithGenerator the root generator is
// seeded from entropy.
func NewServer(opts ...ServerOption) (*Server, error) {
	opt := newServerOptions(opts...)
	if opt.root == nil {
		g, err := pcg64dxsm.New()
		if err != nil {
			return nil, err
		}
		opt.root = g
	}
	if opt.served == nil {
		opt.served = period.New(time.Second)
	}
	return &Server{
		opts: *opt,
		root: opt.root,
	}, nil
}

// next returns the generator for a new connection and its jump index.
func (s *Server) next() (*pcg64dxsm.Generator, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jumps++
	return s.root.Jumped(s.jumps), s.jumps
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log().Warn().Err(err).Str("remote", r.RemoteAddr).Msg("upgrade failed")
		return
	}
	defer conn.Close()

	g, jump := s.next()
	log := logger.Log().With().Int64("jump", jump).Str("remote", r.RemoteAddr).Logger()
	log.Info().Msg("stream opened")

	conn.SetReadDeadline(time.Now().Add(s.opts.readTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(s.opts.readTimeout))
		return nil
	})
	done := make(chan struct{})
	go startPing(conn, done, s.opts.pingPeriod)
	defer close(done)

	rnd := random.New(g)
	for {
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn().Err(err).Msg("stream read")
			}
			break
		}
		conn.SetReadDeadline(time.Now().Add(s.opts.readTimeout))
		resp, n := handle(g, rnd, req)
		if resp.Error != "" {
			log.Debug().Str("op", string(req.Op)).Str("error", resp.Error).Msg("request rejected")
		}
		s.opts.served.Add(int64(n))
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(resp); err != nil {
			log.Warn().Err(err).Msg("stream write")
			break
		}
	}

	log.Info().
		Str("position", g.Pos().String()).
		Int64("served", s.opts.served.Value()).
		Int64("rate", s.opts.served.RatePerSec()).
		Msg("stream closed")
}

// handle answers req from g and reports how many values it produced.
func handle(g *pcg64dxsm.Generator, rnd *random.Rand, req Request) (Response, int) {
	var resp Response
	count := req.Count
	if count == 0 {
		count = 1
	}
	if count < 0 || count > MaxCount {
		resp.Error = fmt.Sprintf("%v: got %d", ErrCount, req.Count)
		return resp, 0
	}

	switch req.Op {
	case OpUint64:
		resp.Uint64s = make([]uint64, count)
		for i := range resp.Uint64s {
			resp.Uint64s[i] = g.NextUint64()
		}
	case OpFloat64:
		resp.Floats = make([]float64, count)
		for i := range resp.Floats {
			resp.Floats[i] = g.Float64()
		}
	case OpBelow:
		if req.Bound == 0 {
			resp.Error = pcg64dxsm.ErrBound.Error()
			return resp, 0
		}
		resp.Uint64s = make([]uint64, count)
		for i := range resp.Uint64s {
			resp.Uint64s[i] = g.Uint64n(req.Bound)
		}
	case OpUUID:
		resp.UUIDs = make([]string, count)
		for i := range resp.UUIDs {
			resp.UUIDs[i] = rnd.UUID4().String()
		}
	case OpState:
		st := g.State()
		resp.State = &st
		return resp, 0
	default:
		resp.Error = fmt.Sprintf("%v: %q", ErrUnknownOp, req.Op)
		return resp, 0
	}
	return resp, count
}

// ListenAndServe listens on the configured ws:// address.
func (s *Server) ListenAndServe() error {
	u, err := url.Parse(s.opts.addr)
	if err != nil {
		return err
	}
	path := u.RequestURI()
	mux := http.NewServeMux()
	mux.Handle(path, s)
	srv := &http.Server{
		Addr:    u.Host,
		Handler: mux,
	}
	logger.Log().Info().Str("address", u.Host).Str("path", path).Msg("stream server listening")
	return srv.ListenAndServe()
}

const writeTimeout = time.Second

// startPing pings conn until done is closed. The read deadline is pushed
// forward by each pong and each request.
func startPing(conn *websocket.Conn, done chan struct{}, pingPeriod time.Duration) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(writeTimeout))
		case <-done:
			return
		}
	}
}

package stream

import (
	"context"
	"errors"

	"github.com/gorilla/websocket"

	"github.com/colocohen/pcg64dxsm"
)

// ErrRemote wraps errors reported by the server.
var ErrRemote = errors.New("stream: server error")

// Client issues draw requests over one connection. It is not safe for
// concurrent use.
//
// A background reader keeps the connection drained so server pings are
// answered while the client sits idle.
type Client struct {
	conn  *websocket.Conn
	resps chan Response
	err   error // read error, set before resps is closed
}

// Dial connects to a stream server at a ws:// URL.
func Dial(ctx context.Context, rawURL string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, rawURL, nil)
	if err != nil {
		return nil, err
	}
	c := &Client{
		conn:  conn,
		resps: make(chan Response, 1),
	}
	go c.readPump()
	return c, nil
}

func (c *Client) readPump() {
	defer close(c.resps)
	for {
		var resp Response
		if err := c.conn.ReadJSON(&resp); err != nil {
			c.err = err
			return
		}
		c.resps <- resp
	}
}

// Close closes the connection.
func (c *Client) Close() error {
	c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return c.conn.Close()
}

func (c *Client) do(req Request) (*Response, error) {
	if err := c.conn.WriteJSON(req); err != nil {
		return nil, err
	}
	resp, ok := <-c.resps
	if !ok {
		return nil, c.err
	}
	if resp.Error != "" {
		return nil, errors.Join(ErrRemote, errors.New(resp.Error))
	}
	return &resp, nil
}

// Uint64s returns n raw draws.
func (c *Client) Uint64s(n int) ([]uint64, error) {
	resp, err := c.do(Request{Op: OpUint64, Count: n})
	if err != nil {
		return nil, err
	}
	return resp.Uint64s, nil
}

// Float64s returns n floats in [0, 1).
func (c *Client) Float64s(n int) ([]float64, error) {
	resp, err := c.do(Request{Op: OpFloat64, Count: n})
	if err != nil {
		return nil, err
	}
	return resp.Floats, nil
}

// Below returns n unbiased integers in [0, bound).
func (c *Client) Below(bound uint64, n int) ([]uint64, error) {
	resp, err := c.do(Request{Op: OpBelow, Count: n, Bound: bound})
	if err != nil {
		return nil, err
	}
	return resp.Uint64s, nil
}

// UUIDs returns n version 4 UUIDs.
func (c *Client) UUIDs(n int) ([]string, error) {
	resp, err := c.do(Request{Op: OpUUID, Count: n})
	if err != nil {
		return nil, err
	}
	return resp.UUIDs, nil
}

// State returns the snapshot of the connection's generator.
func (c *Client) State() (pcg64dxsm.Snapshot, error) {
	resp, err := c.do(Request{Op: OpState})
	if err != nil {
		return pcg64dxsm.Snapshot{}, err
	}
	if resp.State == nil {
		return pcg64dxsm.Snapshot{}, ErrRemote
	}
	return *resp.State, nil
}

package stream

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/colocohen/pcg64dxsm"
	"github.com/colocohen/pcg64dxsm/counter/period"
	"github.com/colocohen/pcg64dxsm/uint128"
)

func newTestServer(t *testing.T, opts ...ServerOption) (*pcg64dxsm.Generator, string, func()) {
	root := pcg64dxsm.FromSeed(uint128.Zero, uint128.One)
	s, err := NewServer(append([]ServerOption{
		WithGenerator(root.Clone()),
		WithServedCounter(period.New(time.Second)),
	}, opts...)...)
	if err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(s)
	return root, "ws" + strings.TrimPrefix(ts.URL, "http"), ts.Close
}

func dial(t *testing.T, url string) *Client {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	c, err := Dial(ctx, url)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestServerJumpsPerConnection(t *testing.T) {
	root, url, stop := newTestServer(t)
	defer stop()

	for j := int64(1); j <= 2; j++ {
		c := dial(t, url)
		got, err := c.Uint64s(5)
		if err != nil {
			t.Fatal(err)
		}
		want := root.Jumped(j)
		for i, v := range got {
			if w := want.NextUint64(); v != w {
				t.Fatalf("conn %d draw %d: got %#x; want %#x", j, i, v, w)
			}
		}

		st, err := c.State()
		if err != nil {
			t.Fatal(err)
		}
		if st != want.State() {
			t.Fatalf("state %+v; want %+v", st, want.State())
		}
		c.Close()
	}
}

func TestServerOps(t *testing.T) {
	_, url, stop := newTestServer(t)
	defer stop()
	c := dial(t, url)
	defer c.Close()

	below, err := c.Below(10, 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(below) != 100 {
		t.Fatalf("len = %d", len(below))
	}
	for _, v := range below {
		if v >= 10 {
			t.Fatalf("got %d", v)
		}
	}

	floats, err := c.Float64s(3)
	if err != nil || len(floats) != 3 {
		t.Fatalf("floats %v, %v", floats, err)
	}

	ids, err := c.UUIDs(2)
	if err != nil || len(ids) != 2 || ids[0] == ids[1] {
		t.Fatalf("uuids %v, %v", ids, err)
	}

	if _, err := c.Below(0, 1); !errors.Is(err, ErrRemote) {
		t.Fatalf("bound 0: err = %v", err)
	}
	if _, err := c.Uint64s(MaxCount + 1); !errors.Is(err, ErrRemote) {
		t.Fatalf("count: err = %v", err)
	}
	if _, err := c.do(Request{Op: "dance"}); !errors.Is(err, ErrRemote) {
		t.Fatalf("op: err = %v", err)
	}
}

func TestClientSurvivesIdle(t *testing.T) {
	root, url, stop := newTestServer(t, WithKeepalive(20*time.Millisecond, 100*time.Millisecond))
	defer stop()
	c := dial(t, url)
	defer c.Close()

	want := root.Jumped(1)
	for round := 0; round < 2; round++ {
		got, err := c.Uint64s(1)
		if err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		if w := want.NextUint64(); got[0] != w {
			t.Fatalf("round %d: got %#x; want %#x", round, got[0], w)
		}
		time.Sleep(500 * time.Millisecond)
	}
}

func TestClientReportsClosedConnection(t *testing.T) {
	_, url, stop := newTestServer(t)
	c := dial(t, url)
	if _, err := c.Uint64s(1); err != nil {
		t.Fatal(err)
	}
	c.conn.Close()
	if _, err := c.Uint64s(1); err == nil {
		t.Fatal("expected an error on a closed connection")
	}
	stop()
}

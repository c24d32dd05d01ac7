package stream

import "github.com/colocohen/pcg64dxsm"

// Op names a request kind.
type Op string

const (
	OpUint64  Op = "uint64"
	OpFloat64 Op = "float64"
	OpBelow   Op = "below"
	OpUUID    Op = "uuid"
	OpState   Op = "state"
)

// Request is sent by the client as one text message.
type Request struct {
	Op    Op     `json:"op"`
	Count int    `json:"count,omitempty"`
	Bound uint64 `json:"bound,omitempty"`
}

// Response answers one Request.
type Response struct {
	Uint64s []uint64            `json:"uint64s,omitempty"`
	Floats  []float64           `json:"floats,omitempty"`
	UUIDs   []string            `json:"uuids,omitempty"`
	State   *pcg64dxsm.Snapshot `json:"state,omitempty"`
	Error   string              `json:"error,omitempty"`
}

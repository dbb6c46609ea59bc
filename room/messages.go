package room

import "slicecam/game"

// Conn is the send half of a client connection, injected so tests can fake it.
type Conn interface {
	Send([]byte) error
	Close() error
}

// Join: issued once after hello parsed.
type Join struct {
	Conn  Conn
	Name  string
	Reply chan<- JoinResult
}

type JoinResult struct {
	PlayerID string
}

// FrameMsg: latest camera frame from a client. Only the most recent one is
// kept; the tick consumes whatever is current.
type FrameMsg struct {
	PlayerID string
	Frame    *game.Frame
}

// Control: start or stop the slicing session.
type Control struct {
	PlayerID string
	Action   string
}

// PoseCapture: a still for the external pose scorer.
type PoseCapture struct {
	PlayerID string
	JPEG     []byte
}

// poseScored is posted back into the inbox by the scorer goroutine.
type poseScored struct {
	PlayerID string
	Score    float64
	Feedback string
	Err      error
}

// Leave: issued on disconnect.
type Leave struct {
	PlayerID string
}

package protocol

import "encoding/json"

const (
	MsgHello      = "hello"
	MsgWelcome    = "welcome"
	MsgFrame      = "frame"
	MsgControl    = "control"
	MsgState      = "state"
	MsgPose       = "pose"
	MsgPoseResult = "poseResult"
)

const (
	// SimTickHz paces the session loop; nominally display refresh.
	SimTickHz = 60
	// BroadcastHz is how often snapshots go out. Must divide SimTickHz.
	BroadcastHz = 20
)

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"` // raw payload bytes
}

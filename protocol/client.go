package protocol

// Messages coming in from the capture client.

type Hello struct {
	V    int    `json:"v"`              // version
	Name string `json:"name,omitempty"` // optional display name
}

// Frame carries one raw RGBA video frame, scaled down by the client to
// something near capture resolution. Pix travels base64-encoded.
type Frame struct {
	W   int    `json:"w"`
	H   int    `json:"h"`
	Pix []byte `json:"pix"`
}

// Control toggles the slicing session.
type Control struct {
	Action string `json:"action"` // "start" | "stop"
}

// Pose is a captured still for the external pose scorer.
type Pose struct {
	JPEG []byte `json:"jpeg"`
}

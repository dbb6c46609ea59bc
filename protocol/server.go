package protocol

type Welcome struct {
	PlayerID string `json:"playerId"`
	TickHz   int    `json:"tickHz"`
	GridW    int    `json:"gridW"`
	GridH    int    `json:"gridH"`
}

// State is the per-broadcast render snapshot. Coordinates are percent game
// space; the client owns presentation, including mirroring the video.
type State struct {
	Tick      int                `json:"tick"`
	Active    bool               `json:"active"`
	Score     int                `json:"score"`
	Objects   []ObjectSnapshot   `json:"objects"`
	Particles []ParticleSnapshot `json:"particles,omitempty"`
	Texts     []TextSnapshot     `json:"texts,omitempty"`
}

type ObjectSnapshot struct {
	ID     int64   `json:"id"`
	Kind   string  `json:"kind"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Sliced bool    `json:"sliced"`
}

type ParticleSnapshot struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Life  float64 `json:"life"`
	Color string  `json:"color"`
}

type TextSnapshot struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Text  string  `json:"text"`
	Color string  `json:"color"`
}

type PoseResult struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback,omitempty"`
	Err      string  `json:"err,omitempty"`
}

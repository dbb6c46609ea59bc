package room

import (
	"context"
	"fmt"
	"time"

	"slicecam/game"
	"slicecam/leaderboard"
	"slicecam/logging"
	"slicecam/pose"
	"slicecam/protocol"
)

// Room runs one shared session: an actor goroutine that owns the game state,
// drains its inbox and advances the simulation at a fixed tick rate. All
// mutation happens on that goroutine; there is exactly one tick in flight at
// any moment.
type Room struct {
	Inbox   chan any
	Metrics *Metrics

	tickHz         int
	broadcastEvery int

	state       *game.State
	active      bool
	latestFrame *game.Frame

	clients map[string]Conn
	names   map[string]string
	nextID  int
	quit    chan struct{}

	scorer pose.Scorer
	board  *leaderboard.Board

	Code    string            // room code (e.g. "ABC123")
	OnEmpty func(code string) // called when the last player leaves
}

func New(tun game.Tuning, scorer pose.Scorer, board *leaderboard.Board) *Room {
	broadcastEvery := protocol.SimTickHz / protocol.BroadcastHz
	if broadcastEvery <= 0 {
		broadcastEvery = 1
	}
	r := &Room{
		Inbox:          make(chan any, 256),
		Metrics:        &Metrics{},
		tickHz:         protocol.SimTickHz,
		broadcastEvery: broadcastEvery,
		state:          game.NewState(tun, nil),
		clients:        make(map[string]Conn),
		names:          make(map[string]string),
		nextID:         1,
		quit:           make(chan struct{}),
		scorer:         scorer,
		board:          board,
	}
	r.state.OnScore = r.Metrics.IncSlice
	return r
}

func (r *Room) Stop() {
	close(r.quit)
}

// NumPlayers returns the current number of connected clients.
func (r *Room) NumPlayers() int {
	return len(r.clients)
}

func (r *Room) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(r.tickHz))
	defer ticker.Stop()

	for {
		select {
		case <-r.quit:
			return
		case cmd := <-r.Inbox:
			r.handleCommand(cmd)
		case <-ticker.C:
			if !r.active {
				continue
			}
			start := time.Now()
			game.Step(r.state, r.latestFrame, start)
			r.Metrics.AddTick(time.Since(start).Nanoseconds())
			if r.state.Tick%r.broadcastEvery == 0 {
				r.broadcastState()
			}
		}
	}
}

func (r *Room) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		id := fmt.Sprintf("p%d", r.nextID)
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("Player %d", r.nextID)
		}
		r.nextID++
		r.clients[id] = c.Conn
		r.names[id] = name
		c.Reply <- JoinResult{PlayerID: id}
		r.sendStateTo(c.Conn)
	case FrameMsg:
		if _, ok := r.clients[c.PlayerID]; !ok {
			return
		}
		r.latestFrame = c.Frame
		r.Metrics.IncFrame()
	case Control:
		r.handleControl(c)
	case PoseCapture:
		r.handlePose(c)
	case poseScored:
		r.broadcastPoseResult(c)
	case Leave:
		r.handleLeave(c.PlayerID)
	}
}

// handleControl flips the session between inactive and active. Both
// directions are idempotent, and both ends of a session start from a clean
// slate: collections, score, spawn timer and differencing history.
func (r *Room) handleControl(c Control) {
	switch c.Action {
	case "start":
		if r.active {
			return
		}
		r.active = true
		r.latestFrame = nil
		r.state.Reset()
		r.broadcastState()
	case "stop":
		if !r.active {
			return
		}
		r.active = false
		if r.board != nil && r.state.Score != 0 {
			name := r.names[c.PlayerID]
			if err := r.board.Record(name, r.state.Score, time.Now()); err != nil {
				logging.Log.Warnf("leaderboard record failed: %v", err)
			}
		}
		r.state.Reset()
		r.latestFrame = nil
		r.broadcastState()
	}
}

// handlePose hands the still to the scorer off-loop; the result comes back
// through the inbox so the tick never waits on the network.
func (r *Room) handlePose(c PoseCapture) {
	if r.scorer == nil {
		return
	}
	jpeg := c.JPEG
	pid := c.PlayerID
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		res, err := r.scorer.Score(ctx, jpeg)
		select {
		case r.Inbox <- poseScored{PlayerID: pid, Score: res.Score, Feedback: res.Feedback, Err: err}:
		case <-r.quit:
		}
	}()
}

func (r *Room) broadcastPoseResult(c poseScored) {
	msg := protocol.PoseResult{Score: c.Score, Feedback: c.Feedback}
	if c.Err != nil {
		msg.Err = c.Err.Error()
	}
	b, err := protocol.Encode(protocol.MsgPoseResult, msg)
	if err != nil {
		return
	}
	r.sendAll(b)
}

func (r *Room) handleLeave(playerID string) {
	c, ok := r.clients[playerID]
	delete(r.names, playerID)
	if ok {
		_ = c.Close()
		delete(r.clients, playerID)
	}
	if len(r.clients) == 0 {
		// Nobody is watching; stop simulating and drop the session state.
		if r.active {
			r.active = false
			r.state.Reset()
			r.latestFrame = nil
		}
		if r.OnEmpty != nil && r.Code != "" {
			r.OnEmpty(r.Code)
		}
	}
}

func (r *Room) broadcastState() {
	b, err := protocol.Encode(protocol.MsgState, r.buildSnapshot())
	if err != nil {
		return
	}
	r.sendAll(b)
}

func (r *Room) sendStateTo(c Conn) {
	b, err := protocol.Encode(protocol.MsgState, r.buildSnapshot())
	if err != nil {
		return
	}
	_ = c.Send(b)
}

func (r *Room) sendAll(b []byte) {
	var failed []string
	for id, c := range r.clients {
		if err := c.Send(b); err != nil {
			failed = append(failed, id)
		}
	}
	for _, id := range failed {
		if c, ok := r.clients[id]; ok {
			_ = c.Close()
		}
		delete(r.clients, id)
		delete(r.names, id)
	}
}

func (r *Room) buildSnapshot() protocol.State {
	st := protocol.State{
		Tick:    r.state.Tick,
		Active:  r.active,
		Score:   r.state.Score,
		Objects: make([]protocol.ObjectSnapshot, 0, len(r.state.Objects)),
	}
	for _, o := range r.state.Objects {
		st.Objects = append(st.Objects, protocol.ObjectSnapshot{
			ID:     o.ID,
			Kind:   o.Kind.String(),
			X:      o.X,
			Y:      o.Y,
			Sliced: o.Phase == game.PhaseSliced,
		})
	}
	for _, p := range r.state.Particles {
		st.Particles = append(st.Particles, protocol.ParticleSnapshot{
			X: p.X, Y: p.Y, Life: p.Life, Color: p.Color,
		})
	}
	for _, t := range r.state.Texts {
		st.Texts = append(st.Texts, protocol.TextSnapshot{
			X: t.X, Y: t.Y, Text: t.Text, Color: t.Color,
		})
	}
	return st
}

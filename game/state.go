package game

import (
	"math/rand"
	"time"
)

// State is the owned world of one active session: every falling object,
// particle and floating text lives here and nowhere else. The room actor
// threads it through Step once per tick; nothing mutates it off-loop.
type State struct {
	Tick  int
	Score int

	Objects   []*Object
	Particles []Particle
	Texts     []FloatingText

	// OnScore, when set, receives every signed score delta as it happens.
	// Fire and forget: the sink has no way to fail the tick.
	OnScore func(delta int)

	tun     Tuning
	rng     *rand.Rand
	diff    *Differencer
	spawner *Spawner
}

// NewState builds a session world. A nil rng gets a time-seeded one; tests
// pass their own for reproducibility.
func NewState(tun Tuning, rng *rand.Rand) *State {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &State{
		tun:     tun,
		rng:     rng,
		diff:    NewDifferencer(tun.MotionThreshold),
		spawner: NewSpawner(tun, rng),
	}
}

// Reset clears every owned collection, the score, the spawn timer and all
// differencing history. Called on session start and stop so nothing leaks
// between rounds.
func (s *State) Reset() {
	s.Tick = 0
	s.Score = 0
	s.Objects = nil
	s.Particles = nil
	s.Texts = nil
	s.diff.Reset()
	s.spawner.Reset()
}

func (s *State) Tuning() Tuning { return s.tun }

func (s *State) fallingCount() int {
	n := 0
	for _, o := range s.Objects {
		if o.Phase == PhaseFalling {
			n++
		}
	}
	return n
}

func (s *State) emitScore(delta int) {
	s.Score += delta
	if s.OnScore != nil {
		s.OnScore(delta)
	}
}

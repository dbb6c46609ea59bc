package game

import "time"

// Particle is a purely cosmetic spark. Life starts at 1 and fades by a fixed
// step per tick, which bounds the visible lifetime at ~20 ticks no matter how
// the tick rate jitters.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	Color  string
}

// FloatingText is a transient score annotation. It expires on the wall clock,
// not the tick counter, so it stays readable even if the loop stalls.
type FloatingText struct {
	X, Y      float64
	Text      string
	Color     string
	ExpiresAt time.Time
}

var (
	fruitPalette = []string{"#ffd166", "#ff9f43", "#f96e46", "#ffe066"}
	bombPalette  = []string{"#e63946", "#d62828", "#ff4d4d"}
)

// burst appends n particles fanning out from (x, y).
func (s *State) burst(x, y float64, palette []string, n int) {
	for i := 0; i < n; i++ {
		s.Particles = append(s.Particles, Particle{
			X:     x,
			Y:     y,
			VX:    (s.rng.Float64()*2 - 1) * 0.75,
			VY:    (s.rng.Float64()*2 - 1) * 0.75,
			Life:  1.0,
			Color: palette[s.rng.Intn(len(palette))],
		})
	}
}

func (s *State) addText(x, y float64, text, color string, now time.Time) {
	s.Texts = append(s.Texts, FloatingText{
		X:         x,
		Y:         y,
		Text:      text,
		Color:     color,
		ExpiresAt: now.Add(s.tun.TextTTL),
	})
}

// ageEffects integrates particle motion, fades them out and expires texts.
func (s *State) ageEffects(now time.Time) {
	alive := s.Particles[:0]
	for _, p := range s.Particles {
		p.X += p.VX
		p.Y += p.VY
		p.Life -= s.tun.ParticleFade
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	s.Particles = alive

	texts := s.Texts[:0]
	for _, t := range s.Texts {
		if now.Before(t.ExpiresAt) {
			texts = append(texts, t)
		}
	}
	s.Texts = texts
}

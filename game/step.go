package game

import (
	"fmt"
	"time"
)

// Step advances one tick: spawn decision, frame differencing, object motion
// and collision, then effect aging. frame may be nil when the camera has not
// produced anything yet; that tick simply sees no motion.
func Step(s *State, frame *Frame, now time.Time) {
	s.Tick++

	if o := s.spawner.TrySpawn(now, s.fallingCount()); o != nil {
		s.Objects = append(s.Objects, o)
	}

	grid := s.diff.Diff(frame)

	live := s.Objects[:0]
	for _, o := range s.Objects {
		switch o.Phase {
		case PhaseFalling:
			o.Y += o.Vel
			if s.collides(grid, o) {
				s.slice(o, now)
			}
		case PhaseSliced:
			// keep drifting slowly so the death animation reads as
			// falling past, not frozen
			o.Y += o.Vel * s.tun.SlicedDecay
		}

		switch {
		case o.Phase == PhaseFalling && o.Y >= s.tun.KillY:
			// fell past the bottom unsliced
		case o.Phase == PhaseSliced && now.Sub(o.SlicedAt) >= s.tun.SlicedTTL:
			// death animation done
		default:
			live = append(live, o)
		}
	}
	s.Objects = live

	s.ageEffects(now)
}

// gridCell maps percent game space onto the motion grid. The camera view is
// mirrored horizontally relative to game space, so x inverts. Exact edges
// (x=0, y=100) clamp inward; anything past them lands out of range and is
// simply not a hit.
func gridCell(x, y float64) (int, int) {
	gx := int((1 - x/100) * GridW)
	if gx == GridW {
		gx = GridW - 1
	}
	gy := int(y / 100 * GridH)
	if gy == GridH {
		gy = GridH - 1
	}
	return gx, gy
}

// collides tests the mapped cell and its 3x3 neighborhood. The neighborhood
// tolerance absorbs downsampling error; out-of-range cells never count.
func (s *State) collides(grid Grid, o *Object) bool {
	gx, gy := gridCell(o.X, o.Y)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if grid.At(gx+dx, gy+dy) {
				return true
			}
		}
	}
	return false
}

// slice is the one and only Falling -> Sliced transition. It fires the score
// sink and the visual feedback; a sliced object never comes back here.
func (s *State) slice(o *Object, now time.Time) {
	o.Phase = PhaseSliced
	o.SlicedAt = now

	var delta int
	if o.Kind.IsBomb() {
		delta = s.tun.BombScore
		s.burst(o.X, o.Y, bombPalette, 16)
		s.addText(o.X, o.Y, fmt.Sprintf("%+d", delta), "#e63946", now)
	} else {
		delta = s.tun.FruitScore
		s.burst(o.X, o.Y, fruitPalette, 12)
		s.addText(o.X, o.Y, fmt.Sprintf("%+d", delta), "#ffd166", now)
	}
	s.emitScore(delta)
}

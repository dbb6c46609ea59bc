package game

import (
	"math/rand"
	"testing"
	"time"
)

var stepBase = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// noSpawnState returns a session that never spawns on its own, so tests can
// place objects by hand.
func noSpawnState(t *testing.T) *State {
	t.Helper()
	tun := DefaultTuning()
	tun.MaxFalling = 0
	return NewState(tun, rand.New(rand.NewSource(1)))
}

func TestGridCellMapping(t *testing.T) {
	cases := []struct {
		x, y   float64
		gx, gy int
	}{
		{0, 0, GridW - 1, 0},    // mirrored: left edge of game space is the right sensor edge
		{100, 0, 0, 0},          // and vice versa
		{0, 100, GridW - 1, GridH - 1},
		{50, 50, GridW / 2, GridH / 2},
	}
	for _, c := range cases {
		gx, gy := gridCell(c.x, c.y)
		if gx != c.gx || gy != c.gy {
			t.Fatalf("gridCell(%f,%f) = (%d,%d), want (%d,%d)", c.x, c.y, gx, gy, c.gx, c.gy)
		}
	}
}

func TestFruitSlicedByMotion(t *testing.T) {
	s := noSpawnState(t)
	var deltas []int
	s.OnScore = func(d int) { deltas = append(deltas, d) }

	obj := &Object{ID: 1, Kind: KindApple, X: 50, Y: 49.8, Vel: 0.2}
	s.Objects = append(s.Objects, obj)

	// First frame only primes the differencer.
	Step(s, solidFrame(0), stepBase)
	if obj.Phase != PhaseFalling {
		t.Fatalf("object sliced without motion")
	}

	// Motion at the cell the object maps to.
	b := solidFrame(0)
	gx, gy := gridCell(obj.X, obj.Y+obj.Vel)
	paint(b, gx, gy, 255)
	Step(s, b, stepBase.Add(16*time.Millisecond))

	if obj.Phase != PhaseSliced {
		t.Fatalf("object not sliced by motion at its cell")
	}
	if obj.SlicedAt != stepBase.Add(16*time.Millisecond) {
		t.Fatalf("slicedAt not recorded at collision time")
	}
	if s.Score != 1 {
		t.Fatalf("score = %d after fruit slice, want 1", s.Score)
	}
	if len(deltas) != 1 || deltas[0] != 1 {
		t.Fatalf("score deltas = %v, want [1]", deltas)
	}
	if len(s.Particles) != 12 {
		t.Fatalf("fruit burst spawned %d particles, want 12", len(s.Particles))
	}
	if len(s.Texts) != 1 || s.Texts[0].Text != "+1" {
		t.Fatalf("floating text = %+v, want one \"+1\"", s.Texts)
	}
}

func TestBombSlicePenalty(t *testing.T) {
	s := noSpawnState(t)
	obj := &Object{ID: 1, Kind: KindBomb, X: 50, Y: 49.8, Vel: 0.2}
	s.Objects = append(s.Objects, obj)

	Step(s, solidFrame(0), stepBase)
	b := solidFrame(0)
	gx, gy := gridCell(obj.X, obj.Y+obj.Vel)
	paint(b, gx, gy, 255)
	Step(s, b, stepBase.Add(16*time.Millisecond))

	if obj.Phase != PhaseSliced {
		t.Fatalf("bomb not sliced by motion")
	}
	if s.Score != -3 {
		t.Fatalf("score = %d after bomb slice, want -3", s.Score)
	}
	if len(s.Particles) != 16 {
		t.Fatalf("bomb burst spawned %d particles, want 16", len(s.Particles))
	}
	if len(s.Texts) != 1 || s.Texts[0].Text != "-3" {
		t.Fatalf("floating text = %+v, want one \"-3\"", s.Texts)
	}
}

func TestSlicedNeverScoresTwice(t *testing.T) {
	s := noSpawnState(t)
	var deltas []int
	s.OnScore = func(d int) { deltas = append(deltas, d) }

	obj := &Object{ID: 1, Kind: KindOrange, X: 50, Y: 49.8, Vel: 0.2}
	s.Objects = append(s.Objects, obj)

	// Alternate black and white frames: every cell reports motion on every
	// tick after the first. The object must be sliced exactly once.
	fill := []uint8{0, 255}
	for i := 0; i < 10; i++ {
		Step(s, solidFrame(fill[i%2]), stepBase.Add(time.Duration(i)*16*time.Millisecond))
	}

	if len(deltas) != 1 {
		t.Fatalf("score deltas = %v, want exactly one", deltas)
	}
	if s.Score != 1 {
		t.Fatalf("score = %d, want 1", s.Score)
	}
	if obj.Phase != PhaseSliced {
		t.Fatalf("object left the sliced phase")
	}
}

func TestSlicedDriftsSlowly(t *testing.T) {
	s := noSpawnState(t)
	obj := &Object{ID: 1, Kind: KindApple, X: 50, Y: 50, Vel: 0.2, Phase: PhaseSliced, SlicedAt: stepBase}
	s.Objects = append(s.Objects, obj)

	Step(s, nil, stepBase.Add(16*time.Millisecond))
	want := 50 + 0.2*s.tun.SlicedDecay
	if obj.Y != want {
		t.Fatalf("sliced object y = %f, want %f", obj.Y, want)
	}
}

func TestFallingRetiredOffscreen(t *testing.T) {
	s := noSpawnState(t)
	s.Objects = append(s.Objects,
		&Object{ID: 1, Kind: KindApple, X: 50, Y: 109.9, Vel: 0.2},
		&Object{ID: 2, Kind: KindApple, X: 50, Y: 50, Vel: 0.2},
	)

	Step(s, nil, stepBase)
	if len(s.Objects) != 1 || s.Objects[0].ID != 2 {
		t.Fatalf("expected only the on-screen object to survive, got %d objects", len(s.Objects))
	}
}

func TestSlicedRetiredAfterWindow(t *testing.T) {
	s := noSpawnState(t)
	obj := &Object{ID: 1, Kind: KindApple, X: 50, Y: 50, Vel: 0.2, Phase: PhaseSliced, SlicedAt: stepBase}
	s.Objects = append(s.Objects, obj)

	Step(s, nil, stepBase.Add(700*time.Millisecond))
	if len(s.Objects) != 1 {
		t.Fatalf("sliced object removed before its window elapsed")
	}
	Step(s, nil, stepBase.Add(800*time.Millisecond))
	if len(s.Objects) != 0 {
		t.Fatalf("sliced object still present after its window elapsed")
	}
}

func TestAboveScreenNeverCollides(t *testing.T) {
	s := noSpawnState(t)
	obj := &Object{ID: 1, Kind: KindApple, X: 50, Y: -15, Vel: 0.2}
	s.Objects = append(s.Objects, obj)

	// Full-frame motion everywhere; the object is above the grid.
	Step(s, solidFrame(0), stepBase)
	Step(s, solidFrame(255), stepBase.Add(16*time.Millisecond))

	if obj.Phase != PhaseFalling {
		t.Fatalf("object above the visible area was sliced")
	}
	if s.Score != 0 {
		t.Fatalf("score = %d for an impossible collision, want 0", s.Score)
	}
}

func TestResetClearsSession(t *testing.T) {
	s := noSpawnState(t)
	s.Objects = append(s.Objects, &Object{ID: 1, Kind: KindApple, X: 50, Y: 49.8, Vel: 0.2})
	Step(s, solidFrame(0), stepBase)
	Step(s, solidFrame(255), stepBase.Add(16*time.Millisecond)) // slices, spawns effects

	s.Reset()
	if s.Tick != 0 || s.Score != 0 || len(s.Objects) != 0 || len(s.Particles) != 0 || len(s.Texts) != 0 {
		t.Fatalf("reset left state behind: %+v", s)
	}

	// Differencing history must be gone too: the first frame after a reset
	// reports no motion even though it differs from the last one seen.
	s.Objects = append(s.Objects, &Object{ID: 2, Kind: KindApple, X: 50, Y: 49.8, Vel: 0.2})
	Step(s, solidFrame(0), stepBase.Add(time.Second))
	if s.Objects[0].Phase != PhaseFalling {
		t.Fatalf("differencer history survived the reset")
	}
}

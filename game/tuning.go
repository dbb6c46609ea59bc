package game

import "time"

// Motion grid dimensions. Every incoming frame is downsampled to this fixed
// resolution regardless of the capture size.
const (
	GridW = 64
	GridH = 48
)

// Tuning holds the gameplay knobs for one session. Fall and particle speeds
// are expressed per tick, so the feel scales with the tick rate; spawn and
// expiry timers are wall-clock and do not.
type Tuning struct {
	MotionThreshold int // summed RGB delta above which a cell counts as motion

	SpawnInterval time.Duration // minimum wall-clock gap between spawns
	MaxFalling    int           // cap on concurrently falling objects
	BombChance    float64       // probability a spawn is a bomb
	SpawnXMin     float64       // spawn band, percent game space
	SpawnXMax     float64
	SpawnY        float64 // above the visible area
	VelMin        float64 // fall speed, percent per tick
	VelMax        float64

	SlicedDecay float64       // fall speed multiplier after a slice
	SlicedTTL   time.Duration // how long a sliced object lingers
	KillY       float64       // falling objects past this are dropped

	FruitScore int
	BombScore  int

	ParticleFade float64       // particle life lost per tick
	TextTTL      time.Duration // floating text expiry
}

func DefaultTuning() Tuning {
	return Tuning{
		MotionThreshold: 20,

		SpawnInterval: 1300 * time.Millisecond,
		MaxFalling:    6,
		BombChance:    0.22,
		SpawnXMin:     10,
		SpawnXMax:     90,
		SpawnY:        -15,
		VelMin:        0.20, // ~8-10s top to bottom at 60 ticks/s
		VelMax:        0.26,

		SlicedDecay: 0.1,
		SlicedTTL:   800 * time.Millisecond,
		KillY:       110,

		FruitScore: 1,
		BombScore:  -3, // bombs punish harder than fruit rewards

		ParticleFade: 0.05,
		TextTTL:      time.Second,
	}
}

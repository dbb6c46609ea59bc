package game

import "time"

type Kind uint8

const (
	KindApple Kind = iota
	KindOrange
	KindWatermelon
	KindBanana
	KindBomb
)

// fruitKinds are the spawnable non-bomb variants.
var fruitKinds = []Kind{KindApple, KindOrange, KindWatermelon, KindBanana}

func (k Kind) IsBomb() bool { return k == KindBomb }

func (k Kind) String() string {
	switch k {
	case KindApple:
		return "apple"
	case KindOrange:
		return "orange"
	case KindWatermelon:
		return "watermelon"
	case KindBanana:
		return "banana"
	case KindBomb:
		return "bomb"
	default:
		return "unknown"
	}
}

type Phase uint8

const (
	PhaseFalling Phase = iota
	PhaseSliced
)

// Object is one falling item in percent game space. X runs 0..100 left to
// right, Y grows downward and starts above the visible area.
type Object struct {
	ID   int64
	Kind Kind

	X, Y float64
	Vel  float64 // downward, percent per tick

	Phase    Phase
	SlicedAt time.Time // set once, on the Falling -> Sliced transition
}

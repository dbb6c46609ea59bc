package game

import (
	"math/rand"
	"time"
)

// Spawner introduces new falling objects. At most one decision per tick; a
// closed window (too soon, or too many falling) just waits for the next one.
type Spawner struct {
	tun    Tuning
	rng    *rand.Rand
	nextID int64
	last   time.Time // zero until the first spawn
}

func NewSpawner(tun Tuning, rng *rand.Rand) *Spawner {
	return &Spawner{tun: tun, rng: rng, nextID: 1}
}

// Reset forgets the spawn timer so a fresh session spawns right away.
// IDs keep counting up; they are never reused.
func (sp *Spawner) Reset() { sp.last = time.Time{} }

// TrySpawn returns a new object, or nil when the interval gate or the
// falling-count cap says no.
func (sp *Spawner) TrySpawn(now time.Time, falling int) *Object {
	if falling >= sp.tun.MaxFalling {
		return nil
	}
	if !sp.last.IsZero() && now.Sub(sp.last) < sp.tun.SpawnInterval {
		return nil
	}
	sp.last = now

	kind := fruitKinds[sp.rng.Intn(len(fruitKinds))]
	if sp.rng.Float64() < sp.tun.BombChance {
		kind = KindBomb
	}

	o := &Object{
		ID:   sp.nextID,
		Kind: kind,
		X:    sp.tun.SpawnXMin + sp.rng.Float64()*(sp.tun.SpawnXMax-sp.tun.SpawnXMin),
		Y:    sp.tun.SpawnY,
		Vel:  sp.tun.VelMin + sp.rng.Float64()*(sp.tun.VelMax-sp.tun.VelMin),
	}
	sp.nextID++
	return o
}

package room

import "sync/atomic"

// Metrics counts what one room has been doing, for the /metrics endpoint.
// Atomic because HTTP reads it while the actor goroutine writes.
type Metrics struct {
	TickCount      int64
	FramesReceived int64
	FruitSliced    int64
	BombsSliced    int64
	TotalTickNs    int64
}

func (m *Metrics) IncFrame() { atomic.AddInt64(&m.FramesReceived, 1) }

func (m *Metrics) IncSlice(delta int) {
	if delta >= 0 {
		atomic.AddInt64(&m.FruitSliced, 1)
	} else {
		atomic.AddInt64(&m.BombsSliced, 1)
	}
}

func (m *Metrics) AddTick(ns int64) {
	atomic.AddInt64(&m.TickCount, 1)
	atomic.AddInt64(&m.TotalTickNs, ns)
}

// Snapshot returns a read-only copy for HTTP output.
func (m *Metrics) Snapshot() map[string]any {
	tick := atomic.LoadInt64(&m.TickCount)
	total := atomic.LoadInt64(&m.TotalTickNs)
	var avgMs float64
	if tick > 0 {
		avgMs = float64(total) / float64(tick) / 1e6
	}
	return map[string]any{
		"tick_count":      tick,
		"frames_received": atomic.LoadInt64(&m.FramesReceived),
		"fruit_sliced":    atomic.LoadInt64(&m.FruitSliced),
		"bombs_sliced":    atomic.LoadInt64(&m.BombsSliced),
		"avg_tick_ms":     avgMs,
	}
}

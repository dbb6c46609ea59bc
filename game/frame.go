package game

// Frame is one raw video frame as sent by the capture client: tightly packed
// RGBA, row-major.
type Frame struct {
	W, H int
	Pix  []byte
}

func (f *Frame) valid() bool {
	return f != nil && f.W > 0 && f.H > 0 && len(f.Pix) >= f.W*f.H*4
}

// Grid is the coarse motion map for one tick: flat GridW*GridH bytes, 1 where
// the frame-to-frame delta at that cell crossed the threshold.
type Grid []uint8

func NewGrid() Grid { return make(Grid, GridW*GridH) }

// At reports motion at (x, y). Out-of-range coordinates are simply not
// motion, never a fault.
func (g Grid) At(x, y int) bool {
	if x < 0 || x >= GridW || y < 0 || y >= GridH {
		return false
	}
	return g[y*GridW+x] != 0
}

func (g Grid) Set(x, y int) {
	if x < 0 || x >= GridW || y < 0 || y >= GridH {
		return
	}
	g[y*GridW+x] = 1
}

// Differencer turns successive frames into motion grids. It owns the single
// previous downsample; nothing older is retained.
type Differencer struct {
	threshold int
	prev      []uint8 // GridW*GridH*3, RGB
}

func NewDifferencer(threshold int) *Differencer {
	return &Differencer{threshold: threshold}
}

// Reset drops the history so the next Diff reports no motion.
func (d *Differencer) Reset() { d.prev = nil }

// Diff downsamples the frame to grid resolution, compares it against the
// previous downsample and returns the motion grid. An unusable frame (camera
// not ready yet) yields an idle grid and leaves the history alone; the very
// first usable frame also yields an idle grid.
func (d *Differencer) Diff(frame *Frame) Grid {
	grid := NewGrid()
	if !frame.valid() {
		return grid
	}

	cur := make([]uint8, GridW*GridH*3)
	for gy := 0; gy < GridH; gy++ {
		sy := gy * frame.H / GridH
		for gx := 0; gx < GridW; gx++ {
			sx := gx * frame.W / GridW
			si := (sy*frame.W + sx) * 4
			di := (gy*GridW + gx) * 3
			cur[di] = frame.Pix[si]
			cur[di+1] = frame.Pix[si+1]
			cur[di+2] = frame.Pix[si+2]
		}
	}

	if d.prev != nil {
		for i := 0; i < GridW*GridH; i++ {
			di := i * 3
			delta := absDiff(cur[di], d.prev[di]) +
				absDiff(cur[di+1], d.prev[di+1]) +
				absDiff(cur[di+2], d.prev[di+2])
			if delta > d.threshold {
				grid[i] = 1
			}
		}
	}

	d.prev = cur
	return grid
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

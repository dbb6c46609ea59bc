package leaderboard

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Entry is one finished session on the board.
type Entry struct {
	Name  string    `yaml:"name" json:"name"`
	Score int       `yaml:"score" json:"score"`
	When  time.Time `yaml:"when" json:"when"`
}

const (
	boardObject = "leaderboard"
	boardProp   = "entries"
	maxEntries  = 100
)

// Board persists finished-session scores through gdata. A nil manager is a
// supported degraded mode: entries live in memory for the process lifetime.
type Board struct {
	mu      sync.Mutex
	m       *gdata.Manager
	entries []Entry
}

// Open creates a board backed by the platform data dir for appName. On store
// failure it returns a usable in-memory board along with the error.
func Open(appName string) (*Board, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return &Board{}, fmt.Errorf("open data store: %w", err)
	}
	b := &Board{m: m}
	if err := b.load(); err != nil {
		return b, err
	}
	return b, nil
}

// NewMemory returns a board with no backing store, for tests and degraded
// startup.
func NewMemory() *Board { return &Board{} }

func (b *Board) load() error {
	if b.m == nil || !b.m.ObjectPropExists(boardObject, boardProp) {
		return nil
	}
	data, err := b.m.LoadObjectProp(boardObject, boardProp)
	if err != nil {
		return fmt.Errorf("load leaderboard: %w", err)
	}
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("unmarshal leaderboard: %w", err)
	}
	b.entries = entries
	return nil
}

// Record adds one finished session and persists the board, best scores first.
func (b *Board) Record(name string, score int, when time.Time) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = append(b.entries, Entry{Name: name, Score: score, When: when})
	sort.SliceStable(b.entries, func(i, j int) bool {
		return b.entries[i].Score > b.entries[j].Score
	})
	if len(b.entries) > maxEntries {
		b.entries = b.entries[:maxEntries]
	}

	if b.m == nil {
		return nil
	}
	data, err := yaml.Marshal(b.entries)
	if err != nil {
		return fmt.Errorf("marshal leaderboard: %w", err)
	}
	if err := b.m.SaveObjectProp(boardObject, boardProp, data); err != nil {
		return fmt.Errorf("save leaderboard: %w", err)
	}
	return nil
}

// Top returns up to n best entries, best first. Safe on a nil board.
func (b *Board) Top(n int) []Entry {
	if b == nil {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if n > len(b.entries) {
		n = len(b.entries)
	}
	out := make([]Entry, n)
	copy(out, b.entries[:n])
	return out
}

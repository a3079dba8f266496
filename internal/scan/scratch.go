package scan

import (
	"encoding/hex"
	"math/rand"
	"sync"
)

// ScratchNamer hands out unique scratch-filename suffixes drawn from a
// single RNG seeded at scan start with wall-clock time. It is shared
// by every ToolExtractor/ToolComparer a scan constructs so concurrent
// probes never collide on a scratch filename; access is serialized
// with a mutex since math/rand.Rand is not safe for concurrent use.
type ScratchNamer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewScratchNamer seeds the namer's RNG with seed, which callers
// should derive from wall-clock time at scan start.
func NewScratchNamer(seed int64) *ScratchNamer {
	return &ScratchNamer{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a fresh hex-encoded random suffix.
func (n *ScratchNamer) Next() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	var buf [8]byte
	n.rng.Read(buf[:])
	return hex.EncodeToString(buf[:])
}

package store

import "sync"

// LegacyChecksums accumulates CRC32 checksums for files copied from sources
// that predate per-file content digests. A recovery gathers them while files
// arrive and drops the whole set if it does not complete.
type LegacyChecksums struct {
	mu   sync.Mutex
	sums map[string]uint32
}

// Add records the checksum for the named file, replacing any previous value.
func (lc *LegacyChecksums) Add(name string, sum uint32) {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	if lc.sums == nil {
		lc.sums = make(map[string]uint32)
	}
	lc.sums[name] = sum
}

// Get returns the recorded checksum for the named file.
func (lc *LegacyChecksums) Get(name string) (uint32, bool) {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	sum, ok := lc.sums[name]
	return sum, ok
}

// Len returns the number of recorded checksums.
func (lc *LegacyChecksums) Len() int {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return len(lc.sums)
}

// Clear drops all recorded checksums.
func (lc *LegacyChecksums) Clear() {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	lc.sums = nil
}

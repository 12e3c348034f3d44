package naming

import (
	"fmt"
	"sync"
)

// Counter hands out per-key occurrence numbers for one batch run. The first
// observation of a key gets 1, later ones 2, 3, and so on. All methods are
// goroutine-safe; a single mutex guards the whole map.
type Counter struct {
	mu     sync.Mutex
	counts map[string]int
	claims map[claimKey]int
}

type claimKey struct {
	key   string
	owner string
}

// NewCounter creates an empty counter. Its lifetime is one run; nothing is
// persisted.
func NewCounter() *Counter {
	return &Counter{
		counts: make(map[string]int),
		claims: make(map[claimKey]int),
	}
}

// Next records one more observation of key and returns its ordinal.
func (c *Counter) Next(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nextLocked(key)
}

func (c *Counter) nextLocked(key string) int {
	c.counts[key]++
	return c.counts[key]
}

// Claim is Next memoized per owner: asking again for the same key and owner
// returns the number handed out the first time and does not advance the
// counter.
func (c *Counter) Claim(key, owner string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	ck := claimKey{key: key, owner: owner}
	if n, ok := c.claims[ck]; ok {
		return n
	}
	n := c.nextLocked(key)
	c.claims[ck] = n
	return n
}

// Count returns how many times key has been observed.
func (c *Counter) Count(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[key]
}

// Suffix renders the disambiguation token for ordinal n: nothing for the
// first file, "-02", "-03", ... after that.
func Suffix(n int) string {
	if n <= 1 {
		return ""
	}
	return fmt.Sprintf("-%02d", n)
}

// WithSuffix appends Suffix(n) to base.
func WithSuffix(base string, n int) string {
	return base + Suffix(n)
}

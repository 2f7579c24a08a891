// Package cache keeps recently built models in memory so the API can serve
// follow-up requests (tables, summaries) without rebuilding.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"firm-investment/internal/investment"
	"firm-investment/internal/model"
)

// Entry is a cached model.
type Entry struct {
	Model     *investment.Model
	ExpiresAt time.Time
}

// Models is a TTL cache of built models keyed by parameter hash.
// A nil *Models is a valid, always-empty cache.
type Models struct {
	mu    sync.RWMutex
	store map[string]*Entry
	ttl   time.Duration
	now   func() time.Time

	stop chan struct{}
	once sync.Once
}

// New returns a cache with the given TTL and starts a sweeper that runs every
// sweep interval. Call Close to stop it.
func New(ttl, sweep time.Duration) *Models {
	c := &Models{
		store: make(map[string]*Entry),
		ttl:   ttl,
		now:   time.Now,
		stop:  make(chan struct{}),
	}
	if sweep > 0 {
		go c.cleanup(sweep)
	}
	return c
}

// Get retrieves a cached model if available and not expired.
func (c *Models) Get(key string) (*investment.Model, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.store[key]
	if !ok || c.now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry.Model, true
}

// Put stores m under the hash of its parameters and returns the key.
func (c *Models) Put(m *investment.Model) string {
	key := Key(m.Params)
	if c == nil {
		return key
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[key] = &Entry{Model: m, ExpiresAt: c.now().Add(c.ttl)}
	return key
}

func (c *Models) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// Clear removes all entries.
func (c *Models) Clear() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[string]*Entry)
}

// Close stops the sweeper.
func (c *Models) Close() {
	if c == nil {
		return
	}
	c.once.Do(func() { close(c.stop) })
}

// Evict removes expired entries and reports how many were dropped.
func (c *Models) Evict() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	n := 0
	for key, entry := range c.store {
		if now.After(entry.ExpiresAt) {
			delete(c.store, key)
			n++
		}
	}
	return n
}

func (c *Models) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.Evict()
		case <-c.stop:
			return
		}
	}
}

// Key hashes a parameter set. Identical parameters always share a key, which
// is safe because Build is deterministic.
func Key(p model.Params) string {
	keyStr := fmt.Sprintf("%v|%v|%v|%v|%v|%v|%v|%v|%v|%v|%d|%d|%d|%v|%v",
		p.Beta, p.Theta, p.Rho, p.Sigma, p.Delta, p.Gamma, p.F, p.Lambda,
		p.PriceBuy, p.PriceSell, p.NK, p.NA, p.NI, p.MinI, p.MaxI)
	hash := sha256.Sum256([]byte(keyStr))
	return hex.EncodeToString(hash[:])[:16]
}

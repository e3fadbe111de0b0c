package cache

import (
	"strings"
	"sync"
	"time"
)

type item struct {
	value      any
	expiration int64
}

// Cache es un caché en memoria con TTL para respuestas de listados. Se
// inyecta como instancia, sin estado global.
type Cache struct {
	mu    sync.RWMutex
	items map[string]item
	ttl   time.Duration
}

func New(defaultTTL time.Duration) *Cache {
	c := &Cache{items: make(map[string]item), ttl: defaultTTL}
	go c.janitor()
	return c
}

func (c *Cache) Set(key string, value any, ttl ...time.Duration) {
	d := c.ttl
	if len(ttl) > 0 {
		d = ttl[0]
	}
	c.mu.Lock()
	c.items[key] = item{value: value, expiration: time.Now().Add(d).UnixNano()}
	c.mu.Unlock()
}

func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	it, ok := c.items[key]
	c.mu.RUnlock()
	if !ok || time.Now().UnixNano() > it.expiration {
		return nil, false
	}
	return it.value, true
}

func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

func (c *Cache) DeleteByPrefix(prefix string) {
	c.mu.Lock()
	for k := range c.items {
		if strings.HasPrefix(k, prefix) {
			delete(c.items, k)
		}
	}
	c.mu.Unlock()
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Cache) janitor() {
	t := time.NewTicker(5 * time.Minute)
	defer t.Stop()
	for range t.C {
		now := time.Now().UnixNano()
		c.mu.Lock()
		for k, it := range c.items {
			if now > it.expiration {
				delete(c.items, k)
			}
		}
		c.mu.Unlock()
	}
}

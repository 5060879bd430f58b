package cache

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache is a bounded, time-keyed cache for listing reads. Entries expire on
// their own; writers are expected to invalidate explicitly after mutations.
type Cache struct {
	c *gocache.Cache
}

func NewCache(defaultTTL, cleanupInterval time.Duration) *Cache {
	return &Cache{
		c: gocache.New(defaultTTL, cleanupInterval),
	}
}

func (cm *Cache) Insert(k string, x interface{}) {
	cm.c.Set(k, x, gocache.DefaultExpiration)
}

func (cm *Cache) Get(key string) (interface{}, error) {
	val, found := cm.c.Get(key)
	if found {
		return val, nil
	}

	return nil, fmt.Errorf("value not found")
}

func (cm *Cache) Delete(key string) {
	cm.c.Delete(key)
}

func (cm *Cache) Flush() {
	cm.c.Flush()
}

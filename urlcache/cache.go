/*
Copyright 2026 Yurl Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package urlcache memoizes url.Parse behind a small bounded cache.
//
// The cache is an explicitly constructed object owned by whoever needs
// memoized parsing, not a hidden process-wide global. Its eviction
// policy is a full clear once the capacity is reached.
package urlcache

import (
	"sync"

	"github.com/marmida/yurl/url"
)

// DefaultCapacity is the number of entries a Cache holds when no
// explicit capacity is given to New.
const DefaultCapacity = 20

// Cache is a bounded memo of parse results keyed by the raw input
// string. A Cache is safe for concurrent use; a single lock guards the
// lookup-or-clear-and-insert sequence, so the entry count never
// exceeds the capacity.
type Cache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]url.URL
}

// New returns an empty Cache holding at most capacity entries.
// Capacities of zero or below fall back to DefaultCapacity.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		capacity: capacity,
		entries:  make(map[string]url.URL, capacity),
	}
}

// Parse returns the URL for raw, parsing and caching it on a miss. When
// the cache is at capacity, every entry is dropped before the new one
// is inserted. Only parse results are cached; URLs built from explicit
// parts never enter the cache.
func (c *Cache) Parse(raw string) url.URL {
	c.mu.Lock()
	defer c.mu.Unlock()

	if u, ok := c.entries[raw]; ok {
		return u
	}

	if len(c.entries) >= c.capacity {
		clear(c.entries)
	}

	u := url.Parse(raw)
	c.entries[raw] = u
	return u
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear drops every cached entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

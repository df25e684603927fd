// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package cache

import (
	"sync"
	"testing"
	"time"
)

func TestLRU_GetAdd(t *testing.T) {
	t.Parallel()

	c := NewLRU[[]int](2, time.Minute)

	if _, ok := c.Get("avatar"); ok {
		t.Fatal("expected miss on empty cache")
	}

	c.Add("avatar", []int{1, 2})
	c.Add("titanic", []int{3})

	got, ok := c.Get("avatar")
	if !ok || len(got) != 2 || got[0] != 1 {
		t.Fatalf("Get(avatar) = %v, %v", got, ok)
	}

	// avatar is most recent, so spectre evicts titanic
	c.Add("spectre", []int{4})
	if _, ok := c.Get("titanic"); ok {
		t.Error("titanic should have been evicted")
	}
	if _, ok := c.Get("avatar"); !ok {
		t.Error("avatar should still be cached")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}

	hits, misses := c.Stats()
	if hits != 2 || misses != 2 {
		t.Errorf("Stats() = (%d, %d), want (2, 2)", hits, misses)
	}
}

func TestLRU_Update(t *testing.T) {
	t.Parallel()

	c := NewLRU[string](2, time.Minute)
	c.Add("k", "old")
	c.Add("k", "new")

	if v, _ := c.Get("k"); v != "new" {
		t.Errorf("Get(k) = %q, want new", v)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestLRU_Expiry(t *testing.T) {
	t.Parallel()

	now := time.Now()
	c := NewLRU[int](4, time.Second)
	c.now = func() time.Time { return now }

	c.Add("k", 1)
	now = now.Add(2 * time.Second)

	if _, ok := c.Get("k"); ok {
		t.Error("expired entry should miss")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry should be removed, Len() = %d", c.Len())
	}
}

func TestLRU_Defaults(t *testing.T) {
	t.Parallel()

	c := NewLRU[int](0, 0)
	if c.capacity != 1024 || c.ttl != 5*time.Minute {
		t.Errorf("defaults = (%d, %v), want (1024, 5m)", c.capacity, c.ttl)
	}
}

func TestLRU_Concurrent(t *testing.T) {
	t.Parallel()

	c := NewLRU[int](16, time.Minute)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				key := string(rune('a' + (i+g)%26))
				c.Add(key, i)
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()

	if c.Len() > 16 {
		t.Errorf("Len() = %d exceeds capacity", c.Len())
	}
}

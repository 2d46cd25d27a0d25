// Package cache provides a small ristretto-backed memoization cache, adapted
// from the teacher's common/cache/ristretto.go (a TTL'd general-purpose
// cache) into a TTL-free decision cache suitable for memoizing pure
// computations such as suit-local mahjong shape decomposition.
package cache

import "github.com/dgraph-io/ristretto"

// BoolMemo memoizes a pure int64-keyed boolean decision.
type BoolMemo struct {
	cache *ristretto.Cache
}

// NewBoolMemo builds a memo sized for a few million small keys, which easily
// covers the suit-local decomposition space (5^9 ≈ 2e6 distinct count
// vectors per suit).
func NewBoolMemo() *BoolMemo {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e6,
		MaxCost:     1 << 24,
		BufferItems: 64,
	})
	if err != nil {
		// ristretto.NewCache only fails on invalid config constants we
		// control above; treat as unreachable rather than threading an
		// error return through every call site.
		panic(err)
	}
	return &BoolMemo{cache: c}
}

func (m *BoolMemo) Get(key int64) (bool, bool) {
	v, ok := m.cache.Get(key)
	if !ok {
		return false, false
	}
	return v.(bool), true
}

func (m *BoolMemo) Put(key int64, value bool) {
	m.cache.Set(key, value, 1)
}

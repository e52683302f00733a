package main

import (
	"sync"

	"github.com/spaolacci/murmur3"
)

// shardCount partitions the keyspace across independent maps, each behind
// its own RWMutex, so writes to different keys rarely contend. Must be a
// power of two.
const shardCount = 64

// Store is a sharded in-memory map from key to serialized counter bytes.
//
// The store knows nothing about counters; it hands raw bytes to closures
// under the owning shard's lock. View runs read-only under RLock; Mutate
// runs a read-modify-write cycle under the exclusive lock, which is the
// per-key atomicity the command handlers build on.
type Store struct {
	shards [shardCount]storeShard
}

type storeShard struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewStore() *Store {
	s := &Store{}
	for i := range s.shards {
		s.shards[i].data = make(map[string][]byte)
	}
	return s
}

// shardFor picks the shard owning key. Murmur3 gives a cheap, well-mixed
// distribution over the shard space.
func (s *Store) shardFor(key string) *storeShard {
	return &s.shards[murmur3.Sum64([]byte(key))&(shardCount-1)]
}

// View calls fn with the current value of key (nil if absent) under a read
// lock. fn must not retain or mutate the slice.
func (s *Store) View(key string, fn func(data []byte)) {
	shard := s.shardFor(key)
	shard.mu.RLock()
	defer shard.mu.RUnlock()
	fn(shard.data[key])
}

// Mutate calls fn with the current value of key (nil if absent) under the
// exclusive lock. If fn returns true, its result replaces the stored value;
// otherwise the store is left untouched.
func (s *Store) Mutate(key string, fn func(data []byte) ([]byte, bool)) {
	shard := s.shardFor(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	newData, write := fn(shard.data[key])
	if write {
		shard.data[key] = newData
	}
}

// Delete removes key and reports whether it existed.
func (s *Store) Delete(key string) bool {
	shard := s.shardFor(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	if _, ok := shard.data[key]; !ok {
		return false
	}
	delete(shard.data, key)
	return true
}

// Len returns the total number of keys across all shards.
func (s *Store) Len() int {
	total := 0
	for i := range s.shards {
		s.shards[i].mu.RLock()
		total += len(s.shards[i].data)
		s.shards[i].mu.RUnlock()
	}
	return total
}

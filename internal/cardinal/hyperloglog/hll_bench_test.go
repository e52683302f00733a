package hyperloglog

import (
	"math/rand"
	"testing"
)

// Micro-benchmarks for the counter in isolation, without network or
// serialization overhead.
//
// Run with: go test -bench=. -benchmem ./internal/cardinal/hyperloglog/

func benchmarkItems(n int) []uint64 {
	rng := rand.New(rand.NewSource(42))
	items := make([]uint64, n)
	for i := range items {
		items[i] = rng.Uint64()
	}
	return items
}

func BenchmarkAddSparse(b *testing.B) {
	items := benchmarkItems(1000)

	b.ResetTimer()
	b.ReportAllocs()

	c := New()
	for i := 0; i < b.N; i++ {
		// Recycle a bounded item set so the counter stays sparse.
		c.Add(items[i%len(items)])
	}
}

func BenchmarkAddDense(b *testing.B) {
	items := benchmarkItems(1 << 16)
	c, _ := NewCounter(DefaultPrecision, false, Murmur3Finalizer, XXHash64)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		c.Add(items[i%len(items)])
	}
}

func BenchmarkAddBytes(b *testing.B) {
	item := []byte("benchmark-item-of-plausible-length")
	c, _ := NewCounter(DefaultPrecision, false, Murmur3Finalizer, XXHash64)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		c.AddBytes(item)
	}
}

func BenchmarkCardinalityDense(b *testing.B) {
	c, _ := NewCounter(DefaultPrecision, false, Murmur3Finalizer, XXHash64)
	for _, item := range benchmarkItems(1 << 16) {
		c.Add(item)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		// Invalidate so every iteration pays the full register scan.
		c.cacheInvalid = true
		_ = c.Cardinality()
	}
}

func BenchmarkErtlCardinalityDense(b *testing.B) {
	c, _ := NewCounter(DefaultPrecision, false, Murmur3Finalizer, XXHash64)
	for _, item := range benchmarkItems(1 << 16) {
		c.Add(item)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = c.ErtlCardinality()
	}
}

func BenchmarkMergeDense(b *testing.B) {
	x, _ := NewCounter(DefaultPrecision, false, Murmur3Finalizer, XXHash64)
	y, _ := NewCounter(DefaultPrecision, false, Murmur3Finalizer, XXHash64)
	for i, item := range benchmarkItems(1 << 16) {
		if i%2 == 0 {
			x.Add(item)
		} else {
			y.Add(item)
		}
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if err := x.Merge(y); err != nil {
			b.Fatal(err)
		}
	}
}

package hyperloglog

import (
	"bytes"
	"math"
	"testing"
)

// addRange adds the integers [lo, hi] to the counter.
func addRange(t *testing.T, c *Counter, lo, hi uint64) {
	t.Helper()
	for i := lo; i <= hi; i++ {
		c.Add(i)
	}
}

// densify forces a counter into the dense representation so register states
// can be compared directly.
func densify(c *Counter) []uint8 {
	if c.sparse {
		c.convertToDense()
	}
	return c.registers
}

func TestNewCounter(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c := New()
		if c.Precision() != DefaultPrecision {
			t.Errorf("precision: got %d, want %d", c.Precision(), DefaultPrecision)
		}
		if !c.Sparse() {
			t.Error("a new counter should start sparse")
		}
		if c.MixerKind() != Murmur3Finalizer {
			t.Errorf("mixer: got %v, want Murmur3Finalizer", c.MixerKind())
		}
		if c.Registers() != 1<<DefaultPrecision {
			t.Errorf("register count: got %d, want %d", c.Registers(), 1<<DefaultPrecision)
		}
	})

	t.Run("precision bounds", func(t *testing.T) {
		for _, p := range []uint8{4, 12, 18} {
			if _, err := NewWithPrecision(p); err != nil {
				t.Errorf("NewWithPrecision(%d): unexpected error %v", p, err)
			}
		}
		for _, p := range []uint8{0, 3, 19, 64} {
			if _, err := NewWithPrecision(p); err != ErrInvalidPrecision {
				t.Errorf("NewWithPrecision(%d): got %v, want ErrInvalidPrecision", p, err)
			}
		}
	})

	t.Run("dense start", func(t *testing.T) {
		c, err := NewCounter(10, false, WangMixer, XXH3)
		if err != nil {
			t.Fatal(err)
		}
		if c.Sparse() {
			t.Error("counter should start dense when requested")
		}
		if len(c.registers) != 1<<10 {
			t.Errorf("registers: got %d, want %d", len(c.registers), 1<<10)
		}
	})
}

// TestScenarios pins the regression scenarios: murmur3 finalizer, p=12.
func TestScenarios(t *testing.T) {
	t.Run("empty counter", func(t *testing.T) {
		c := New()
		if got := c.Cardinality(); got != 0 {
			t.Errorf("Cardinality() = %d, want 0", got)
		}
		if got := c.ErtlCardinality(); got != 0 {
			t.Errorf("ErtlCardinality() = %d, want 0", got)
		}
	})

	t.Run("one item", func(t *testing.T) {
		c := New()
		c.Add(1)
		if got := c.Cardinality(); got != 1 {
			t.Errorf("Cardinality() = %d, want 1", got)
		}
		if got := c.ErtlCardinality(); got != 1 {
			t.Errorf("ErtlCardinality() = %d, want 1", got)
		}
	})

	t.Run("same item many times", func(t *testing.T) {
		c := New()
		for i := 0; i < 1000; i++ {
			c.Add(42)
		}
		if got := c.Cardinality(); got != 1 {
			t.Errorf("Cardinality() = %d, want 1", got)
		}
		if got := c.SparseSize(); got != 1 {
			t.Errorf("SparseSize() = %d, want 1", got)
		}
	})

	t.Run("one hundred items stays sparse", func(t *testing.T) {
		c := New()
		addRange(t, c, 1, 100)
		if !c.Sparse() {
			t.Fatal("counter should still be sparse after 100 items")
		}
		if got := c.Cardinality(); got < 98 || got > 102 {
			t.Errorf("Cardinality() = %d, want within [98, 102]", got)
		}
		if got := c.ErtlCardinality(); got < 98 || got > 102 {
			t.Errorf("ErtlCardinality() = %d, want within [98, 102]", got)
		}
	})

	t.Run("ten thousand items upgrades to dense", func(t *testing.T) {
		c := New()
		sawSparse := false
		for i := uint64(1); i <= 10000; i++ {
			if c.Sparse() {
				sawSparse = true
			}
			c.Add(i)
		}
		if !sawSparse {
			t.Error("counter never reported sparse during the stream")
		}
		if c.Sparse() {
			t.Fatal("counter should be dense after 10000 items at p=12")
		}
		if got := c.Cardinality(); got < 9700 || got > 10300 {
			t.Errorf("Cardinality() = %d, want within [9700, 10300]", got)
		}
		if got := c.ErtlCardinality(); got < 9700 || got > 10300 {
			t.Errorf("ErtlCardinality() = %d, want within [9700, 10300]", got)
		}
	})

	t.Run("merge of overlapping ranges", func(t *testing.T) {
		a := New()
		b := New()
		addRange(t, a, 1, 5000)
		addRange(t, b, 3001, 8000)
		if err := a.Merge(b); err != nil {
			t.Fatal(err)
		}
		got := a.Cardinality()
		if got < 7760 || got > 8240 {
			t.Errorf("Cardinality() = %d, want 8000 within 3%%", got)
		}
	})

	t.Run("upgrade happens right past m/4", func(t *testing.T) {
		c := New()
		addRange(t, c, 1, 1024)
		if !c.Sparse() {
			t.Fatal("counter should still be sparse at 1024 entries")
		}
		c.Add(1025)
		if c.Sparse() {
			t.Fatal("counter should upgrade once the sparse set exceeds m/4")
		}
	})
}

func TestAddReturnsChanged(t *testing.T) {
	c := New()
	if !c.Add(7) {
		t.Error("first Add should report a change")
	}
	if c.Add(7) {
		t.Error("repeated Add should not report a change")
	}

	if !c.AddMany([]uint64{7, 8, 9}) {
		t.Error("AddMany with new items should report a change")
	}
	if c.AddMany([]uint64{7, 8, 9}) {
		t.Error("AddMany with seen items should not report a change")
	}
}

func TestAddBytesAndString(t *testing.T) {
	a := New()
	b := New()

	a.AddBytes([]byte("alpha"))
	b.AddString("alpha")

	if a.Cardinality() != 1 || b.Cardinality() != 1 {
		t.Fatalf("single item estimates: bytes=%d string=%d, want 1", a.Cardinality(), b.Cardinality())
	}
	// Same item through both entry points must land in the same register.
	if !bytes.Equal(densify(a), densify(b)) {
		t.Error("AddBytes and AddString disagree on register state")
	}
}

// TestEstimateMonotonicUnderInsertion covers the monotonicity property:
// re-adding an observed item never changes the estimate, and new items never
// push it down beyond estimator noise. The switch from sparse linear
// counting to the dense estimator may adjust the estimate slightly, so the
// cross-item check allows a small relative dip.
func TestEstimateMonotonicUnderInsertion(t *testing.T) {
	c := New()
	prev := uint64(0)
	for i := uint64(1); i <= 3000; i++ {
		c.Add(i)
		est := c.Cardinality()
		if float64(est) < 0.97*float64(prev) {
			t.Fatalf("estimate dropped after adding item %d: %d -> %d", i, prev, est)
		}
		prev = est

		c.Add(i) // duplicate, state unchanged
		if got := c.Cardinality(); got != est {
			t.Fatalf("estimate changed after re-adding item %d: %d -> %d", i, est, got)
		}
		prev = est
	}
}

func TestMergeCommutativeAssociative(t *testing.T) {
	build := func(lo, hi uint64) *Counter {
		c := New()
		for i := lo; i <= hi; i++ {
			c.Add(i)
		}
		return c
	}

	t.Run("commutativity", func(t *testing.T) {
		ab := build(1, 2000)
		if err := ab.Merge(build(1500, 4000)); err != nil {
			t.Fatal(err)
		}
		ba := build(1500, 4000)
		if err := ba.Merge(build(1, 2000)); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(densify(ab), densify(ba)) {
			t.Error("merge is not commutative on register state")
		}
	})

	t.Run("associativity", func(t *testing.T) {
		left := build(1, 1000)
		if err := left.Merge(build(500, 1500)); err != nil {
			t.Fatal(err)
		}
		if err := left.Merge(build(1200, 2500)); err != nil {
			t.Fatal(err)
		}

		inner := build(500, 1500)
		if err := inner.Merge(build(1200, 2500)); err != nil {
			t.Fatal(err)
		}
		right := build(1, 1000)
		if err := right.Merge(inner); err != nil {
			t.Fatal(err)
		}

		if !bytes.Equal(densify(left), densify(right)) {
			t.Error("merge is not associative on register state")
		}
	})
}

// TestMergeEqualsUnion checks that merging counters over disjoint sets gives
// the same register state as one counter over the union.
func TestMergeEqualsUnion(t *testing.T) {
	x := New()
	y := New()
	u := New()
	for i := uint64(1); i < 3000; i++ {
		x.Add(i)
		u.Add(i)
	}
	for i := uint64(3000); i < 6000; i++ {
		y.Add(i)
		u.Add(i)
	}

	if err := x.Merge(y); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(densify(x), densify(u)) {
		t.Error("merged register state differs from the union counter")
	}
}

// TestSparseDenseEquivalence checks that the final dense register state does
// not depend on when the upgrade happened.
func TestSparseDenseEquivalence(t *testing.T) {
	viaSparse := New()
	denseFromStart, err := NewCounter(DefaultPrecision, false, Murmur3Finalizer, XXHash64)
	if err != nil {
		t.Fatal(err)
	}

	// 3000 items cross the p=12 upgrade threshold mid-stream.
	for i := uint64(1); i <= 3000; i++ {
		viaSparse.Add(i)
		denseFromStart.Add(i)
	}
	if viaSparse.Sparse() {
		t.Fatal("stream did not trigger the upgrade")
	}

	if !bytes.Equal(viaSparse.registers, denseFromStart.registers) {
		t.Error("register state depends on when the upgrade occurred")
	}
}

func TestMergeRepresentationCombinations(t *testing.T) {
	small := func() *Counter {
		c := New()
		addRange(t, c, 1, 50)
		return c
	}
	big := func() *Counter {
		c := New()
		addRange(t, c, 10000, 14000)
		return c
	}

	reference := New()
	addRange(t, reference, 1, 50)
	addRange(t, reference, 10000, 14000)
	want := densify(reference)

	t.Run("sparse into sparse stays sparse", func(t *testing.T) {
		a := small()
		b := New()
		addRange(t, b, 60, 100)
		if err := a.Merge(b); err != nil {
			t.Fatal(err)
		}
		if !a.Sparse() {
			t.Error("small sparse merge should not upgrade")
		}
		if got, wantSize := a.SparseSize(), 91; got != wantSize {
			t.Errorf("sparse size after merge: got %d, want %d", got, wantSize)
		}
	})

	t.Run("sparse into sparse upgrades past m", func(t *testing.T) {
		// A sparse merge skips the m/4 check, so repeated merges can
		// grow the set until the combined size crosses m and forces
		// the upgrade.
		a := New()
		addRange(t, a, 1, 1000)
		b := New()
		addRange(t, b, 2000, 3000)
		c := New()
		addRange(t, c, 4000, 5000)
		d := New()
		addRange(t, d, 6000, 7000)
		e := New()
		addRange(t, e, 8000, 9000)
		for _, o := range []*Counter{b, c, d, e} {
			if err := a.Merge(o); err != nil {
				t.Fatal(err)
			}
		}
		if a.Sparse() {
			t.Error("merge should have upgraded once the combined size passed m")
		}
	})

	t.Run("sparse argument into dense receiver", func(t *testing.T) {
		a := big() // dense
		if a.Sparse() {
			t.Fatal("setup: expected dense receiver")
		}
		if err := a.Merge(small()); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(a.registers, want) {
			t.Error("dense<-sparse merge produced wrong registers")
		}
	})

	t.Run("dense argument into sparse receiver", func(t *testing.T) {
		a := small() // sparse
		if err := a.Merge(big()); err != nil {
			t.Fatal(err)
		}
		if a.Sparse() {
			t.Error("sparse receiver should upgrade when merging a dense argument")
		}
		if !bytes.Equal(a.registers, want) {
			t.Error("sparse<-dense merge produced wrong registers")
		}
	})

	t.Run("dense into dense", func(t *testing.T) {
		a := big()
		o := New()
		addRange(t, o, 1, 50)
		o.convertToDense()
		if err := a.Merge(o); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(a.registers, want) {
			t.Error("dense<-dense merge produced wrong registers")
		}
	})

	t.Run("precision mismatch", func(t *testing.T) {
		a, _ := NewWithPrecision(10)
		b, _ := NewWithPrecision(11)
		if err := a.Merge(b); err != ErrPrecisionMismatch {
			t.Errorf("got %v, want ErrPrecisionMismatch", err)
		}
	})
}

// TestAccuracy verifies the relative error bound of both estimators for
// uniformly hashed items: well under 5 standard errors (1.04/sqrt(m)).
func TestAccuracy(t *testing.T) {
	for _, p := range []uint8{10, 14} {
		m := float64(uint32(1) << p)
		bound := 5 * 1.04 / math.Sqrt(m)
		for _, n := range []uint64{100, 10000, 1000000} {
			c, err := NewWithPrecision(p)
			if err != nil {
				t.Fatal(err)
			}
			for i := uint64(1); i <= n; i++ {
				c.Add(i)
			}

			for name, est := range map[string]uint64{
				"hllpp": c.Cardinality(),
				"ertl":  c.ErtlCardinality(),
			} {
				relErr := math.Abs(float64(est)-float64(n)) / float64(n)
				if relErr >= bound {
					t.Errorf("p=%d n=%d %s estimate %d: relative error %.4f exceeds %.4f",
						p, n, name, est, relErr, bound)
				}
			}
		}
	}
}

func TestReset(t *testing.T) {
	c := New()
	addRange(t, c, 1, 5000) // goes dense
	if c.Sparse() {
		t.Fatal("setup: expected a dense counter")
	}

	c.Reset()

	if !c.Sparse() {
		t.Error("Reset should return to the sparse representation")
	}
	if c.registers != nil {
		t.Error("Reset should release the dense registers")
	}
	if c.sparseSet != nil {
		t.Error("Reset should not pre-allocate the sparse set")
	}
	if got := c.Cardinality(); got != 0 {
		t.Errorf("Cardinality() after Reset = %d, want 0", got)
	}

	// The counter must be fully usable again.
	c.Add(99)
	if got := c.Cardinality(); got != 1 {
		t.Errorf("Cardinality() after Reset+Add = %d, want 1", got)
	}
}

func TestCardinalityCache(t *testing.T) {
	c := New()
	c.Add(1)

	first := c.Cardinality()
	if c.cacheInvalid {
		t.Error("cache should be valid after Cardinality")
	}
	if got := c.Cardinality(); got != first {
		t.Errorf("cached Cardinality() = %d, want %d", got, first)
	}

	c.Add(2)
	if !c.cacheInvalid {
		t.Error("a state-changing Add should invalidate the cache")
	}
	if got := c.Cardinality(); got != 2 {
		t.Errorf("Cardinality() after second item = %d, want 2", got)
	}

	// An Add that changes nothing keeps the cache warm.
	c.Add(2)
	if c.cacheInvalid {
		t.Error("a no-op Add should not invalidate the cache")
	}
}

func TestMixersDisagree(t *testing.T) {
	// Sanity check that the mixer choice actually reaches the data path:
	// the same stream under different mixers should fill different
	// registers.
	states := make([][]uint8, 0, 3)
	for _, mx := range []Mixer{Murmur3Finalizer, WangMixer, NumericalRecipesMixer} {
		c, err := NewCounter(DefaultPrecision, true, mx, XXHash64)
		if err != nil {
			t.Fatal(err)
		}
		for i := uint64(1); i <= 2000; i++ {
			c.Add(i)
		}
		states = append(states, densify(c))
	}
	if bytes.Equal(states[0], states[1]) || bytes.Equal(states[0], states[2]) {
		t.Error("different mixers produced identical register states")
	}
}

// Package hyperloglog implements the HyperLogLog++ algorithm for cardinality
// estimation.
//
// A HyperLogLog counter approximates the number of distinct elements in a
// multiset using sublinear memory. This implementation follows Heule et al.
// ("HyperLogLog in Practice", [1]) with the improved estimator of Ertl [3]
// available alongside the classic bias-corrected one:
//
//   - A 64-bit hash per item, enabling estimation well beyond 10^9 elements.
//   - A dual representation: counters start in a compact "sparse" form that
//     stores 32-bit encoded hashes at an increased precision (p' = 25), and
//     upgrade to a dense register array once the sparse set outgrows m/4
//     entries.
//   - The empirical bias correction of [1] applied to the raw estimate, with
//     linear counting below a per-precision threshold.
//   - The sigma/tau estimator of [3], which needs no empirical data and no
//     estimator switch.
//
// [1] Heule, Nunkesser, Hall: HyperLogLog in Practice: Algorithmic
//
//	Engineering of a State of The Art Cardinality Estimation Algorithm.
//
// [2] P. Flajolet, É. Fusy, O. Gandouet, and F. Meunier. Hyperloglog: The
//
//	analysis of a near-optimal cardinality estimation algorithm.
//
// [3] O. Ertl. New cardinality estimation algorithms for HyperLogLog sketches.
//
// The Algorithm
// =============
//
// Every item is reduced to a 64-bit value and passed through a bit mixer (a
// 64->64 bit finalizer, selectable at construction). The mixed hash is split:
//
//  1. The top p bits select one of m = 2^p registers.
//  2. The rank is one plus the number of leading zeros in the remaining
//     bits, bounded by 64-p+1. A high rank is statistically rare, so the
//     maximum rank observed per register encodes how many distinct items
//     have likely been seen.
//
// Dual Representation
// ===================
//
// A fresh counter keeps a sparse set of 32-bit encoded hashes instead of the
// register array. Each encoded word packs the top 25 bits of the hash (the
// sparse index, which contains the dense index as its own top p bits) and,
// when the hash cannot recover it, an explicit 6-bit rank plus a flag bit.
// Because the sparse precision is much higher than p, linear counting over
// the sparse set is near-exact for small cardinalities.
//
// Two encoded words may collide on the full 25-bit index. The insert rule
// keeps whichever word represents the higher rank:
//
//  1. A word with the flag bit set beats one without (the explicit rank is
//     provably higher).
//  2. Between two flagged words, the larger value wins (larger rank field).
//  3. Between two unflagged words the index determines the word entirely,
//     so they are equal and nothing changes.
//
// When the set exceeds m/4 entries the counter decodes every word into the
// dense register array and stays dense until Reset.
//
// Concurrency
// ===========
//
// A Counter is not safe for concurrent use. Add, Merge, Reset and the cached
// Cardinality all require exclusive access; callers that need parallelism
// keep one counter per worker and Merge at a synchronization point. The
// serialized form produced by Serialize is an immutable snapshot and may be
// read (GetCachedCount, Deserialize) from any number of goroutines.
package hyperloglog

import (
	"math"
)

const (
	// MinPrecision and MaxPrecision bound the precision parameter p. The
	// dense register count is m = 2^p, so p=18 already costs 256KB per
	// counter; the bias tables stop there as well.
	MinPrecision = 4
	MaxPrecision = 18

	// DefaultPrecision gives m=4096 registers, a ~1.6% standard error.
	DefaultPrecision = 12

	// pPrime is the sparse precision. Fixed at 25: a 25-bit index, a 6-bit
	// rank and one flag bit fill a 32-bit encoded word exactly.
	pPrime = 25

	// mPrime is the denominator used for linear counting over the sparse
	// set.
	mPrime = 1 << (pPrime - 1)

	// sparseQ is the rank range parameter of the sparse register
	// histogram, 64 - pPrime.
	sparseQ = 64 - pPrime
)

// Counter is a HyperLogLog++ cardinality estimator.
//
// The zero value is not usable; construct with New, NewWithPrecision or
// NewCounter. Precision, mixer and item hasher are fixed for the lifetime of
// the counter.
type Counter struct {
	p      uint8
	m      uint32
	mixer  Mixer
	hasher ItemHasher

	sparse    bool
	sparseSet map[uint32]uint32 // 25-bit sparse index -> encoded word
	registers []uint8           // m entries when dense, nil when sparse

	// Cached result of the last Cardinality call. The cache rides along in
	// the serialized header so a reader can answer a count query from raw
	// bytes without deserializing.
	cachedCardinality uint64
	cacheInvalid      bool
}

// New creates a counter with the default precision (12), the MurmurHash3
// finalizer mixer and the XXHash64 item hasher, starting in the sparse
// representation.
func New() *Counter {
	c, _ := NewCounter(DefaultPrecision, true, Murmur3Finalizer, XXHash64)
	return c
}

// NewWithPrecision creates a sparse counter with the given precision and the
// default mixer and item hasher. Returns ErrInvalidPrecision if p lies
// outside [4, 18].
func NewWithPrecision(p uint8) (*Counter, error) {
	return NewCounter(p, true, Murmur3Finalizer, XXHash64)
}

// NewCounter creates a counter with full control over precision, starting
// representation, mixer and item hasher.
func NewCounter(p uint8, startSparse bool, mixer Mixer, hasher ItemHasher) (*Counter, error) {
	if p < MinPrecision || p > MaxPrecision {
		return nil, ErrInvalidPrecision
	}
	if !mixer.valid() {
		return nil, ErrUnknownMixer
	}
	if !hasher.valid() {
		return nil, ErrUnknownHasher
	}

	c := &Counter{
		p:            p,
		m:            1 << p,
		mixer:        mixer,
		hasher:       hasher,
		sparse:       startSparse,
		cacheInvalid: true,
	}
	if !startSparse {
		c.registers = make([]uint8, c.m)
	}
	return c, nil
}

// Precision returns the precision parameter p.
func (c *Counter) Precision() uint8 { return c.p }

// Registers returns the number of dense registers, m = 2^p.
func (c *Counter) Registers() uint32 { return c.m }

// Sparse reports whether the counter is currently in the sparse
// representation.
func (c *Counter) Sparse() bool { return c.sparse }

// SparseSize returns the number of encoded words held by the sparse set.
// Zero when dense.
func (c *Counter) SparseSize() int { return len(c.sparseSet) }

// MixerKind returns the bit mixer the counter was constructed with.
func (c *Counter) MixerKind() Mixer { return c.mixer }

// HasherKind returns the item hasher the counter was constructed with.
func (c *Counter) HasherKind() ItemHasher { return c.hasher }

// Add incorporates a 64-bit item into the estimate. The item is passed
// through the counter's mixer, then either encoded into the sparse set or
// max-folded into its dense register.
//
// It returns true if the internal state changed, which callers use to decide
// whether derived data (a serialized copy, a response code) must be
// refreshed.
func (c *Counter) Add(item uint64) bool {
	h := c.mixer.Mix(item)

	var changed bool
	if c.sparse {
		changed = c.sparseAdd(h)
		if len(c.sparseSet) > int(c.m/4) {
			c.convertToDense()
		}
	} else {
		changed = c.denseAdd(h)
	}

	if changed {
		c.cacheInvalid = true
	}
	return changed
}

// AddBytes reduces the item to 64 bits with the counter's item hasher and
// adds it.
func (c *Counter) AddBytes(item []byte) bool {
	return c.Add(c.hasher.Sum64(item))
}

// AddString adds a string item. Equivalent to AddBytes without forcing the
// caller to convert.
func (c *Counter) AddString(item string) bool {
	return c.Add(c.hasher.Sum64([]byte(item)))
}

// AddMany adds a batch of 64-bit items. Returns true if any of them changed
// the state.
func (c *Counter) AddMany(items []uint64) bool {
	changed := false
	for _, item := range items {
		if c.Add(item) {
			changed = true
		}
	}
	return changed
}

// Merge folds other into c so that c estimates the union of both input
// multisets. The receiver keeps its own mixer and item hasher; merging is
// only meaningful when both sides hashed their items the same way.
//
// Returns ErrPrecisionMismatch if the precisions differ. The argument is
// read-only.
func (c *Counter) Merge(other *Counter) error {
	if c.p != other.p {
		return ErrPrecisionMismatch
	}

	switch {
	case c.sparse && other.sparse:
		// Merging two sparse sets may overshoot the upgrade threshold
		// by an arbitrary amount, so upgrade eagerly when the combined
		// size could exceed m. Duplicated indices make this switch
		// early sometimes; that only costs memory, never accuracy.
		if len(c.sparseSet)+len(other.sparseSet) > int(c.m) {
			c.convertToDense()
			c.addWordsToRegisters(other.sparseSet)
		} else {
			for _, w := range other.sparseSet {
				c.insertWord(w)
			}
		}
	case other.sparse:
		c.addWordsToRegisters(other.sparseSet)
	default:
		if c.sparse {
			c.convertToDense()
		}
		c.mergeRegisters(other.registers)
	}

	c.cacheInvalid = true
	return nil
}

// Cardinality returns the HyperLogLog++ estimate of the number of distinct
// items added since the last Reset.
//
// Sparse counters use linear counting at the sparse precision, which is
// near-exact for the cardinalities the sparse representation can hold. Dense
// counters use linear counting while enough registers are zero, and the
// bias-corrected raw estimate otherwise.
//
// The result is cached until the next mutation; because of the cache this
// method requires the same exclusive access as Add.
func (c *Counter) Cardinality() uint64 {
	if !c.cacheInvalid {
		return c.cachedCardinality
	}

	var est uint64
	if c.sparse {
		lc, err := linearCounting(mPrime, mPrime-uint32(len(c.sparseSet)))
		if err != nil {
			// Add and Merge keep the sparse set at no more than m
			// words, far below mPrime, so the linear counting domain
			// cannot be violated from here.
			panic("hyperloglog: sparse linear counting: " + err.Error())
		}
		est = uint64(math.Round(lc))
	} else {
		est = c.denseCardinality()
	}

	c.cachedCardinality = est
	c.cacheInvalid = false
	return est
}

// denseCardinality implements the dense branch of the HLL++ estimator.
func (c *Counter) denseCardinality() uint64 {
	v := countZeroRegisters(c.registers)
	if v > 0 {
		lc, err := linearCounting(c.m, v)
		if err != nil {
			panic("hyperloglog: dense linear counting: " + err.Error())
		}
		if lc <= float64(thresholds[c.p-MinPrecision]) {
			return uint64(math.Round(lc))
		}
	}

	raw := rawEstimate(c.registers)
	if raw <= 5*float64(c.m) {
		bias := estimateBias(raw, c.p)
		if raw <= bias {
			// The bias tables decay toward zero well before raw
			// approaches them; reaching this branch means the
			// tables or registers are corrupt.
			panic("hyperloglog: bias correction exceeds raw estimate")
		}
		return uint64(math.Round(raw - bias))
	}
	return uint64(math.Round(raw))
}

// ErtlCardinality returns the improved estimate of Ertl [3].
//
// It is computed from a histogram of register values using the sigma and tau
// correction series, needs no empirical bias data, and involves no estimator
// switch. Unlike Cardinality the result is never cached; the method is a
// pure read.
func (c *Counter) ErtlCardinality() uint64 {
	var (
		hist []int
		q    uint8
		m    float64
	)
	if c.sparse {
		hist = c.sparseHisto()
		q = sparseQ
		m = float64(mPrime)
	} else {
		hist = c.denseHisto()
		q = 64 - c.p
		m = float64(c.m)
	}

	// Denominator: m*tau for saturated registers, folded down through the
	// histogram, plus m*sigma for the zero registers.
	z := m * tau(1.0-float64(hist[q+1])/m)
	for k := int(q); k >= 1; k-- {
		z += float64(hist[k])
		z *= 0.5
	}
	z += m * sigma(float64(hist[0])/m)

	mSqAlphaInf := (m / (2.0 * math.Ln2)) * m
	return uint64(math.Round(mSqAlphaInf / z))
}

// Reset returns the counter to its initial empty sparse state. Precision,
// mixer and item hasher are retained. The sparse set is re-allocated lazily
// by the next Add.
func (c *Counter) Reset() {
	c.sparse = true
	c.sparseSet = nil
	c.registers = nil
	c.cachedCardinality = 0
	c.cacheInvalid = true
}

package hyperloglog

// sparseAdd encodes the mixed hash and inserts it into the sparse set.
// Returns true if the set changed.
func (c *Counter) sparseAdd(h uint64) bool {
	return c.insertWord(encodeHash(h, c.p))
}

// insertWord applies the sparse collision rule and stores w. Two words with
// the same full 25-bit index describe the same sparse bucket; the survivor
// must represent the higher rank:
//
//  1. A flagged word (bit 0 set) beats an unflagged one: it was stored
//     because the index could not recover the rank, and its explicit rank
//     is necessarily higher than anything an unflagged word can encode.
//  2. Between two flagged words, the larger value carries the larger
//     additional-rank field.
//  3. Between two unflagged words, the smaller value would win (fewer set
//     bits below the index means more leading zeros). With pPrime=25 an
//     unflagged word is exactly the left-aligned index, so two such words
//     with equal keys are equal and the comparison is moot; the branch is
//     kept for shape with the reference rule.
func (c *Counter) insertWord(w uint32) bool {
	if c.sparseSet == nil {
		// Allocated lazily so that Reset does not pay for a counter
		// that is never touched again.
		c.sparseSet = make(map[uint32]uint32, 8)
	}
	key := sparseKey(w)

	cur, ok := c.sparseSet[key]
	if !ok {
		c.sparseSet[key] = w
		return true
	}
	if cur == w {
		return false
	}

	if (cur & 1) == (w & 1) {
		if w&1 == 1 {
			if w > cur {
				c.sparseSet[key] = w
				return true
			}
		} else if w < cur {
			c.sparseSet[key] = w
			return true
		}
	} else if w&1 == 1 {
		c.sparseSet[key] = w
		return true
	}
	return false
}

// convertToDense decodes every stored word into a fresh register array and
// switches the counter to the dense representation. One-way until Reset.
func (c *Counter) convertToDense() {
	c.registers = make([]uint8, c.m)
	c.addWordsToRegisters(c.sparseSet)
	c.sparseSet = nil
	c.sparse = false
	c.cacheInvalid = true
}

// addWordsToRegisters max-folds a set of encoded words into the dense
// registers. Used by the upgrade path and by merges with a sparse argument.
func (c *Counter) addWordsToRegisters(words map[uint32]uint32) {
	for _, w := range words {
		idx, rank := decodeHash(w, c.p)
		if rank > c.registers[idx] {
			c.registers[idx] = rank
		}
	}
}

// sparseHisto builds the register-value histogram for the Ertl estimator at
// the sparse parameterization: mPrime registers of which all but the stored
// words are zero, with ranks taken at dense precision.
func (c *Counter) sparseHisto() []int {
	hist := make([]int, sparseQ+2)
	hist[0] = mPrime
	for _, w := range c.sparseSet {
		_, rank := decodeHash(w, c.p)
		// Ranks decoded at precision p can exceed the sparse
		// histogram's saturation bucket (up to 64-p+1 > sparseQ+1).
		// Fold them into the saturated count, which is exactly what
		// the tau correction accounts for.
		if rank > sparseQ+1 {
			rank = sparseQ + 1
		}
		hist[rank]++
		hist[0]--
	}
	return hist
}

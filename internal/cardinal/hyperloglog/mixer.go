package hyperloglog

// Mixer selects the 64->64 bit finalizer applied to every item before the
// index/rank split. All three candidates are full-avalanche integer mixers;
// the choice is fixed at construction so that two counters built over the
// same items can be merged.
//
// Dispatch is a switch on the enum rather than a stored function value:
// the branch is perfectly predictable inside an Add loop.
type Mixer uint8

const (
	// Murmur3Finalizer is the avalanche finalizer from MurmurHash3.
	// The default.
	Murmur3Finalizer Mixer = iota

	// WangMixer is Thomas Wang's 64-bit integer mixer.
	WangMixer

	// NumericalRecipesMixer is the Ranhash generator from Numerical
	// Recipes, 3rd edition, p. 352.
	NumericalRecipesMixer
)

func (mx Mixer) valid() bool {
	return mx <= NumericalRecipesMixer
}

// String returns the configuration-file spelling of the mixer.
func (mx Mixer) String() string {
	switch mx {
	case Murmur3Finalizer:
		return "murmur3-finalizer"
	case WangMixer:
		return "wang"
	case NumericalRecipesMixer:
		return "numerical-recipes"
	default:
		return "unknown"
	}
}

// ParseMixer maps a configuration string to a Mixer.
func ParseMixer(s string) (Mixer, error) {
	switch s {
	case "murmur3-finalizer", "murmur3":
		return Murmur3Finalizer, nil
	case "wang":
		return WangMixer, nil
	case "numerical-recipes", "ranhash":
		return NumericalRecipesMixer, nil
	default:
		return 0, ErrUnknownMixer
	}
}

// Mix applies the selected finalizer to k. All arithmetic is unsigned 64-bit
// with wrap-around.
func (mx Mixer) Mix(k uint64) uint64 {
	switch mx {
	case WangMixer:
		return wangMixer(k)
	case NumericalRecipesMixer:
		return ranhash(k)
	default:
		return murmur3Finalizer(k)
	}
}

// murmur3Finalizer is the avalanche finalizer of MurmurHash3. The increment
// keeps a zero key from mapping to a zero hash, which would pin rank
// observations for that key at the maximum.
func murmur3Finalizer(key uint64) uint64 {
	key += 1
	key ^= key >> 33
	key *= 0xff51afd7ed558ccd
	key ^= key >> 33
	key *= 0xc4ceb9fe1a85ec53
	key ^= key >> 33
	return key
}

// wangMixer is the 64-bit integer hash by Thomas Wang.
func wangMixer(key uint64) uint64 {
	key = (^key) + (key << 21) // key = (key << 21) - key - 1
	key = key ^ (key >> 24)
	key = (key + (key << 3)) + (key << 8) // key * 265
	key = key ^ (key >> 14)
	key = (key + (key << 2)) + (key << 4) // key * 21
	key = key ^ (key >> 28)
	key = key + (key << 31)
	return key
}

// ranhash is the hash recommended by Numerical Recipes, 3rd edition, p. 352.
func ranhash(u uint64) uint64 {
	v := u*3935559000370003845 + 2691343689449507681
	v ^= v >> 21
	v ^= v << 37
	v ^= v >> 4
	v *= 4768777513237032717
	v ^= v << 20
	v ^= v >> 41
	v ^= v << 5
	return v
}

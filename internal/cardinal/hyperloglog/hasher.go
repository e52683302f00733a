package hyperloglog

import (
	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// ItemHasher reduces a byte-slice item to the 64-bit value fed into the
// counter's mixer. Only AddBytes and AddString use it; Add takes the 64-bit
// item directly.
//
// Two counters can only be merged meaningfully when their items were hashed
// by the same ItemHasher and Mixer, so the choice is fixed at construction
// and recorded in the serialized header.
type ItemHasher uint8

const (
	// XXHash64 is the default byte hasher.
	XXHash64 ItemHasher = iota

	// XXH3 is the newer xxh3 variant; faster on short keys.
	XXH3

	// Murmur3 is the 64-bit half of MurmurHash3's 128-bit output.
	Murmur3
)

func (ih ItemHasher) valid() bool {
	return ih <= Murmur3
}

// String returns the configuration-file spelling of the hasher.
func (ih ItemHasher) String() string {
	switch ih {
	case XXHash64:
		return "xxhash64"
	case XXH3:
		return "xxh3"
	case Murmur3:
		return "murmur3"
	default:
		return "unknown"
	}
}

// ParseItemHasher maps a configuration string to an ItemHasher.
func ParseItemHasher(s string) (ItemHasher, error) {
	switch s {
	case "xxhash64", "xxhash":
		return XXHash64, nil
	case "xxh3":
		return XXH3, nil
	case "murmur3":
		return Murmur3, nil
	default:
		return 0, ErrUnknownHasher
	}
}

// Sum64 hashes item with the selected function.
func (ih ItemHasher) Sum64(item []byte) uint64 {
	switch ih {
	case XXH3:
		return xxh3.Hash(item)
	case Murmur3:
		return murmur3.Sum64(item)
	default:
		return xxhash.Sum64(item)
	}
}

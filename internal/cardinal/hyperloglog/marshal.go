package hyperloglog

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Serialize converts the counter into a contiguous byte slice: the 16-byte
// header followed by the representation payload.
//
// Dense counters append the m register bytes directly. Sparse counters
// append a 4-byte word count and then each 32-bit encoded word in
// little-endian order. All multi-byte integers are little-endian so the
// format is portable across architectures.
func (c *Counter) Serialize() []byte {
	header := counterHeader{
		precision:         c.p,
		mixer:             c.mixer,
		hasher:            c.hasher,
		cachedCardinality: c.cachedCardinality,
		cacheInvalid:      c.cacheInvalid,
	}

	if c.sparse {
		header.encoding = sparseEncoding

		count := uint32(len(c.sparseSet))
		out := make([]byte, 0, headerSize+4+int(count)*4)
		out = append(out, header.serialize()...)

		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], count)
		out = append(out, buf[:]...)
		for _, w := range c.sparseSet {
			binary.LittleEndian.PutUint32(buf[:], w)
			out = append(out, buf[:]...)
		}
		return out
	}

	header.encoding = denseEncoding
	out := make([]byte, 0, headerSize+len(c.registers))
	out = append(out, header.serialize()...)
	out = append(out, c.registers...)
	return out
}

// Deserialize reconstructs a counter from its serialized form. The input is
// validated strictly: truncation, bad magic, out-of-range header fields,
// payload length mismatches and register values above the rank bound all
// fail with an error rather than producing a corrupt counter.
//
// The payload is copied; the returned counter does not alias data.
func Deserialize(data []byte) (*Counter, error) {
	header, err := deserializeHeader(data)
	if err != nil {
		return nil, err
	}

	c := &Counter{
		p:                 header.precision,
		m:                 1 << header.precision,
		mixer:             header.mixer,
		hasher:            header.hasher,
		cachedCardinality: header.cachedCardinality,
		cacheInvalid:      header.cacheInvalid,
	}
	maxRank := 64 - header.precision + 1

	if header.encoding == denseEncoding {
		payload := data[headerSize:]
		if len(payload) != int(c.m) {
			return nil, fmt.Errorf("invalid counter data: dense payload is %d bytes, want %d", len(payload), c.m)
		}
		for i, r := range payload {
			if r > maxRank {
				return nil, fmt.Errorf("invalid counter data: register %d holds rank %d, bound %d", i, r, maxRank)
			}
		}
		c.registers = make([]uint8, c.m)
		copy(c.registers, payload)
		return c, nil
	}

	c.sparse = true
	offset := headerSize
	if len(data) < offset+4 {
		return nil, errors.New("invalid counter data: sparse payload truncated")
	}
	count := binary.LittleEndian.Uint32(data[offset : offset+4])
	offset += 4

	if count > 0 {
		if len(data) != offset+int(count)*4 {
			return nil, errors.New("invalid counter data: sparse payload truncated")
		}
		c.sparseSet = make(map[uint32]uint32, count)
		for i := uint32(0); i < count; i++ {
			w := binary.LittleEndian.Uint32(data[offset : offset+4])
			offset += 4

			if _, rank := decodeHash(w, c.p); rank > maxRank {
				return nil, fmt.Errorf("invalid counter data: encoded word %#x decodes to rank %d, bound %d", w, rank, maxRank)
			}
			// Insert through the collision rule rather than blindly,
			// so a hand-built or duplicated payload still yields a
			// well-formed set.
			c.insertWord(w)
		}
	}
	return c, nil
}

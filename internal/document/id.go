package document

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
	"time"
)

// Result IDs are ULIDs: 26 Crockford Base32 characters with a millisecond
// timestamp prefix, so ids sort in creation order without a dependency.

var (
	idMu    sync.Mutex
	idLast  uint64
	idSeq   uint16
	idAlpha = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"
)

// NewID returns a fresh ULID. Safe for concurrent use.
func NewID() string {
	idMu.Lock()
	defer idMu.Unlock()

	ms := uint64(time.Now().UnixMilli())
	if ms == idLast {
		idSeq++
	} else {
		idLast = ms
		idSeq = 0
	}

	var raw [16]byte
	binary.BigEndian.PutUint64(raw[:8], ms<<16)
	rand.Read(raw[6:])
	// Sequence keeps ids unique within one millisecond.
	binary.BigEndian.PutUint16(raw[6:8], idSeq)

	return encodeBase32(raw)
}

// encodeBase32 renders 128 bits as 26 Crockford characters. The value is
// treated as a 130-bit big-endian stream with two zero bits of padding at
// the front, consumed five bits at a time.
func encodeBase32(raw [16]byte) string {
	var out [26]byte
	bits := uint(2) // leading pad so 26*5 covers 128 bits
	var acc uint16
	j := 0
	for i := 0; i < len(out); i++ {
		for bits < 5 {
			acc <<= 8
			if j < len(raw) {
				acc |= uint16(raw[j])
				j++
			}
			bits += 8
		}
		bits -= 5
		out[i] = idAlpha[(acc>>bits)&31]
		acc &= (1 << bits) - 1
	}
	return string(out[:])
}

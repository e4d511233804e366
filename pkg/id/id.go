// Package id generates sortable identifiers for requests and sessions.
package id

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// Crockford's Base32 alphabet (excludes I, L, O, U to avoid confusion).
const crockfordBase32 = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// New generates a ULID: 48 bits of millisecond timestamp followed by
// 80 bits of randomness, encoded as 26 Crockford Base32 characters.
// IDs sort lexicographically by creation time.
func New() string {
	var b [16]byte

	ms := uint64(time.Now().UnixMilli())
	b[0] = byte(ms >> 40)
	b[1] = byte(ms >> 32)
	b[2] = byte(ms >> 24)
	b[3] = byte(ms >> 16)
	b[4] = byte(ms >> 8)
	b[5] = byte(ms)

	if _, err := rand.Read(b[6:]); err != nil {
		// Degraded but functional fallback entropy.
		binary.BigEndian.PutUint64(b[6:14], uint64(time.Now().UnixNano()))
	}

	return encode(b)
}

// encode maps the 128-bit value onto 26 base32 characters, five bits per
// character from least significant upward. The two top bits of the first
// character are always zero.
func encode(b [16]byte) string {
	var out [26]byte
	for i := 0; i < 26; i++ {
		var idx byte
		for j := 0; j < 5; j++ {
			bit := i*5 + j
			if bit < 128 && b[15-bit/8]&(1<<(bit%8)) != 0 {
				idx |= 1 << j
			}
		}
		out[25-i] = crockfordBase32[idx]
	}
	return string(out[:])
}

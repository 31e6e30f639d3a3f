// Package bitset provides a fixed-capacity, bit-addressable byte buffer used
// as the gene representation of the genetic algorithm.
//
// Bits are addressed most-significant-bit first: logical bit 0 is the high
// bit of byte 0, logical bit 8 is the high bit of byte 1, and so on. Integer
// decoding treats the buffer as a big-endian number.
package bitset

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"strings"
)

// BitVector is a fixed-length byte buffer with bit-level accessors.
// The buffer length never changes after construction.
type BitVector struct {
	buf []byte
}

// New returns a zeroed bit vector holding byteLen bytes.
func New(byteLen int) *BitVector {
	if byteLen < 0 {
		byteLen = 0
	}
	return &BitVector{buf: make([]byte, byteLen)}
}

// ForBits returns a zeroed bit vector large enough to hold bitSize bits,
// that is ceil(bitSize/8) bytes.
func ForBits(bitSize int) *BitVector {
	if bitSize <= 0 {
		return New(0)
	}
	return New((bitSize-1)/8 + 1)
}

// FromString converts a string of '0' and '1' characters into a bit vector.
// Character i of s becomes logical bit i.
func FromString(s string) (*BitVector, error) {
	v := ForBits(len(s))
	for i, c := range s {
		switch c {
		case '1':
			v.Set(i)
		case '0':
		default:
			return nil, fmt.Errorf("bitset: invalid character %q in string encoding", c)
		}
	}
	return v, nil
}

// locate maps a bit index to its byte offset and mask.
func (v *BitVector) locate(pos int) (int, byte, bool) {
	if pos < 0 {
		return 0, 0, false
	}
	i := pos / 8
	if i >= len(v.buf) {
		return 0, 0, false
	}
	return i, 1 << (7 - uint(pos%8)), true
}

// Len returns the buffer length in bytes.
func (v *BitVector) Len() int {
	return len(v.buf)
}

// Bits returns the capacity in bits.
func (v *BitVector) Bits() int {
	return len(v.buf) * 8
}

// Get returns the bit at pos. The second result is false when pos lies
// outside the buffer, in which case the bit is reported as 0.
func (v *BitVector) Get(pos int) (uint8, bool) {
	i, mask, ok := v.locate(pos)
	if !ok {
		return 0, false
	}
	if v.buf[i]&mask == 0 {
		return 0, true
	}
	return 1, true
}

// Has tests whether the bit at pos is set. Out-of-range bits read as unset.
func (v *BitVector) Has(pos int) bool {
	b, _ := v.Get(pos)
	return b == 1
}

// Edit sets the bit at pos when bit is non-zero and clears it otherwise.
// It reports false, leaving the buffer untouched, when pos is out of range.
func (v *BitVector) Edit(pos int, bit uint8) bool {
	i, mask, ok := v.locate(pos)
	if !ok {
		return false
	}
	if bit != 0 {
		v.buf[i] |= mask
	} else {
		v.buf[i] &^= mask
	}
	return true
}

// Set sets the bit at pos to one.
func (v *BitVector) Set(pos int) bool {
	return v.Edit(pos, 1)
}

// Clear sets the bit at pos to zero.
func (v *BitVector) Clear(pos int) bool {
	return v.Edit(pos, 0)
}

// Flip inverts the bit at pos.
func (v *BitVector) Flip(pos int) bool {
	b, ok := v.Get(pos)
	if !ok {
		return false
	}
	return v.Edit(pos, b^1)
}

// CopyBit copies the bit at pos from src. A bit absent from src is copied
// as 0.
func (v *BitVector) CopyBit(src *BitVector, pos int) bool {
	b, _ := src.Get(pos)
	return v.Edit(pos, b)
}

// Randomize overwrites every byte with eight independent fair coin flips
// drawn from rng.
func (v *BitVector) Randomize(rng *rand.Rand) {
	for i := range v.buf {
		var b byte
		for j := 0; j < 8; j++ {
			b <<= 1
			if rng.Float64() < 0.5 {
				b |= 1
			}
		}
		v.buf[i] = b
	}
}

// ToNumber decodes the first length bits as a big-endian unsigned integer.
// Bits after length are ignored, including the low-order bits of the final
// partial byte. length must not exceed 64 or the capacity of the vector.
func (v *BitVector) ToNumber(length int) uint64 {
	if length <= 0 {
		return 0
	}
	if length > 64 || length > v.Bits() {
		panic(fmt.Sprintf("bitset: ToNumber length %d exceeds limit of %d bits", length, min(64, v.Bits())))
	}

	n := (length-1)/8 + 1
	last := uint((length - 1) % 8)

	var x uint64
	for i := 0; i < n-1; i++ {
		x = x<<8 | uint64(v.buf[i])
	}
	x <<= last + 1
	x |= uint64(v.buf[n-1] >> (7 - last))
	return x
}

// Binary renders ToNumber(length) in base 2, zero-padded to exactly length
// characters.
func (v *BitVector) Binary(length int) string {
	if length <= 0 {
		return ""
	}
	return fmt.Sprintf("%0*b", length, v.ToNumber(length))
}

// Bytes returns a copy of the underlying buffer.
func (v *BitVector) Bytes() []byte {
	return append([]byte(nil), v.buf...)
}

// Clone returns an independent copy of v.
func (v *BitVector) Clone() *BitVector {
	return &BitVector{buf: v.Bytes()}
}

// Equal reports whether both vectors hold the same bytes.
func (v *BitVector) Equal(other *BitVector) bool {
	return bytes.Equal(v.buf, other.buf)
}

// String renders every bit of the buffer, bit 0 first.
func (v *BitVector) String() string {
	var sb strings.Builder
	sb.Grow(v.Bits())
	for _, b := range v.buf {
		fmt.Fprintf(&sb, "%08b", b)
	}
	return sb.String()
}

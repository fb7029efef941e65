package cologne

import (
	"bytes"
	"iter"
	"strings"
)

// PackedVec stores codes at four bits each: the code at index i occupies
// the high nibble of byte i/2 when i is even and the low nibble when i is
// odd. The unused low nibble of a half-filled final byte is always zero.
//
// A PackedVec belongs to exactly one writer while it is being filled and
// to its readers afterwards; it is not safe for concurrent use.
type PackedVec struct {
	// n is the number of stored codes; the byte buffer always holds
	// exactly ceil(n/2) bytes.
	n   int
	buf []byte
}

// NewPackedVec creates an empty PackedVec with no backing storage.
func NewPackedVec() *PackedVec {
	return &PackedVec{}
}

// NewPackedVecCapacity creates an empty PackedVec whose backing storage
// can hold at least capBytes bytes, i.e. twice that many codes.
func NewPackedVecCapacity(capBytes int) *PackedVec {
	return &PackedVec{buf: make([]byte, 0, capBytes)}
}

// PackedVecFromCodes packs an explicit code sequence. The push and finish
// rules apply, so the result equals what streaming the same codes through
// a scanner sink would have produced.
func PackedVecFromCodes(codes []Code) *PackedVec {
	v := NewPackedVec()
	for _, c := range codes {
		v.pushRaw(c)
	}
	v.Finish()
	return v
}

// ReadFrom clears the vector and encodes the given raw text bytes into
// it. This is the primary entry point; the backing buffer is reused
// across calls.
func (v *PackedVec) ReadFrom(input []byte) {
	v.Clear()
	newScanner(v).scan(input)
}

// Len returns the number of stored codes.
func (v *PackedVec) Len() int {
	return v.n
}

// Bytes returns the raw nibble-packed backing storage.
func (v *PackedVec) Bytes() []byte {
	return v.buf
}

// IntoRaw returns the backing storage together with the logical length.
func (v *PackedVec) IntoRaw() ([]byte, int) {
	return v.buf, v.n
}

// Clear empties the vector, keeping the backing storage for reuse.
func (v *PackedVec) Clear() {
	v.buf = v.buf[:0]
	v.n = 0
}

// byteAligned reports whether the next code would start a new byte.
func (v *PackedVec) byteAligned() bool {
	return v.n&0x01 == 0
}

// Push appends a code, applying the dedup and stray-zero rules: a code
// equal to the last one is dropped, and a trailing Class0 that does not
// follow a Space is overwritten in place instead of extended.
//
// The logical length must stay below the platform indexing limit; Push
// does not check for overflow.
func (v *PackedVec) Push(c Code) {
	if v.lastIs(c) {
		return
	}
	last := v.lastByte()
	if v.n >= 2 && last&0x0f == 0 && last>>4 != byte(Space) {
		v.replaceLast(c)
		return
	}
	v.pushRaw(c)
}

// pushRaw appends a code without any rule checks. A new backing byte is
// only allocated when the length moves from even to odd.
func (v *PackedVec) pushRaw(c Code) {
	if v.byteAligned() {
		v.buf = append(v.buf, byte(c)<<4)
	} else {
		v.buf[len(v.buf)-1] |= byte(c)
	}
	v.n++
}

// lastIs reports whether the last stored code equals c, without decoding.
func (v *PackedVec) lastIs(c Code) bool {
	if len(v.buf) == 0 {
		return false
	}
	last := v.buf[len(v.buf)-1]
	hi := byte(c) << 4
	if v.byteAligned() {
		return last<<4 == hi
	}
	return last == hi
}

// Last returns the most recently stored code.
func (v *PackedVec) Last() (Code, bool) {
	if v.n == 0 {
		return 0, false
	}
	last := v.buf[len(v.buf)-1]
	if v.byteAligned() {
		return codeFromNibble(last & 0x0f), true
	}
	return codeFromNibble(last >> 4), true
}

// replaceLast overwrites the last stored code in place.
func (v *PackedVec) replaceLast(c Code) {
	i := len(v.buf) - 1
	if v.byteAligned() {
		v.buf[i] = v.buf[i]&0xf0 | byte(c)
	} else {
		v.buf[i] = v.buf[i]&0x0f | byte(c)<<4
	}
}

// lastByte returns the last two stored codes packed as one byte, the
// older one in the high nibble. Positions before the first code read as
// zero.
func (v *PackedVec) lastByte() byte {
	if v.byteAligned() {
		if len(v.buf) == 0 {
			return 0
		}
		return v.buf[len(v.buf)-1]
	}
	last := v.buf[len(v.buf)-1] >> 4
	if v.n == 1 {
		return last
	}
	return v.buf[len(v.buf)-2]<<4 | last
}

// Finish applies the trailing cleanup rule: a final Class0 or Space is
// dropped unless the vector ends in exactly Space followed by Class0.
// Called once after the last Push of an encode pass.
func (v *PackedVec) Finish() {
	if len(v.buf) == 0 {
		return
	}
	if v.lastByte() == byte(Space)<<4|byte(Class0) {
		return
	}
	i := len(v.buf) - 1
	if v.byteAligned() {
		nib := v.buf[i] & 0x0f
		if nib == byte(Class0) || nib == byte(Space) {
			v.n--
			v.buf[i] &= 0xf0
		}
	} else {
		nib := v.buf[i] >> 4
		if nib == byte(Class0) || nib == byte(Space) {
			v.n--
			v.buf = v.buf[:i]
		}
	}
}

// All returns a forward-only iterator over the stored codes. Iteration
// may stop early without side effects.
func (v *PackedVec) All() iter.Seq[Code] {
	return func(yield func(Code) bool) {
		if len(v.buf) == 0 {
			return
		}
		for _, b := range v.buf[:len(v.buf)-1] {
			if !yield(codeFromNibble(b >> 4)) {
				return
			}
			if !yield(codeFromNibble(b & 0x0f)) {
				return
			}
		}
		last := v.buf[len(v.buf)-1]
		if !yield(codeFromNibble(last >> 4)) {
			return
		}
		if v.byteAligned() {
			yield(codeFromNibble(last & 0x0f))
		}
	}
}

// Codes decodes the full contents into a fresh slice.
func (v *PackedVec) Codes() []Code {
	codes := make([]Code, 0, v.n)
	for c := range v.All() {
		codes = append(codes, c)
	}
	return codes
}

// Equal reports whether two vectors store the same code sequence.
func (v *PackedVec) Equal(o *PackedVec) bool {
	return v.n == o.n && bytes.Equal(v.buf, o.buf)
}

// String renders the contents like "[657 52682]" for debugging.
func (v *PackedVec) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for c := range v.All() {
		b.WriteByte(c.Char())
	}
	b.WriteByte(']')
	return b.String()
}

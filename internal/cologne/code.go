package cologne

import "fmt"

// Code is a single Cologne phonetics output symbol. A Code fits into a
// nibble: the nine sound classes use the values 0-8 and the word break
// marker uses 14, so two codes can share one byte in a PackedVec.
type Code uint8

const (
	// Class0 covers the vowels A, E, I, O, U and Y.
	Class0 Code = 0b0000
	// Class1 covers B, and P when not in front of H.
	Class1 Code = 0b0001
	// Class2 covers D and T when not in front of C, S or Z.
	Class2 Code = 0b0010
	// Class3 covers F, V, W and the PH combination.
	Class3 Code = 0b0011
	// Class4 covers G, K, Q and the hard readings of C.
	Class4 Code = 0b0100
	// Class5 covers L.
	Class5 Code = 0b0101
	// Class6 covers M and N.
	Class6 Code = 0b0110
	// Class7 covers R.
	Class7 Code = 0b0111
	// Class8 covers S, Z, X and the soft readings of C.
	Class8 Code = 0b1000
	// Space marks a word break caused by whitespace, punctuation or any
	// other byte that does not belong to a word.
	Space Code = 0b1110
)

// codeFromNibble converts a stored nibble back into a Code. Only 0-8 and
// 14 are valid; anything else means the buffer or the classifier table is
// corrupt, which is a programming error and not recoverable.
func codeFromNibble(n byte) Code {
	switch {
	case n <= 8:
		return Code(n)
	case n == byte(Space):
		return Space
	}
	panic(fmt.Sprintf("cologne: invalid code nibble %d", n))
}

// Char returns the printable representation of the code: '0' through '8'
// for the sound classes and ' ' for a word break.
func (c Code) Char() byte {
	if c == Space {
		return ' '
	}
	return '0' + byte(c)
}

// String implements fmt.Stringer.
func (c Code) String() string {
	return string(c.Char())
}

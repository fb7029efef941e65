package cologne

// UTF-8 lead byte shared by ä, ö, ü and ß, the only multi-byte sequences
// the encoder understands. Every other byte above 0x7F acts as a word
// break.
const germanLeadByte = 195

// Continuation bytes for the recognized German characters, mapped to
// their transliteration.
const (
	germanAE = 164 // ä -> A
	germanOE = 182 // ö -> O
	germanUE = 188 // ü -> U
	germanSZ = 159 // ß -> Z
)

// Alphabet indexes used by the lookback window. idxBreak stands for
// "no letter": word start, whitespace, punctuation and anything else
// outside A-Z.
const (
	idxA     = 0
	idxC     = 2
	idxD     = 3
	idxH     = 7
	idxK     = 10
	idxL     = 11
	idxO     = 14
	idxP     = 15
	idxQ     = 16
	idxR     = 17
	idxS     = 18
	idxT     = 19
	idxU     = 20
	idxX     = 23
	idxZ     = 25
	idxBreak = 26
)

// Classifier sentinels. Values 0-8 in the table are final classes; these
// mark letters that need more context before a class can be emitted.
const (
	uncertainC  = 9  // C depends on the surrounding letters
	uncertainDT = 10 // D and T depend on the following letter
	silentH     = 11 // H never produces a class of its own
	uncertainP  = 12 // P depends on the following letter (PH)
	uncertainX  = 13 // X resolves immediately against the previous letter
	breakClass  = 14 // word break
)

// classTable maps an alphabet index (0=A .. 25=Z, 26=break) to a final
// class or one of the sentinels above.
var classTable = [27]byte{
	// A  B  C           D            E  F  G  H        I  J  K  L  M
	0, 1, uncertainC, uncertainDT, 0, 3, 4, silentH, 0, 0, 4, 5, 6,
	// N  O  P           Q  R  S  T            U  V  W  X           Y  Z  break
	6, 0, uncertainP, 4, 7, 8, uncertainDT, 0, 3, 3, uncertainX, 0, 8, breakClass,
}

// foldIndex turns an ASCII byte into its alphabet index, folding case.
// Everything outside A-Z and a-z becomes idxBreak.
func foldIndex(b byte) byte {
	if b < 'A' || (b > 'Z' && b < 'a') || b > 'z' {
		return idxBreak
	}
	return (b - 'A') &^ 32
}

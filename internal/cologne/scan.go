package cologne

import "fmt"

// sink receives finalized codes from the scanner. Each implementation
// owns the adjacency dedup, the stray-zero overwrite and its own
// finalization, because each has a different physical notion of "last
// emitted element".
type sink interface {
	// Push appends a code, applying the dedup and overwrite rules.
	Push(c Code)
	// Last reports the most recently emitted code, if any.
	Last() (Code, bool)
	// Finish applies the trailing cleanup rule once input is exhausted.
	Finish()
}

// scanner is the context-sensitive state machine that turns raw bytes
// into codes. It is the single implementation of the algorithm; the
// three encode variants only differ in the sink they attach.
type scanner struct {
	out sink
	// cont is set while the next byte is expected to be the
	// continuation of a recognized German two-byte sequence.
	cont bool
	// pending is set while the previous letter's class depends on the
	// current one (C, D/T, P).
	pending bool
	// win holds the alphabet indexes of the two most recent letters,
	// idxBreak before any letter was seen.
	win [2]byte
}

func newScanner(out sink) *scanner {
	return &scanner{out: out, win: [2]byte{idxBreak, idxBreak}}
}

// scan feeds every input byte through the state machine and finalizes
// the sink. Scanning never fails: unknown bytes degrade to word breaks.
func (s *scanner) scan(input []byte) {
	for _, b := range input {
		s.step(b)
	}
	s.out.Finish()
}

// step handles one raw byte.
func (s *scanner) step(b byte) {
	if s.cont {
		s.cont = false
		switch b {
		case germanAE:
			b = 'A'
		case germanOE:
			b = 'O'
		case germanUE:
			b = 'U'
		case germanSZ:
			b = 'Z'
		default:
			// Unrecognized continuation, consumed without a letter.
			return
		}
	} else if b > 0x7F {
		// Only the shared lead byte of ä/ö/ü/ß arms the continuation
		// flag; all other non-ASCII bytes are dropped.
		s.cont = b == germanLeadByte
		return
	}

	idx := foldIndex(b)

	if s.pending {
		s.pending = false
		s.resolve(idx)
	}

	switch cls := classTable[idx]; cls {
	case uncertainX:
		// X resolves against the previous letter right away.
		switch s.win[1] {
		case idxC, idxK, idxQ:
			s.out.Push(Class8)
		default:
			s.out.Push(Class4)
			s.out.Push(Class8)
		}
	case silentH:
	case breakClass:
		s.out.Push(Space)
	case uncertainC, uncertainDT, uncertainP:
		s.pending = true
	default:
		s.out.Push(codeFromNibble(cls))
	}

	s.win[0], s.win[1] = s.win[1], idx
}

// resolve emits the class of the deferred letter in win[1], using the
// letter before it (win[0]) and the current letter. The cases are tried
// in priority order; an unmatched combination cannot happen for any
// classifier output and is treated as a logic defect.
func (s *scanner) resolve(cur byte) {
	before, pend := s.win[0], s.win[1]
	switch {
	case pend == idxP && cur == idxH:
		s.out.Push(Class3)
	case pend == idxP:
		s.out.Push(Class1)
	case (pend == idxD || pend == idxT) && (cur == idxC || cur == idxS || cur == idxZ):
		s.out.Push(Class8)
	case pend == idxD || pend == idxT:
		s.out.Push(Class2)
	case pend == idxC && before == idxBreak && isHardAfterInitialC(cur):
		s.out.Push(Class4)
	case pend == idxC && (before == idxS || before == idxZ):
		s.out.Push(Class8)
	case pend == idxC && isHardAfterC(cur):
		s.out.Push(Class4)
	case pend == idxC:
		s.out.Push(Class8)
	default:
		panic(fmt.Sprintf("cologne: pending letter %d cannot be resolved (before %d, current %d)", pend, before, cur))
	}
}

// isHardAfterInitialC reports whether a word-initial C followed by this
// letter is pronounced hard (class 4).
func isHardAfterInitialC(idx byte) bool {
	switch idx {
	case idxA, idxH, idxK, idxL, idxO, idxQ, idxR, idxU, idxX:
		return true
	}
	return false
}

// isHardAfterC reports whether a non-initial C followed by this letter
// is pronounced hard (class 4). Unlike the word-initial set this one
// excludes L and R.
func isHardAfterC(idx byte) bool {
	switch idx {
	case idxA, idxH, idxK, idxO, idxQ, idxU, idxX:
		return true
	}
	return false
}

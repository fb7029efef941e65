package cologne

import "strings"

// EncodeString converts raw text bytes straight into the printable
// rendering: '0'..'8' per sound class and ' ' per word break.
func EncodeString(input []byte) string {
	s := &stringSink{}
	newScanner(s).scan(input)
	return s.b.String()
}

// stringSink implements the sink rules while writing printable
// characters. A committed character can no longer change, but the
// stray-zero rule may still overwrite the most recent logical element,
// so up to two codes stay buffered until a third one pushes the oldest
// out.
type stringSink struct {
	b    strings.Builder
	pair [2]Code
	have int
}

func (s *stringSink) Push(c Code) {
	if last, ok := s.Last(); ok && last == c {
		return
	}
	switch {
	case s.have == 2 && s.pair[1] == Class0 && s.pair[0] != Space:
		s.pair[1] = c
	case s.have == 2:
		s.b.WriteByte(s.pair[0].Char())
		s.pair[0], s.pair[1] = s.pair[1], c
	case s.have == 1:
		s.pair[1] = c
		s.have = 2
	default:
		s.pair[0] = c
		s.have = 1
	}
}

func (s *stringSink) Last() (Code, bool) {
	if s.have == 0 {
		return 0, false
	}
	return s.pair[s.have-1], true
}

// Finish flushes the buffered tail, applying the trailing cleanup rule
// to the 0-2 codes that are still pending: a final Class0 or Space is
// dropped unless the tail is exactly Space followed by Class0.
func (s *stringSink) Finish() {
	switch s.have {
	case 2:
		if s.pair[0] == Space && s.pair[1] == Class0 {
			s.b.WriteByte(s.pair[0].Char())
			s.b.WriteByte(s.pair[1].Char())
			return
		}
		s.b.WriteByte(s.pair[0].Char())
		if s.pair[1] != Class0 && s.pair[1] != Space {
			s.b.WriteByte(s.pair[1].Char())
		}
	case 1:
		if s.pair[0] != Class0 && s.pair[0] != Space {
			s.b.WriteByte(s.pair[0].Char())
		}
	}
}

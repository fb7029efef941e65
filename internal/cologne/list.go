package cologne

// Encode converts raw text bytes into a plain code slice. Prefer
// (*PackedVec).ReadFrom when the result is stored or compared a lot; the
// slice form is the convenient one for ad-hoc consumers.
func Encode(input []byte) []Code {
	s := &listSink{}
	newScanner(s).scan(input)
	return s.codes
}

// listSink implements the sink rules against an ordinary slice, one code
// per element.
type listSink struct {
	codes []Code
}

func (l *listSink) Push(c Code) {
	n := len(l.codes)
	if n > 0 && l.codes[n-1] == c {
		return
	}
	if n >= 2 && l.codes[n-1] == Class0 && l.codes[n-2] != Space {
		l.codes[n-1] = c
		return
	}
	l.codes = append(l.codes, c)
}

func (l *listSink) Last() (Code, bool) {
	if len(l.codes) == 0 {
		return 0, false
	}
	return l.codes[len(l.codes)-1], true
}

func (l *listSink) Finish() {
	n := len(l.codes)
	if n == 0 {
		return
	}
	last := l.codes[n-1]
	if last != Class0 && last != Space {
		return
	}
	if n >= 2 && last == Class0 && l.codes[n-2] == Space {
		return
	}
	if n == 1 {
		l.codes = nil
		return
	}
	l.codes = l.codes[:n-1]
}

package tidyjson

// scanState carries the cursor, buffers and mode flags for one Indent call.
// It is created (or taken from the pool) at the start of a call and holds
// nothing that survives the call.
type scanState struct {
	src   []byte // whitespace-stripped input
	out   []byte
	tab   string
	width int

	cursor int
	depth  int

	inString   bool
	escapeNext bool

	inCodeArray    bool
	codeArrayCount int
}

func (s *scanState) reset(src []byte, tab string, width int) {
	s.src = stripWhitespace(s.src[:0], src)
	s.out = s.out[:0]
	s.tab = tab
	s.width = width
	s.cursor = 0
	s.depth = 0
	s.inString = false
	s.escapeNext = false
	s.inCodeArray = false
	s.codeArrayCount = 0
}

// stripWhitespace appends every non-whitespace byte of src to dst. The
// whitespace class matches the scanner's: anything at or below ' '. String
// literal contents are not exempt; embedded whitespace is destroyed.
func stripWhitespace(dst, src []byte) []byte {
	for _, c := range src {
		if c <= ' ' {
			continue
		}
		dst = append(dst, c)
	}
	return dst
}

// run performs the single left-to-right scan, reclassifying each character
// as string content, numeric-array content, or structural, and emitting
// breaks and indentation accordingly.
func (s *scanState) run() {
	for s.cursor = 0; s.cursor < len(s.src); s.cursor++ {
		c := s.src[s.cursor]

		if s.inString {
			s.out = append(s.out, c)
			switch {
			case s.escapeNext:
				s.escapeNext = false
			case c == '\\':
				s.escapeNext = true
			case c == '"':
				s.inString = false
			}
			continue
		}

		switch c {
		case '"':
			s.inString = true
			s.out = append(s.out, c)
		case '{', '[':
			s.out = append(s.out, c)
			if s.peek() == matchingClose(c) {
				// Empty container: the closer follows on the same line.
				continue
			}
			s.depth++
			s.newline()
			if c == '[' && s.codeArrayAhead() {
				s.inCodeArray = true
				s.codeArrayCount = 0
			}
		case ',':
			s.out = append(s.out, c)
			if s.inCodeArray {
				s.codeArrayCount++
				if s.codeArrayCount >= s.width {
					s.codeArrayCount = 0
					s.newline()
				} else {
					s.out = append(s.out, s.tab...)
				}
			} else {
				s.newline()
			}
		case ':':
			s.out = append(s.out, c)
			s.out = append(s.out, s.tab...)
		case '}', ']':
			if s.prev() == matchingOpen(c) {
				s.out = append(s.out, c)
			} else {
				s.depth--
				s.newline()
				s.out = append(s.out, c)
			}
			if c == ']' {
				s.inCodeArray = false
			}
		default:
			s.out = append(s.out, c)
		}
	}
}

// newline emits a line break followed by the current indentation, one tab
// per nesting level.
func (s *scanState) newline() {
	s.out = append(s.out, '\n')
	for i := 0; i < s.depth; i++ {
		s.out = append(s.out, s.tab...)
	}
}

// peek returns the byte after the cursor, or 0 at end of input.
func (s *scanState) peek() byte {
	if s.cursor+1 >= len(s.src) {
		return 0
	}
	return s.src[s.cursor+1]
}

// prev returns the byte before the cursor, or 0 at the start of input.
func (s *scanState) prev() byte {
	if s.cursor == 0 {
		return 0
	}
	return s.src[s.cursor-1]
}

// codeArrayAhead reports whether the array opened at the cursor is a pure
// numeric array: no string, object or nested array anywhere before its
// matching close. Any of those openers before the first ']' disqualifies
// the array, which also means a qualifying array's matching close is the
// first ']' encountered.
func (s *scanState) codeArrayAhead() bool {
	for j := s.cursor + 1; j < len(s.src); j++ {
		switch s.src[j] {
		case ']':
			return true
		case '"', '[', '{':
			return false
		}
	}
	return false
}

func matchingClose(open byte) byte {
	if open == '{' {
		return '}'
	}
	return ']'
}

func matchingOpen(close byte) byte {
	if close == '}' {
		return '{'
	}
	return '['
}

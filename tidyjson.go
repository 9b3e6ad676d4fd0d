package tidyjson

import "io"

// Options controls the indentation behavior.
type Options struct {
	// Tab is the indentation token repeated once per nesting level. It is
	// also used as the inline spacing after ':' and between wrapped
	// numeric-array elements. A nil Options defaults it to one space; an
	// empty Tab means zero-width indentation.
	Tab string
	// CodesLineLength is the number of elements placed per line inside a
	// pure-numeric array before a forced line break. Default 1 (every
	// element on its own line). Values below 1 behave like 1.
	CodesLineLength int
}

// DefaultOptions holds the fallback indentation configuration.
var DefaultOptions = &Options{Tab: " ", CodesLineLength: 1}

// sanitized resolves a nil Options to the defaults and clamps the wrap
// width. An explicitly empty Tab is honored as zero-width indentation; the
// one-space default applies only when no Options are supplied at all.
func (o *Options) sanitized() (tab string, width int) {
	if o == nil {
		o = DefaultOptions
	}
	width = o.CodesLineLength
	if width < 1 {
		width = 1
	}
	return o.Tab, width
}

// Indent re-serializes src with newlines and indentation. It performs no
// validation: src is assumed to be syntactically valid JSON, and the output
// for anything else is unspecified. All whitespace in src is stripped before
// scanning, including whitespace inside string literals.
func Indent(src []byte, opts *Options) []byte {
	tab, width := opts.sanitized()

	s := acquireScanState()
	defer releaseScanState(s)
	s.reset(src, tab, width)
	s.run()

	out := make([]byte, len(s.out))
	copy(out, s.out)
	return out
}

// IndentTo writes the indented form of src, followed by a newline, to w.
func IndentTo(w io.Writer, src []byte, opts *Options) error {
	tab, width := opts.sanitized()

	s := acquireScanState()
	defer releaseScanState(s)
	s.reset(src, tab, width)
	s.run()
	s.out = append(s.out, '\n')

	_, err := w.Write(s.out)
	return err
}

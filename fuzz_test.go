package tidyjson

import (
	"bytes"
	"testing"
)

const fuzzMaxInput = 1 << 20

func FuzzIndent(f *testing.F) {
	seeds := [][]byte{
		[]byte("null"),
		[]byte("123"),
		[]byte(`"hello"`),
		[]byte(`[1,2,3]`),
		[]byte(`{"a":1,"b":[true,false],"c":null}`),
		[]byte(`  {"a":1}  `),
		[]byte(`[0,1,2,3,4,5,6,7,8,9,10,11]`),
		[]byte(`{"a":"x\"y:z,w"}`),
		[]byte(`{"a":{},"b":[]}`),
		[]byte(`{"broken":`),
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	opts := &Options{Tab: " ", CodesLineLength: 3}

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > fuzzMaxInput {
			return
		}

		out := Indent(data, opts)

		// The scanner only ever inserts whitespace: stripped output must
		// equal stripped input byte for byte, valid JSON or not.
		if !bytes.Equal(stripWhitespace(nil, out), stripWhitespace(nil, data)) {
			t.Fatalf("non-whitespace bytes altered\ninput: %q\noutput: %q", data, out)
		}

		// Whitespace-only tabs make formatting idempotent for any input,
		// since every decision depends only on the stripped text.
		again := Indent(out, opts)
		if !bytes.Equal(out, again) {
			t.Fatalf("not idempotent\nonce: %q\ntwice: %q", out, again)
		}
	})
}

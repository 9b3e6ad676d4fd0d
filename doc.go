// Package tidyjson re-serializes compact JSON text into an indented,
// human-readable form without parsing it into an object model.
//
// The formatter is a single-pass character scanner: it strips every
// whitespace character from the input (including whitespace inside string
// literals), then walks the remaining text once, emitting line breaks and
// indentation at structural characters. Arrays whose contents are purely
// numeric can be column-wrapped so a configurable number of elements share
// each line. The input is assumed to be syntactically valid JSON; the
// formatter never fails, but its output for malformed input is unspecified.
//
// Basic usage:
//
//	out := tidyjson.Indent([]byte(`{"a":1,"b":[1,2]}`), nil)
//	fmt.Print(string(out))
//
// Custom indentation and numeric-array wrapping:
//
//	opts := &tidyjson.Options{Tab: "\t", CodesLineLength: 4}
//	out := tidyjson.Indent([]byte(`[0,1,2,3,4,5,6,7]`), opts)
//
// Asynchronous use through the background worker, which validates raw
// parameters before formatting:
//
//	resp := <-tidyjson.Submit(tidyjson.Request{JSON: `{"a":1}`})
//	if resp.Err != nil {
//		log.Fatal(resp.Err)
//	}
//	fmt.Print(resp.Text)
package tidyjson

// Package seqkit holds helpers that work with any sequence.Sequence implementation.
package seqkit

import (
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"go.llib.dev/strseq/port/sequence"
)

// Format renders the sequence as a bracketed, comma separated listing.
//
//	[STRING2,STRING1,STRING4]
func Format(seq sequence.Sequence) string {
	var b strings.Builder
	b.WriteString("[")
	var i int
	for v := range seq.Values() {
		if 0 < i {
			b.WriteString(",")
		}
		b.WriteString(v)
		i++
	}
	b.WriteString("]")
	return b.String()
}

// Fprint writes the Format of the sequence and a line break to w.
func Fprint(w io.Writer, seq sequence.Sequence) error {
	_, err := fmt.Fprintln(w, Format(seq))
	return err
}

// Print writes the sequence to the standard output.
func Print(seq sequence.Sequence) error {
	return Fprint(os.Stdout, seq)
}

// Collect returns the values of the sequence in order.
func Collect(seq sequence.Sequence) []string {
	if sc, ok := seq.(sequence.SliceConvertable); ok {
		return sc.ToSlice()
	}
	vs := make([]string, 0, seq.Len())
	for v := range seq.Values() {
		vs = append(vs, v)
	}
	return vs
}

// IndexOf returns the position of the first value that equals to v.
func IndexOf(seq sequence.Sequence, v string) (int, bool) {
	var i int
	for got := range seq.Values() {
		if got == v {
			return i, true
		}
		i++
	}
	return -1, false
}

// Equal reports whether the two sequences hold the same values in the same order.
func Equal(a, b sequence.Sequence) bool {
	if a.Len() != b.Len() {
		return false
	}
	next, stop := iter.Pull(b.Values())
	defer stop()
	for av := range a.Values() {
		bv, ok := next()
		if !ok || av != bv {
			return false
		}
	}
	_, more := next()
	return !more
}

package verex

import (
	"github.com/dlclark/regexp2"
)

// Flags is the set of modifiers applied when a pattern is compiled.
// Flags are not part of the pattern text returned by String.
type Flags uint8

const (
	// IgnoreCase makes letters match regardless of case (i).
	IgnoreCase Flags = 1 << iota

	// Multiline lets ^ and $ match at line boundaries (m), so a match can be
	// found on one line of multi-line input.
	Multiline

	// DotAll lets . match \n (s).
	DotAll
)

// flagLetters lists flags in the order they are rendered.
var flagLetters = [...]struct {
	flag   Flags
	letter byte
}{
	{IgnoreCase, 'i'},
	{Multiline, 'm'},
	{DotAll, 's'},
}

// Has reports whether every flag in f2 is set in f.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

// String returns the inline flag letters, e.g. "im". Empty when no flag is set.
func (f Flags) String() string {
	var buf [len(flagLetters)]byte
	n := 0
	for _, fl := range flagLetters {
		if f.Has(fl.flag) {
			buf[n] = fl.letter
			n++
		}
	}
	return string(buf[:n])
}

// regexp2Options translates f into regexp2 options.
func (f Flags) regexp2Options() regexp2.RegexOptions {
	opts := regexp2.None
	if f.Has(IgnoreCase) {
		opts |= regexp2.IgnoreCase
	}
	if f.Has(Multiline) {
		opts |= regexp2.Multiline
	}
	if f.Has(DotAll) {
		opts |= regexp2.Singleline
	}
	return opts
}

func (f *Flags) set(flag Flags, on bool) {
	if on {
		*f |= flag
	} else {
		*f &^= flag
	}
}

// Flags returns the modifiers currently set on e.
func (e *Expression) Flags() Flags {
	return e.flags
}

// WithAnyCase toggles case-insensitive matching. It defaults to enabling it.
func (e *Expression) WithAnyCase(enable ...bool) *Expression {
	e.flags.set(IgnoreCase, enabled(enable))
	return e
}

// SearchOneLine toggles Multiline.
func (e *Expression) SearchOneLine(enable bool) *Expression {
	e.flags.set(Multiline, enable)
	return e
}

// DotMatchesNewline toggles DotAll. It defaults to enabling it.
func (e *Expression) DotMatchesNewline(enable ...bool) *Expression {
	e.flags.set(DotAll, enabled(enable))
	return e
}

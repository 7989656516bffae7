package verex

import (
	"strings"
)

const (
	startAnchor = "^"
	endAnchor   = "$"
)

// StartOfLine anchors the expression to the start of input by inserting ^ at
// the front of the current body. StartOfLine(false) removes leading anchors,
// including those hoisted into the leftmost branch by Or.
func (e *Expression) StartOfLine(enable ...bool) *Expression {
	if enabled(enable) {
		e.source = append([]string{startAnchor}, e.source...)
		return e
	}
	for len(e.source) > 0 && e.source[0] == startAnchor {
		e.source = e.source[1:]
	}
	// prefix is "(?:" followed by the leftmost branch.
	for len(e.prefix) > 1 && e.prefix[1] == startAnchor {
		e.prefix = append(e.prefix[:1], e.prefix[2:]...)
	}
	return e
}

// EndOfLine appends the $ anchor. EndOfLine(false) removes trailing anchors.
func (e *Expression) EndOfLine(enable ...bool) *Expression {
	if enabled(enable) {
		e.push(endAnchor)
		return e
	}
	for n := len(e.source); n > 0 && e.source[n-1] == endAnchor; n-- {
		e.source = e.source[:n-1]
	}
	return e
}

// LineBreak matches \n or \r\n.
func (e *Expression) LineBreak() *Expression {
	e.push(`(?:\r?\n)`)
	return e
}

// Tab matches a single tab character.
func (e *Expression) Tab() *Expression {
	e.push(`\t`)
	return e
}

// Word matches one or more word characters.
func (e *Expression) Word() *Expression {
	e.push(`\w+`)
	return e
}

// Digit matches a single decimal digit.
func (e *Expression) Digit() *Expression {
	e.push(`\d`)
	return e
}

// Whitespace matches a single whitespace character.
func (e *Expression) Whitespace() *Expression {
	e.push(`\s`)
	return e
}

// Find matches value literally, exactly once.
func (e *Expression) Find(value string) *Expression {
	e.push("(?:" + quoteMeta(value) + ")")
	return e
}

// Then is Find, for chains that read better with it.
func (e *Expression) Then(value string) *Expression {
	return e.Find(value)
}

// Maybe matches value literally, zero or one time.
func (e *Expression) Maybe(value string) *Expression {
	e.push("(?:" + quoteMeta(value) + ")?")
	return e
}

// Multiple matches value literally, one or more times.
func (e *Expression) Multiple(value string) *Expression {
	e.push("(?:" + quoteMeta(value) + ")+")
	return e
}

// Anything matches zero or more characters of any kind.
func (e *Expression) Anything() *Expression {
	e.push(`(?:.*)`)
	return e
}

// Something matches one or more characters of any kind.
func (e *Expression) Something() *Expression {
	e.push(`(?:.+)`)
	return e
}

// AnythingBut matches zero or more characters, none of which appear in set.
// Each character of set is excluded individually:
//
//	verex.New().AnythingBut("xy").String() // `(?:[^xy]*)`
func (e *Expression) AnythingBut(set string) *Expression {
	if !e.checkSet("AnythingBut", set) {
		return e
	}
	e.push("(?:[^" + quoteClass(set) + "]*)")
	return e
}

// SomethingBut is AnythingBut requiring at least one character.
func (e *Expression) SomethingBut(set string) *Expression {
	if !e.checkSet("SomethingBut", set) {
		return e
	}
	e.push("(?:[^" + quoteClass(set) + "]+)")
	return e
}

// Any matches exactly one character that appears in set.
func (e *Expression) Any(set string) *Expression {
	if !e.checkSet("Any", set) {
		return e
	}
	e.push("[" + quoteClass(set) + "]")
	return e
}

// Range matches one character inside any of the given ranges. Bounds are read
// as consecutive (lower, upper) pairs:
//
//	verex.New().Range('a', 'z', '0', '9').String() // "[a-z0-9]"
//
// An empty, unpaired or inverted bound list records an *ArgumentError and
// leaves the pattern unchanged.
func (e *Expression) Range(bounds ...rune) *Expression {
	switch {
	case len(bounds) == 0:
		e.fail(&ArgumentError{Verb: "Range", Err: ErrEmptyClass})
		return e
	case len(bounds)%2 != 0:
		e.fail(&ArgumentError{Verb: "Range", Value: string(bounds), Err: ErrOddRange})
		return e
	}

	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < len(bounds); i += 2 {
		lo, hi := bounds[i], bounds[i+1]
		if lo > hi {
			e.fail(&ArgumentError{Verb: "Range", Value: string([]rune{lo, hi}), Err: ErrInvertedRange})
			return e
		}
		sb.WriteString(quoteClass(string(lo)))
		sb.WriteByte('-')
		sb.WriteString(quoteClass(string(hi)))
	}
	sb.WriteByte(']')
	e.push(sb.String())
	return e
}

// BeginCapture opens a capturing group; close it with EndCapture.
func (e *Expression) BeginCapture() *Expression {
	e.push("(")
	return e
}

// EndCapture closes the group opened by BeginCapture.
func (e *Expression) EndCapture() *Expression {
	e.push(")")
	return e
}

// Or turns everything built so far into the left side of an alternation.
// Subsequent verbs build the right side. If value is given it is appended as
// with Find.
//
// Example:
//
//	verex.New().Find("G").Or().Find("h").String() // "(?:(?:G)|(?:h))"
//
// Repeated calls nest to the right: a|b|c renders as (?:a|(?:b|c)).
func (e *Expression) Or(value ...string) *Expression {
	e.prefix = append(e.prefix, "(?:")
	e.prefix = append(e.prefix, e.source...)
	e.prefix = append(e.prefix, "|")
	e.suffix = append([]string{")"}, e.suffix...)
	e.source = nil
	for _, v := range value {
		e.Find(v)
	}
	return e
}

// checkSet records an error for an empty character set, which would render
// as an invalid [] class.
func (e *Expression) checkSet(verb, set string) bool {
	if set == "" {
		e.fail(&ArgumentError{Verb: verb, Err: ErrEmptyClass})
		return false
	}
	return true
}

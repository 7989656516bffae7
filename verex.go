// Package verex provides a fluent builder for regular expressions.
//
// Patterns are described with readable verbs instead of regex syntax and then
// rendered into a pattern string plus a set of modifier flags. The builder
// never matches text itself: the rendered pattern is handed to a matcher,
// by default the coregex engine.
//
// Basic usage:
//
//	expr := verex.New().
//	    StartOfLine().
//	    Then("http").
//	    Maybe("s").
//	    Then("://").
//	    Maybe("www.").
//	    AnythingBut(" ").
//	    EndOfLine()
//
//	re, err := expr.Regex()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.MatchString("https://www.example.com") // true
//
// Literal arguments are escaped when a verb is called; Add is the only verb
// that inserts raw pattern text:
//
//	verex.New().Add("^", "[0-9]", "$").String() // "^[0-9]$"
//
// Every verb mutates the receiver and returns it so calls can be chained. An
// Expression must not be mutated from multiple goroutines concurrently; use
// Clone to branch a partially built expression.
//
// Caller contract violations (an unsupported Add argument, an unpaired Range)
// do not interrupt the chain. The first one is recorded and returned by Err,
// Validate and every compile accessor.
package verex

import (
	"fmt"
	"strings"
)

// Expression accumulates pattern fragments and modifier flags.
//
// The rendered text is prefix + source + suffix. Verbs append to source;
// prefix and suffix only change when Or hoists the pattern built so far into
// an alternation group.
type Expression struct {
	prefix []string
	source []string
	suffix []string
	flags  Flags
	err    error
}

// New returns an empty expression with no flags set.
func New() *Expression {
	return &Expression{}
}

// Add appends raw pattern fragments without escaping.
//
// Accepted values are string, []string, rune and fmt.Stringer (including
// another *Expression, whose text is embedded without its flags). A nil
// *Expression or any other value records an *ArgumentError wrapping
// ErrInvalidArgument.
//
// Example:
//
//	digits := verex.New().Add(`\d+`)
//	verex.New().StartOfLine().Add(digits).EndOfLine().String() // `^\d+$`
func (e *Expression) Add(values ...any) *Expression {
	for _, v := range values {
		switch v := v.(type) {
		case string:
			e.push(v)
		case []string:
			e.push(v...)
		case rune:
			e.push(string(v))
		case *Expression:
			if v == nil {
				e.fail(&ArgumentError{Verb: "Add", Value: v, Err: ErrInvalidArgument})
				continue
			}
			e.push(v.String())
		case fmt.Stringer:
			e.push(v.String())
		default:
			e.fail(&ArgumentError{Verb: "Add", Value: v, Err: ErrInvalidArgument})
		}
	}
	return e
}

// String returns the concatenated pattern text without flags.
func (e *Expression) String() string {
	var sb strings.Builder
	for _, seg := range [...][]string{e.prefix, e.source, e.suffix} {
		for _, frag := range seg {
			sb.WriteString(frag)
		}
	}
	return sb.String()
}

// Clone returns a deep copy of e, including its flags and recorded error.
func (e *Expression) Clone() *Expression {
	return &Expression{
		prefix: append([]string(nil), e.prefix...),
		source: append([]string(nil), e.source...),
		suffix: append([]string(nil), e.suffix...),
		flags:  e.flags,
		err:    e.err,
	}
}

// Err returns the first caller contract violation recorded by a verb, or nil.
func (e *Expression) Err() error {
	return e.err
}

func (e *Expression) push(frags ...string) {
	e.source = append(e.source, frags...)
}

// fail records err unless an earlier error is already held.
func (e *Expression) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

// enabled resolves an optional boolean argument that defaults to true.
func enabled(enable []bool) bool {
	return len(enable) == 0 || enable[0]
}

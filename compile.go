package verex

import (
	"errors"

	"github.com/coregx/coregex"
	"github.com/coregx/coregex/meta"
	"github.com/dlclark/regexp2"
)

// Pattern returns the pattern text qualified with an inline flag group, in
// the syntax accepted by Go's regexp and coregex:
//
//	verex.New().Find("THOR").WithAnyCase().Pattern() // "(?i)(?:THOR)"
//
// Pattern does not mutate e; consecutive calls return identical text.
func (e *Expression) Pattern() string {
	text := e.String()
	if f := e.flags.String(); f != "" {
		return "(?" + f + ")" + text
	}
	return text
}

// Regex compiles the flag-qualified pattern with coregex.
//
// Example:
//
//	re, err := verex.New().StartOfLine().Find("Wally").EndOfLine().Regex()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.MatchString("Wally") // true
func (e *Expression) Regex() (*coregex.Regex, error) {
	return e.RegexWithConfig(coregex.DefaultConfig())
}

// RegexWithConfig is Regex with a custom engine configuration.
//
// When Multiline is set the DFA and prefilter are disabled regardless of
// config: their (?m) handling misses line-anchored matches.
//
// Example:
//
//	config := coregex.DefaultConfig()
//	config.EnableDFA = false
//	re, err := expr.RegexWithConfig(config)
func (e *Expression) RegexWithConfig(config meta.Config) (*coregex.Regex, error) {
	if e.err != nil {
		return nil, e.err
	}
	if e.flags.Has(Multiline) {
		config = multilineConfig(config)
	}
	pattern := e.Pattern()
	re, err := coregex.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	return re, nil
}

// MustRegex is like Regex but panics if the expression cannot be compiled.
func (e *Expression) MustRegex() *coregex.Regex {
	re, err := e.Regex()
	if err != nil {
		var compErr *CompileError
		if errors.As(err, &compErr) {
			err = compErr.Err
		}
		panic("regexp: Compile(`" + e.Pattern() + "`): " + err.Error())
	}
	return re
}

// multilineConfig restricts config to the NFA path.
func multilineConfig(config meta.Config) meta.Config {
	config.EnableDFA = false
	config.EnablePrefilter = false
	return config
}

// Regexp2 compiles the expression with regexp2. Flags are passed as
// regexp2.RegexOptions rather than as an inline group.
func (e *Expression) Regexp2() (*regexp2.Regexp, error) {
	if e.err != nil {
		return nil, e.err
	}
	text := e.String()
	re, err := regexp2.Compile(text, e.flags.regexp2Options())
	if err != nil {
		return nil, &CompileError{Pattern: text, Err: err}
	}
	return re, nil
}

// Validate reports whether the expression can be compiled: it returns the
// first recorded argument error, or a *CompileError if the rendered pattern
// is rejected by the engine.
func (e *Expression) Validate() error {
	_, err := e.Regex()
	return err
}

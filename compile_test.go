package verex

import (
	"errors"
	"strings"
	"testing"

	"github.com/coregx/coregex"
	"github.com/coregx/coregex/meta"
)

func TestRegexString(t *testing.T) {
	e := New().StartOfLine().Find("THOR").EndOfLine().WithAnyCase()
	re := e.MustRegex()
	if got, want := re.String(), `(?i)^(?:THOR)$`; got != want {
		t.Errorf("Regex().String() = %q, want %q", got, want)
	}
}

func TestRegexWithConfig(t *testing.T) {
	config := coregex.DefaultConfig()
	config.EnableDFA = false
	config.EnablePrefilter = false

	e := New().StartOfLine().Word().Then("@").Word().Then(".").Word().EndOfLine()
	re, err := e.RegexWithConfig(config)
	if err != nil {
		t.Fatalf("RegexWithConfig() error: %v", err)
	}
	if !re.MatchString("mail@mail.com") {
		t.Errorf("%q did not match %q", e.Pattern(), "mail@mail.com")
	}
	if re.MatchString("mail.com") {
		t.Errorf("%q matched %q", e.Pattern(), "mail.com")
	}
}

func TestRegexWithConfigMultiline(t *testing.T) {
	e := New().StartOfLine().Anything().Find("Pong").Anything().EndOfLine().SearchOneLine(true)
	input := "Ping \n Pong \n Ping"

	configs := map[string]func() meta.Config{
		"default": coregex.DefaultConfig,
		"custom": func() meta.Config {
			config := coregex.DefaultConfig()
			config.MaxDFAStates = 100
			return config
		},
	}

	for name, config := range configs {
		t.Run(name, func(t *testing.T) {
			re, err := e.RegexWithConfig(config())
			if err != nil {
				t.Fatalf("RegexWithConfig() error: %v", err)
			}
			if !re.MatchString(input) {
				t.Errorf("%q did not match %q", e.Pattern(), input)
			}
		})
	}
}

func TestCompileError(t *testing.T) {
	patterns := []string{"(", "[", "a{2,1}"}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			e := New().Add(pattern)

			if e.Err() != nil {
				t.Fatalf("Err() = %v, raw fragments must not be validated by Add", e.Err())
			}

			err := e.Validate()
			var compErr *CompileError
			if !errors.As(err, &compErr) {
				t.Fatalf("Validate() = %v, want *CompileError", err)
			}
			if compErr.Pattern != pattern {
				t.Errorf("CompileError.Pattern = %q, want %q", compErr.Pattern, pattern)
			}
			if compErr.Unwrap() == nil {
				t.Error("CompileError.Unwrap() = nil, want engine error")
			}
			if errors.Is(err, ErrInvalidArgument) {
				t.Error("compile failure reported as an invalid argument")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	exprs := []*Expression{
		New(),
		New().Or(),
		New().StartOfLine().StartOfLine().EndOfLine(),
		New().Find(`\.+*?()|[]{}^$/`),
		New().AnythingBut(`\]^-[`),
		New().Range('[', ']', '^', '^'),
		New().BeginCapture().Find("x").EndCapture().Or("y").WithAnyCase().SearchOneLine(true),
	}

	for _, e := range exprs {
		t.Run(e.Pattern(), func(t *testing.T) {
			if err := e.Validate(); err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestMustRegexPanicFormat(t *testing.T) {
	var msg string
	func() {
		defer func() {
			if r := recover(); r != nil {
				msg, _ = r.(string)
			}
		}()
		New().Add("[").MustRegex()
	}()

	wantPrefix := "regexp: Compile(`[`): "
	if !strings.HasPrefix(msg, wantPrefix) {
		t.Errorf("MustRegex panic = %q, want prefix %q", msg, wantPrefix)
	}
	if strings.Contains(msg, "verex: compiling") {
		t.Errorf("MustRegex panic = %q, want the engine error unwrapped", msg)
	}
}

func TestRegexp2(t *testing.T) {
	tests := []struct {
		name  string
		expr  *Expression
		input string
		want  bool
	}{
		{"find", New().StartOfLine().Find("Wally").EndOfLine(), "Wally", true},
		{"find rejects", New().StartOfLine().Find("Wally").EndOfLine(), "Wall-e", false},
		{"any case", New().StartOfLine().Find("THOR").EndOfLine().WithAnyCase(), "thor", true},
		{"case sensitive", New().StartOfLine().Find("THOR").EndOfLine(), "thor", false},
		{"or", New().StartOfLine().Anything().Find("G").Or().Find("h").EndOfLine(), "Github", true},
		{
			"search one line",
			New().StartOfLine().Anything().Find("Pong").Anything().EndOfLine().SearchOneLine(true),
			"Ping \n Pong \n Ping",
			true,
		},
		{
			"dot matches newline",
			New().StartOfLine().Find("Marco").Anything().Find("Polo").EndOfLine().DotMatchesNewline(),
			"Marco \n Polo",
			true,
		},
		{"range", New().StartOfLine().Range('a', 'b', 'X', 'Z').EndOfLine(), "Y", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := tt.expr.Regexp2()
			if err != nil {
				t.Fatalf("Regexp2() error: %v", err)
			}
			got, err := re.MatchString(tt.input)
			if err != nil {
				t.Fatalf("MatchString(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("%q MatchString(%q) = %v, want %v", tt.expr.String(), tt.input, got, tt.want)
			}
		})
	}
}

func TestRegexp2Capture(t *testing.T) {
	e := New().StartOfLine().BeginCapture().Word().EndCapture().Then("@").Word().EndOfLine()
	re, err := e.Regexp2()
	if err != nil {
		t.Fatalf("Regexp2() error: %v", err)
	}

	m, err := re.FindStringMatch("user@host")
	if err != nil || m == nil {
		t.Fatalf("FindStringMatch() = %v, %v; want a match", m, err)
	}
	if got := m.GroupByNumber(1).String(); got != "user" {
		t.Errorf("group 1 = %q, want %q", got, "user")
	}
}

func TestRegexp2CompileError(t *testing.T) {
	_, err := New().Add("(").Regexp2()
	var compErr *CompileError
	if !errors.As(err, &compErr) {
		t.Fatalf("Regexp2() error = %v, want *CompileError", err)
	}
}

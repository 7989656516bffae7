package verex

// Metacharacters escaped in literal context, including the / delimiter.
const literalSpecial = `\.+*?()|[]{}^$/`

// Inside a bracketed class the hyphen also needs escaping.
const classSpecial = literalSpecial + `-`

// quoteMeta returns s with every literal-context metacharacter escaped.
//
// Example:
//
//	quoteMeta("Python2.") // `Python2\.`
func quoteMeta(s string) string {
	return quote(s, literalSpecial)
}

// quoteClass returns s escaped for use as the members of a [...] class.
func quoteClass(s string) string {
	return quote(s, classSpecial)
}

func quote(s, special string) string {
	// Count how many characters need escaping
	n := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			n++
		}
	}

	if n == 0 {
		return s
	}

	buf := make([]byte, len(s)+n)
	j := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			buf[j] = '\\'
			j++
		}
		buf[j] = s[i]
		j++
	}
	return string(buf)
}

// isSpecial returns true if c is in the special characters string.
// All metacharacters are ASCII, so multi-byte UTF-8 sequences pass through.
func isSpecial(c byte, special string) bool {
	for i := 0; i < len(special); i++ {
		if c == special[i] {
			return true
		}
	}
	return false
}

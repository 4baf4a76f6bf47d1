package domain

import "unicode/utf8"

// lexState tracks lexical context that survives line boundaries while a test
// block is being consumed. Block comments nest in Rust, so a plain bool is
// not enough; string and raw-string literals may span multiple lines.
type lexState struct {
	blockComment int // nesting depth of /* */ comments
	inString     bool
	inRawString  bool
	rawHashes    int // number of '#' delimiters of the open raw string
}

// countBraces scans one line, updating depth for every '{' and '}' that sits
// in ordinary code. Braces inside comments, string/char literals and raw
// strings are skipped. It returns true the moment depth is decremented to
// exactly zero, signalling the closing brace of the block.
func countBraces(line string, st *lexState, depth *int) bool {
	i := 0

	for i < len(line) {
		switch {
		case st.blockComment > 0:
			i = advanceBlockComment(line, i, st)
		case st.inRawString:
			i = advanceRawString(line, i, st)
		case st.inString:
			i = advanceString(line, i, st)
		default:
			next, closed := advanceCode(line, i, st, depth)
			if closed {
				return true
			}

			if next < 0 {
				return false // rest of line is a // comment
			}

			i = next
		}
	}

	return false
}

func advanceBlockComment(line string, i int, st *lexState) int {
	if i+1 < len(line) {
		if line[i] == '/' && line[i+1] == '*' {
			st.blockComment++
			return i + 2
		}

		if line[i] == '*' && line[i+1] == '/' {
			st.blockComment--
			return i + 2
		}
	}

	return i + 1
}

func advanceRawString(line string, i int, st *lexState) int {
	if line[i] == '"' && hasHashes(line[i+1:], st.rawHashes) {
		st.inRawString = false
		return i + 1 + st.rawHashes
	}

	return i + 1
}

func advanceString(line string, i int, st *lexState) int {
	if line[i] == '\\' {
		return i + 2
	}

	if line[i] == '"' {
		st.inString = false
	}

	return i + 1
}

// advanceCode handles one token starting at i in ordinary code. It returns
// the next scan position, or -1 when the remainder of the line is a line
// comment. closed reports that depth just reached zero on a '}'.
func advanceCode(line string, i int, st *lexState, depth *int) (next int, closed bool) {
	c := line[i]

	switch {
	case c == '/':
		if i+1 < len(line) {
			if line[i+1] == '/' {
				return -1, false
			}

			if line[i+1] == '*' {
				st.blockComment = 1
				return i + 2, false
			}
		}

		return i + 1, false
	case c == '"':
		st.inString = true
		return i + 1, false
	case c == '\'':
		if n, ok := charLiteralLen(line[i:]); ok {
			return i + n, false
		}

		return i + 1, false // lifetime marker
	case c == '{':
		*depth++
		return i + 1, false
	case c == '}':
		*depth--
		if *depth == 0 {
			return i + 1, true
		}

		return i + 1, false
	case isIdentByte(c):
		return advanceIdentOrLiteralPrefix(line, i, st), false
	default:
		return i + 1, false
	}
}

// advanceIdentOrLiteralPrefix consumes an identifier run, first checking for
// the string-literal prefixes r"", r#""#, b"", br"" and byte chars. Consuming whole
// identifiers keeps a trailing 'r' in words like "for" from being mistaken
// for a raw-string opener.
func advanceIdentOrLiteralPrefix(line string, i int, st *lexState) int {
	rest := line[i:]

	if hashes, skip, ok := rawStringStart(rest); ok {
		st.inRawString = true
		st.rawHashes = hashes

		return i + skip
	}

	if rest[0] == 'b' && len(rest) > 1 {
		if rest[1] == '"' {
			st.inString = true
			return i + 2
		}

		if rest[1] == '\'' {
			if n, ok := charLiteralLen(rest[1:]); ok {
				return i + 1 + n
			}
		}
	}

	for i < len(line) && isIdentByte(line[i]) {
		i++
	}

	return i
}

// rawStringStart reports whether s opens a raw string literal (r", r#",
// br#"...) and how many bytes the opener spans.
func rawStringStart(s string) (hashes, skip int, ok bool) {
	j := 0
	if s[j] == 'b' {
		j++
	}

	if j >= len(s) || s[j] != 'r' {
		return 0, 0, false
	}

	j++

	for j < len(s) && s[j] == '#' {
		hashes++
		j++
	}

	if j >= len(s) || s[j] != '"' {
		return 0, 0, false
	}

	return hashes, j + 1, true
}

// charLiteralLen reports the byte length of a char literal starting at the
// opening quote, distinguishing 'a' and '\n' from lifetime markers like 'a.
func charLiteralLen(s string) (int, bool) {
	const maxEscapeLen = 16 // longest form: '\u{10FFFF}'

	if len(s) < 3 {
		return 0, false
	}

	if s[1] == '\\' {
		for i := 3; i < len(s) && i < maxEscapeLen; i++ {
			if s[i] == '\'' {
				return i + 1, true
			}
		}

		return 0, false
	}

	_, size := utf8.DecodeRuneInString(s[1:])

	end := 1 + size
	if end < len(s) && s[end] == '\'' {
		return end + 1, true
	}

	return 0, false
}

func hasHashes(s string, n int) bool {
	if len(s) < n {
		return false
	}

	for i := 0; i < n; i++ {
		if s[i] != '#' {
			return false
		}
	}

	return true
}

func isIdentByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

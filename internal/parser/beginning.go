package parser

import "strings"

// ExtractBeginning returns the leading keyword of a statement: it skips any
// run of whitespace, line comments, and block comments at the front of code
// and returns the first delimiter-free token that follows, with its original
// case. One token is enough to tell BEGIN, COMMIT, ROLLBACK, CREATE, INSERT,
// UPDATE, DELETE, and SELECT apart, so multi-word forms are cut after the
// first word ("BEGIN TRANSACTION" yields "BEGIN").
//
// A statement consisting only of whitespace and comments yields "".
func ExtractBeginning(code string) string {
	i := 0
skip:
	for i < len(code) {
		switch {
		case isSpace(code[i]):
			i++
		case code[i] == '-' && i+1 < len(code) && code[i+1] == '-':
			nl := strings.IndexByte(code[i:], '\n')
			if nl < 0 {
				return "" // comment runs to end of text
			}
			i += nl + 1
		case code[i] == '/' && i+1 < len(code) && code[i+1] == '*':
			end := strings.Index(code[i+2:], "*/")
			if end < 0 {
				return ""
			}
			i += end + 4
		default:
			break skip
		}
	}

	start := i
	for i < len(code) && !endsToken(code, i) {
		i++
	}
	return code[start:i]
}

// endsToken reports whether the byte at code[i] terminates the leading
// keyword token: whitespace, statement punctuation, a quote, or the start of
// a comment.
func endsToken(code string, i int) bool {
	switch ch := code[i]; {
	case isSpace(ch):
		return true
	case ch == ';' || ch == ',' || ch == '(' || ch == ')' || ch == '\'' || ch == '"':
		return true
	case ch == '-' && i+1 < len(code) && code[i+1] == '-':
		return true
	case ch == '/' && i+1 < len(code) && code[i+1] == '*':
		return true
	}
	return false
}

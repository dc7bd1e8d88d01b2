/*
 * scanner.go
 *
 * Splits a raw multi-statement SQL script into discrete statements.
 *
 * The scanner walks the script byte by byte in a single pass, keeping a small
 * mode machine (plain code, line comment, block comment, single- or
 * double-quoted string) and a running line counter. A semicolon seen in code
 * mode (at "top level", i.e. not inside a comment or string literal) ends
 * the current statement. Semicolons inside comments or strings never split.
 *
 * Fixed policies:
 *   - Code excludes the terminating ';' and is trimmed of surrounding
 *     whitespace; comments between statements attach to the statement that
 *     follows them.
 *   - Block comments do not nest: the first closing star-slash ends the
 *     comment regardless of any opener seen inside it.
 *   - A doubled quote ('' or "") inside a string is an escaped quote and
 *     does not close it.
 *   - Parse accepts trailing statement text without a final ';' as one more
 *     statement; ParseStrict rejects it. Trailing whitespace and comments are
 *     discarded by both.
 */
package parser

import "strings"

// scanMode is the lexical state of the scanner. It exists only during a
// single Parse call and is never exposed.
type scanMode int

const (
	modeCode scanMode = iota
	modeLineComment
	modeBlockComment
	modeSingleQuoted
	modeDoubleQuoted
)

// Parse splits script into statements in source order. On a lexical error
// (unterminated block comment or string) it returns no statements and one of
// *UnterminatedCommentError, *UnterminatedStringError.
//
// Parse is pure and re-entrant: it touches no package state and may be
// called concurrently with different inputs.
func Parse(script string) ([]Statement, error) {
	return parse(script, false)
}

// ParseStrict is Parse with the trailing-statement policy inverted: text
// after the last ';' that is not whitespace or comments is rejected with
// *MissingTerminatorError instead of being accepted as a final statement.
func ParseStrict(script string) ([]Statement, error) {
	return parse(script, true)
}

func parse(script string, strict bool) ([]Statement, error) {
	src := normalizeNewlines(script)

	var (
		stmts []Statement
		buf   strings.Builder

		mode = modeCode
		line = 1

		startLine = 0     // line of the first non-whitespace byte in buf
		lastLine  = 0     // line of the most recent non-whitespace byte
		openLine  = 0     // line where the current comment/string opened
		hasCode   = false // buf holds bytes outside comments
	)

	emit := func(endLine int) {
		from := startLine
		if from == 0 {
			from = endLine // empty statement, e.g. a stray ';'
		}
		stmts = append(stmts, Statement{
			LineFrom: from,
			LineTo:   endLine,
			Code:     strings.TrimSpace(buf.String()),
		})
		buf.Reset()
		startLine = 0
		hasCode = false
	}

	for i := 0; i < len(src); i++ {
		ch := src[i]
		var peek byte
		if i+1 < len(src) {
			peek = src[i+1]
		}

		// A top-level ';' ends the statement and is not written to the buffer.
		if mode == modeCode && ch == ';' {
			emit(line)
			continue
		}

		// take is how many bytes this step consumes. Two-byte delimiters
		// ("--", "/*", "*/", "''", "\"\"") are consumed together so that
		// their second byte cannot be re-read as the start of another
		// delimiter (e.g. "/*/" must leave the comment open).
		take := 1

		switch mode {
		case modeCode:
			switch {
			case ch == '-' && peek == '-':
				mode, openLine, take = modeLineComment, line, 2
			case ch == '/' && peek == '*':
				mode, openLine, take = modeBlockComment, line, 2
			case ch == '\'':
				mode, openLine = modeSingleQuoted, line
				hasCode = true
			case ch == '"':
				mode, openLine = modeDoubleQuoted, line
				hasCode = true
			default:
				if !isSpace(ch) {
					hasCode = true
				}
			}
		case modeLineComment:
			if ch == '\n' {
				mode = modeCode
			}
		case modeBlockComment:
			if ch == '*' && peek == '/' {
				mode, take = modeCode, 2
			}
		case modeSingleQuoted:
			if ch == '\'' {
				if peek == '\'' {
					take = 2 // escaped quote, string stays open
				} else {
					mode = modeCode
				}
			}
		case modeDoubleQuoted:
			if ch == '"' {
				if peek == '"' {
					take = 2
				} else {
					mode = modeCode
				}
			}
		}

		for k := 0; k < take; k++ {
			b := src[i+k]
			if !isSpace(b) {
				if startLine == 0 {
					startLine = line
				}
				lastLine = line
			}
			buf.WriteByte(b)
			if b == '\n' {
				line++
			}
		}
		i += take - 1
	}

	// Structural errors are detectable only once input runs out.
	switch mode {
	case modeBlockComment:
		return nil, &UnterminatedCommentError{Line: openLine}
	case modeSingleQuoted:
		return nil, &UnterminatedStringError{Line: openLine, Quote: '\''}
	case modeDoubleQuoted:
		return nil, &UnterminatedStringError{Line: openLine, Quote: '"'}
	}

	// Leftover buffer: whitespace and comments are discarded, real
	// statement text is the trailing-';' policy decision.
	if hasCode {
		if strict {
			return nil, &MissingTerminatorError{Line: startLine}
		}
		emit(lastLine)
	}

	return stmts, nil
}

// normalizeNewlines maps \r\n and bare \r to \n so that line counting does
// not depend on the line-ending convention of the input.
func normalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

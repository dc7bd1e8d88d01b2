package parser

import "fmt"

// Statement is one SQL command split out of a script. It spans the source
// text from its first non-whitespace character to the character before the
// terminating semicolon. Interior comments are preserved; the semicolon
// itself and surrounding whitespace are not part of Code.
type Statement struct {
	LineFrom int    // 1-based line where the statement text begins
	LineTo   int    // 1-based line where the terminating ';' appears (inclusive)
	Code     string // statement text, whitespace-trimmed, interior comments kept
}

// UnterminatedCommentError reports a block comment that was opened but never
// closed before end of input.
type UnterminatedCommentError struct {
	Line int // line where the comment opened
}

func (e *UnterminatedCommentError) Error() string {
	return fmt.Sprintf("unterminated block comment opened on line %d", e.Line)
}

// UnterminatedStringError reports a quoted literal that was opened but never
// closed before end of input.
type UnterminatedStringError struct {
	Line  int  // line where the string opened
	Quote byte // '\'' or '"'
}

func (e *UnterminatedStringError) Error() string {
	return fmt.Sprintf("unterminated %c-quoted string opened on line %d", e.Quote, e.Line)
}

// MissingTerminatorError reports statement text left over after the final
// semicolon. Only ParseStrict produces it; Parse accepts trailing text as a
// last statement.
type MissingTerminatorError struct {
	Line int // line where the trailing statement begins
}

func (e *MissingTerminatorError) Error() string {
	return fmt.Sprintf("statement starting on line %d is not terminated by ';'", e.Line)
}

package report

import (
	"fmt"
	"io"
	"strings"
)

// TextFormatter formats a listing as human-readable text, one block per
// statement with its line span, beginning keyword, and indented source text.
type TextFormatter struct{}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format formats a listing as text and writes to the writer
func (f *TextFormatter) Format(l *Listing, writer io.Writer) error {
	noun := "statements"
	if len(l.Statements) == 1 {
		noun = "statement"
	}
	if _, err := fmt.Fprintf(writer, "%s: %d %s\n", l.Script, len(l.Statements), noun); err != nil {
		return err
	}

	for _, r := range l.Statements {
		beginning := r.Beginning
		if beginning == "" {
			beginning = "(empty)"
		}
		if _, err := fmt.Fprintf(writer, "\n%3d  lines %d-%d  %s\n", r.Index, r.LineFrom, r.LineTo, beginning); err != nil {
			return err
		}
		for _, line := range strings.Split(r.Code, "\n") {
			if _, err := fmt.Fprintf(writer, "     %s\n", line); err != nil {
				return err
			}
		}
	}

	return nil
}

// FormatString returns a listing as a text string
func (f *TextFormatter) FormatString(l *Listing) (string, error) {
	var sb strings.Builder
	if err := f.Format(l, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Name returns the name of this formatter
func (f *TextFormatter) Name() string {
	return "text"
}

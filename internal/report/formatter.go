package report

import (
	"fmt"
	"io"

	"github.com/thyringer/smake/internal/parser"
)

// Record is one statement of a listing, enriched with its beginning keyword
// and kind for consumers that classify without re-parsing.
type Record struct {
	Index     int    `json:"index"`     // 1-based position in the script
	LineFrom  int    `json:"line_from"` // 1-based first line
	LineTo    int    `json:"line_to"`   // 1-based last line
	Beginning string `json:"beginning"` // leading keyword, "" for comment-only
	Kind      string `json:"kind"`      // classification of the beginning
	Code      string `json:"code"`      // statement text
}

// Listing is the formatter input: a split script
type Listing struct {
	Script     string   `json:"script"`
	Statements []Record `json:"statements"`
}

// NewListing builds a Listing from parsed statements
func NewListing(script string, stmts []parser.Statement) *Listing {
	listing := &Listing{
		Script:     script,
		Statements: make([]Record, len(stmts)),
	}
	for i, s := range stmts {
		listing.Statements[i] = Record{
			Index:     i + 1,
			LineFrom:  s.LineFrom,
			LineTo:    s.LineTo,
			Beginning: parser.ExtractBeginning(s.Code),
			Kind:      parser.Classify(s.Code).String(),
			Code:      s.Code,
		}
	}
	return listing
}

// Formatter is an interface for listing formatters
type Formatter interface {
	// Format formats a listing and writes to the writer
	Format(l *Listing, writer io.Writer) error

	// FormatString returns a listing as a string
	FormatString(l *Listing) (string, error)

	// Name returns the name of this formatter
	Name() string
}

// FormatType represents supported listing formats
type FormatType string

const (
	FormatText FormatType = "text"
	FormatJSON FormatType = "json"
)

// GetFormatter returns a formatter for the specified format type
func GetFormatter(format FormatType) (Formatter, error) {
	switch format {
	case FormatText:
		return NewTextFormatter(), nil
	case FormatJSON:
		return NewJSONFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: text, json)", format)
	}
}

// FormatToWriter formats a listing to a writer using the specified format
func FormatToWriter(l *Listing, format FormatType, writer io.Writer) error {
	formatter, err := GetFormatter(format)
	if err != nil {
		return err
	}
	return formatter.Format(l, writer)
}

// ValidFormat checks if a format string is valid
func ValidFormat(format string) bool {
	switch FormatType(format) {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

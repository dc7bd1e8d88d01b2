package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONFormatter formats a listing as JSON
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format formats a listing as JSON and writes to the writer
func (f *JSONFormatter) Format(l *Listing, writer io.Writer) error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal listing to JSON: %w", err)
	}

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}

	_, err = writer.Write([]byte("\n"))
	return err
}

// FormatString returns a listing as a JSON string
func (f *JSONFormatter) FormatString(l *Listing) (string, error) {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal listing to JSON: %w", err)
	}
	return string(data), nil
}

// Name returns the name of this formatter
func (f *JSONFormatter) Name() string {
	return "json"
}

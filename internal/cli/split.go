package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/thyringer/smake/internal/errors"
	"github.com/thyringer/smake/internal/logger"
	"github.com/thyringer/smake/internal/parser"
	"github.com/thyringer/smake/internal/report"
)

// Split parses a script file and writes the statement listing in the
// configured format to the configured output.
func Split(config *Config, scriptPath string) error {
	logger.SetVerbose(config.Verbose)

	stmts, err := parseScript(scriptPath, config.Strict)
	if err != nil {
		return err
	}

	logger.Debug("%s: split into %d statement(s)", scriptPath, len(stmts))

	listing := report.NewListing(scriptPath, stmts)

	writer, closeFn, err := openOutput(config.OutputFile)
	if err != nil {
		return err
	}
	defer closeFn()

	return report.FormatToWriter(listing, report.FormatType(config.Format), writer)
}

// parseScript reads and splits one script, wrapping failures with the path
func parseScript(scriptPath string, strict bool) ([]parser.Statement, error) {
	content, err := os.ReadFile(scriptPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	var (
		stmts []parser.Statement
		perr  error
	)
	if strict {
		stmts, perr = parser.ParseStrict(string(content))
	} else {
		stmts, perr = parser.Parse(string(content))
	}
	if perr != nil {
		return nil, errors.NewScriptError(scriptPath, perr)
	}

	return stmts, nil
}

// openOutput opens the output target; "-" means stdout
func openOutput(path string) (io.Writer, func(), error) {
	if path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

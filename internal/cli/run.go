package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/thyringer/smake/internal/database"
	"github.com/thyringer/smake/internal/discovery"
	"github.com/thyringer/smake/internal/logger"
	"github.com/thyringer/smake/internal/parser"
	"github.com/thyringer/smake/internal/runner"
)

// Run executes one script file, or every .sql script under a directory,
// against PostgreSQL. Returns a process exit code and an error for failures
// that prevented running at all.
func Run(ctx context.Context, config *Config, searchPath string) (int, error) {
	logger.SetVerbose(config.Verbose)

	// Step 1: resolve the script set.
	scriptPaths, err := resolveScripts(searchPath)
	if err != nil {
		return 1, err
	}
	if len(scriptPaths) == 0 {
		fmt.Println("No SQL scripts found")
		return 0, nil
	}
	logger.Debug("found %d script(s)", len(scriptPaths))

	// Step 2: split every script before touching the database, so a lexical
	// error in any script aborts the whole run without side effects.
	scripts := make(map[string][]parser.Statement, len(scriptPaths))
	for _, path := range scriptPaths {
		stmts, err := parseScript(path, config.Strict)
		if err != nil {
			return 1, err
		}
		scripts[path] = stmts
	}

	// Step 3: connect.
	pool, err := database.NewPool(ctx, config)
	if err != nil {
		return 1, fmt.Errorf("database connection failed: %w", err)
	}
	defer pool.Close()

	// Step 4: execute in source order.
	executor := runner.NewExecutor(pool, config.Timeout)
	runs, err := executor.RunBatch(ctx, scripts, scriptPaths)
	if err != nil {
		return 1, err
	}

	// Step 5: summarize.
	summary := runner.Summarize(runs)
	fmt.Printf("Ran %d script(s), %d statement(s) in %v: %d passed, %d failed\n",
		summary.TotalScripts, summary.TotalStatements, summary.TotalDuration,
		summary.PassedScripts, summary.FailedScripts)

	if summary.FailedScripts > 0 {
		return 1, nil
	}
	return 0, nil
}

// resolveScripts expands a path argument into script paths: a directory is
// searched recursively, a file is taken as-is.
func resolveScripts(searchPath string) ([]string, error) {
	info, err := os.Stat(searchPath)
	if err != nil {
		return nil, fmt.Errorf("failed to access %s: %w", searchPath, err)
	}

	if !info.IsDir() {
		return []string{searchPath}, nil
	}

	scripts, err := discovery.Discover(searchPath)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(scripts))
	for i, s := range scripts {
		paths[i] = s.Path
	}
	return paths, nil
}
